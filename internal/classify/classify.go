package classify

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Result describes what a token looks like. It is produced fresh on every
// call and carries no references back into the classifier.
type Result struct {
	Kind            Kind
	Provider        string
	Platform        string
	TokenType       string
	TokenLength     int
	Confidence      Confidence
	Description     string
	Characteristics []string
}

// fcmVendorPrefix shows up in the instance-id half of most FCM registration
// tokens.
const fcmVendorPrefix = "APA91b"

// Classify inspects a pasted push token with the default thresholds.
func Classify(token string) Result {
	return DefaultRules().Classify(token)
}

// Classify matches the token against the known APNs and FCM shapes and
// falls back to an Unknown result. It never fails: any input, including the
// empty string, maps to exactly one Result.
func (r Rules) Classify(token string) Result {
	r = r.normalized()

	// Pasted text arrives from GUIs and chat clients; normalize before the
	// charset checks so visually identical tokens classify identically.
	token = strings.TrimSpace(norm.NFC.String(token))

	res := Result{
		Kind:        KindUnknown,
		Provider:    "Unknown",
		Platform:    "Unknown",
		TokenType:   "Unknown",
		TokenLength: len(token),
		Confidence:  ConfidenceLow,
	}

	switch {
	case token == "":
		res.Description = "No token provided"
		return res

	case len(token) == r.APNsHexLength && isHex(token):
		res.Kind = KindApple
		res.Provider = "Apple Push Notification Service (APNs)"
		res.Platform = "iOS/macOS/watchOS/tvOS"
		res.TokenType = "Device Token"
		res.Confidence = ConfidenceHigh
		res.Description = "APNs device token"
		res.Characteristics = []string{
			"32-byte binary value represented as hex",
			"Tied to specific app and device combination",
			"Opaque identifier - no extractable metadata",
		}

	case strings.Contains(token, ":") && len(token) > r.FCMMinLength:
		res.Kind = KindAndroid
		res.Provider = "Firebase Cloud Messaging (FCM)"
		res.Platform = "Android/Web"
		res.TokenType = "Registration Token"
		res.Confidence = ConfidenceHigh
		res.Description = "FCM registration token"
		res.Characteristics = []string{
			"Base64-encoded with delimiters",
			"Refreshed periodically for security",
			"Tied to app instance on device",
		}
		if strings.Contains(token, fcmVendorPrefix) {
			res.Characteristics = append(res.Characteristics,
				"Contains APA91b prefix (common in FCM)")
		}

	case len(token) < r.ShortTokenLimit:
		res.TokenType = "Short Token"
		res.Description = "Token did not match any known push format"
		res.Characteristics = []string{
			"Unusually short for modern push tokens",
			"Possibly legacy system or custom implementation",
		}

	case len(token) > r.LongTokenLimit:
		res.TokenType = "Long Token"
		res.Description = "Token did not match any known push format"
		res.Characteristics = []string{
			"Unusually long token",
			"Possibly custom implementation or encoded data",
		}

	default:
		res.Description = "Token did not match any known push format"
	}

	if shape := alphabetShape(token); shape != "" {
		res.Characteristics = append(res.Characteristics, shape)
	}
	return res
}

// alphabetShape names the character set a non-empty token is drawn from.
// Checked narrowest first: every hex string is also base64.
func alphabetShape(token string) string {
	switch {
	case token == "":
		return ""
	case isHex(token):
		return "Pure hexadecimal format"
	case isBase64(token):
		return "Base64-encoded format"
	case isBase64URL(token):
		return "URL-safe base64 or alphanumeric format"
	default:
		return ""
	}
}

func isHex(s string) bool {
	for _, c := range []byte(s) {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return s != ""
}

func isBase64(s string) bool {
	trimmed := strings.TrimRight(s, "=")
	if trimmed == "" {
		return false
	}
	for _, c := range []byte(trimmed) {
		if !isAlnum(c) && c != '+' && c != '/' {
			return false
		}
	}
	return true
}

func isBase64URL(s string) bool {
	for _, c := range []byte(s) {
		if !isAlnum(c) && c != '-' && c != '_' {
			return false
		}
	}
	return s != ""
}

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
