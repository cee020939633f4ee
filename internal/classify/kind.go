package classify

// Kind identifies the push system a token appears to belong to.
type Kind uint8

const (
	// KindUnknown is the fallback for anything that matches no known shape.
	KindUnknown Kind = iota
	// KindApple marks an APNs device token.
	KindApple
	// KindAndroid marks an FCM registration token.
	KindAndroid
)

// String returns the lowercase name used in JSON output and flags.
func (k Kind) String() string {
	switch k {
	case KindApple:
		return "apple"
	case KindAndroid:
		return "android"
	default:
		return "unknown"
	}
}

// Confidence grades how well the token matched a known shape.
type Confidence uint8

const (
	ConfidenceLow Confidence = iota
	ConfidenceMedium
	ConfidenceHigh
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "High"
	case ConfidenceMedium:
		return "Medium"
	default:
		return "Low"
	}
}
