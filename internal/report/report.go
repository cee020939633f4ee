package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"pushtoken/internal/classify"
)

// PrettyOpts configures the text report.
type PrettyOpts struct {
	Color bool
	// Width caps the token preview line, 0 - не ограничено.
	Width int
}

const defaultPreviewWidth = 50

// Pretty writes a human-readable report for one classification, in the
// provider/platform/type/length/confidence order the tool has always used.
func Pretty(w io.Writer, token string, res classify.Result, opts PrettyOpts) {
	label := color.New(color.FgCyan, color.Bold)
	verdict := kindColor(res.Kind)
	if !opts.Color {
		label.DisableColor()
		verdict.DisableColor()
	}

	width := opts.Width
	if width <= 0 {
		width = defaultPreviewWidth
	}

	fmt.Fprintf(w, "%s %s\n", label.Sprint("Token:"), previewToken(token, width))
	fmt.Fprintf(w, "%s %s\n", label.Sprint("Provider:"), verdict.Sprint(res.Provider))
	fmt.Fprintf(w, "%s %s\n", label.Sprint("Platform:"), res.Platform)
	fmt.Fprintf(w, "%s %s\n", label.Sprint("Token Type:"), res.TokenType)
	fmt.Fprintf(w, "%s %d characters\n", label.Sprint("Token Length:"), res.TokenLength)
	fmt.Fprintf(w, "%s %s\n", label.Sprint("Confidence:"), res.Confidence)

	if len(res.Characteristics) > 0 {
		fmt.Fprintf(w, "\n%s\n", label.Sprint("Characteristics:"))
		for i, c := range res.Characteristics {
			fmt.Fprintf(w, "  %d. %s\n", i+1, c)
		}
	}
}

// jsonPayload mirrors the key names of the analyzer's original JSON output.
type jsonPayload struct {
	Kind            string   `json:"kind"`
	Provider        string   `json:"provider"`
	Platform        string   `json:"platform"`
	TokenType       string   `json:"token_type"`
	TokenLength     int      `json:"token_length"`
	Confidence      string   `json:"confidence"`
	Description     string   `json:"description,omitempty"`
	Characteristics []string `json:"characteristics,omitempty"`
}

// JSON writes the classification as indented JSON.
func JSON(w io.Writer, res classify.Result) error {
	payload := jsonPayload{
		Kind:            res.Kind.String(),
		Provider:        res.Provider,
		Platform:        res.Platform,
		TokenType:       res.TokenType,
		TokenLength:     res.TokenLength,
		Confidence:      res.Confidence.String(),
		Description:     res.Description,
		Characteristics: res.Characteristics,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func kindColor(k classify.Kind) *color.Color {
	switch k {
	case classify.KindApple:
		return color.New(color.FgGreen, color.Bold)
	case classify.KindAndroid:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}

// previewToken keeps one display line: long tokens get a midline ellipsis-style cut.
func previewToken(token string, width int) string {
	if token == "" {
		return "(empty)"
	}
	if runewidth.StringWidth(token) <= width {
		return token
	}
	if width <= 3 {
		return runewidth.Truncate(token, width, "")
	}
	return runewidth.Truncate(token, width-3, "...")
}
