package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"pushtoken/internal/classify"
)

type analyzeModel struct {
	rules  classify.Rules
	input  textarea.Model
	token  string
	result *classify.Result
	width  int
}

// NewAnalyzeModel returns a Bubble Tea model with a paste box and a result
// pane: enter classifies the pasted token, ctrl+r clears, esc quits.
func NewAnalyzeModel(rules classify.Rules) tea.Model {
	input := textarea.New()
	input.Placeholder = "Paste a push token..."
	input.SetHeight(4)
	input.SetWidth(76)
	input.CharLimit = 0
	input.ShowLineNumbers = false
	input.Focus()

	return &analyzeModel{
		rules: rules,
		input: input,
		width: 80,
	}
}

func (m *analyzeModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m *analyzeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			// Tokens never contain newlines, so enter means analyze.
			m.token = strings.TrimSpace(m.input.Value())
			res := m.rules.Classify(m.token)
			m.result = &res
			return m, nil
		case "ctrl+r":
			m.input.Reset()
			m.token = ""
			m.result = nil
			return m, nil
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.input.SetWidth(msg.Width - 4)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *analyzeModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	hintStyle := lipgloss.NewStyle().Faint(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Push Token Analyzer"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.result != nil {
		b.WriteString(m.renderResult())
		b.WriteString("\n")
	}

	b.WriteString(hintStyle.Render("enter analyze • ctrl+r clear • esc quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *analyzeModel) renderResult() string {
	res := *m.result

	labelStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	verdictStyle := lipgloss.NewStyle().Bold(true).Foreground(kindColor(res.Kind))
	paneStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)

	nameWidth := m.width - 8
	if nameWidth < 20 {
		nameWidth = 20
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Token:"), truncate(m.token, nameWidth))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Provider:"), verdictStyle.Render(res.Provider))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Platform:"), res.Platform)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Type:"), res.TokenType)
	fmt.Fprintf(&b, "%s %d characters\n", labelStyle.Render("Length:"), res.TokenLength)
	fmt.Fprintf(&b, "%s %s", labelStyle.Render("Confidence:"), res.Confidence)
	for _, c := range res.Characteristics {
		fmt.Fprintf(&b, "\n  - %s", c)
	}
	return paneStyle.Render(b.String())
}

func kindColor(k classify.Kind) lipgloss.Color {
	switch k {
	case classify.KindApple:
		return lipgloss.Color("2")
	case classify.KindAndroid:
		return lipgloss.Color("3")
	default:
		return lipgloss.Color("1")
	}
}

func truncate(value string, width int) string {
	if value == "" {
		return "(empty)"
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
