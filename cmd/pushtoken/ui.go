package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	tea "github.com/charmbracelet/bubbletea"

	"pushtoken/internal/report"
	"pushtoken/internal/ui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive analyzer",
	Long: `UI opens a form where a token can be pasted and analyzed repeatedly.
When stdout is not a terminal (or --ui=off), a token is read from stdin and
reported once instead.`,
	Args: cobra.NoArgs,
	RunE: runUI,
}

func init() {
	uiCmd.Flags().String("ui", "auto", "interactive mode (auto|on|off)")
}

func runUI(cmd *cobra.Command, args []string) error {
	modeFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(modeFlag)
	if err != nil {
		return err
	}

	rules, err := loadRules(".")
	if err != nil {
		return err
	}

	if !shouldUseTUI(mode) {
		// Без терминала ведём себя как analyze -
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read token from stdin: %w", err)
		}
		token := strings.TrimSpace(string(data))
		report.Pretty(cmd.OutOrStdout(), token, rules.Classify(token), report.PrettyOpts{})
		return nil
	}

	model := ui.NewAnalyzeModel(rules)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("ui failed: %w", err)
	}
	return nil
}
