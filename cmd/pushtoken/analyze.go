package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"pushtoken/internal/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [flags] <token>",
	Short: "Classify a single push token",
	Long: `Analyze inspects a push token's length, alphabet and delimiters and reports
which push system most likely issued it. Pass "-" to read the token from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	token := args[0]
	if token == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read token from stdin: %w", err)
		}
		token = strings.TrimSpace(string(data))
	}

	// Получаем флаги
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	rules, err := loadRules(".")
	if err != nil {
		return err
	}
	res := rules.Classify(token)

	switch format {
	case "pretty":
		opts := report.PrettyOpts{Color: useColor(cmd, os.Stdout)}
		report.Pretty(cmd.OutOrStdout(), token, res, opts)
		return nil
	case "json":
		return report.JSON(cmd.OutOrStdout(), res)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
