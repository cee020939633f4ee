package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"pushtoken/internal/batch"
	"pushtoken/internal/report"
)

var batchCmd = &cobra.Command{
	Use:   "batch [flags] <file>",
	Short: "Classify a file of push tokens",
	Long: `Batch reads tokens from a file (one per line, # starts a comment) and
classifies them in parallel. Output order follows input order.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	batchCmd.Flags().Int("jobs", 0, "number of parallel workers (0 = number of CPUs)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read token list %q: %w", path, err)
	}
	items := batch.SplitTokens(string(data))

	rules, err := loadRules(".")
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	results, summary, err := batch.Run(ctx, items, batch.Options{
		Rules: rules,
		Jobs:  jobs,
	})
	if err != nil {
		return fmt.Errorf("batch classification failed: %w", err)
	}

	out := cmd.OutOrStdout()
	switch format {
	case "pretty":
		opts := report.PrettyOpts{Color: useColor(cmd, os.Stdout)}
		for i, item := range results {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "# line %d\n", item.Line)
			report.Pretty(out, item.Token, item.Result, opts)
		}
	case "json":
		for _, item := range results {
			if err := report.JSON(out, item.Result); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if !quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "\n%d tokens: %d apple, %d android, %d unknown\n",
			summary.Total, summary.Apple, summary.Android, summary.Unknown)
	}
	return nil
}
