package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func runCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run one abandonment pass and print the summary",
		Long: "Runs the abandonment job once under the same lock the scheduler uses, " +
			"then prints the per-store results as JSON. Exits non-zero when a store " +
			"failed to persist notification state or another run holds the lock.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOnce(cmd.Context())
		},
	}
}

func runOnce(parent context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log := newLogger(cfg)
	ctx := contextOrBackground(parent)

	a, err := buildApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.close()

	summary, runErr := a.scheduler.RunNow(ctx)
	if summary != nil {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(summary); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
	}
	return runErr
}
