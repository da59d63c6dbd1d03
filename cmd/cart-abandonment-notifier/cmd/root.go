// Package cmd implements the CLI commands for cart-abandonment-notifier.
package cmd

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/donaldgifford/cart-abandonment-notifier/internal/config"
	"github.com/donaldgifford/cart-abandonment-notifier/pkg/logger"
)

const envPrefix = "CAN"

var rootCmd = &cobra.Command{
	Use:   "cart-abandonment-notifier",
	Short: "Send recovery events for abandoned storefront carts",
	Long: "A scheduled service that finds abandoned carts in every enabled website, " +
		"triggers the marketing event API for carts that have been idle long enough, " +
		"and emails operators a per-store summary.",
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initViper)

	rootCmd.PersistentFlags().String("config", "config.yaml", "config file path")
	rootCmd.PersistentFlags().String("log-level", "", "override logging.level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "override logging.format (text, json)")

	cobra.CheckErr(viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config")))
	cobra.CheckErr(viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level")))
	cobra.CheckErr(viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format")))

	rootCmd.AddCommand(serveCommand())
	rootCmd.AddCommand(runCommand())
	rootCmd.AddCommand(migrateCommand())
	rootCmd.AddCommand(versionCommand())
}

// initViper lets CAN_CONFIG, CAN_LOG_LEVEL and CAN_LOG_FORMAT stand in for
// the flags.
func initViper() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the config file and applies the logging overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(viper.GetString("config"))
	if err != nil {
		return nil, err
	}

	if lvl := viper.GetString("log_level"); lvl != "" {
		cfg.Logging.Level = lvl
	}
	if f := viper.GetString("log_format"); f != "" {
		cfg.Logging.Format = f
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	l := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(l)
	return l
}
