/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/SvenDH/go-card-hand/config"
)

var (
	verbose    bool
	configPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cardhand",
	Short: "An interactive hand of cards with spring-driven visuals",
	Long: `cardhand lays out a hand of cards, lets you drag them to reorder,
click to select and watch the visuals chase the cards with springs.

Settings are read from a TOML file given with --config or the
CARDHAND_CONFIG environment variable. A .env file in the working
directory is loaded first when present.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		level := log.InfoLevel
		if verbose {
			level = log.DebugLevel
		}
		logger := newLogger(os.Stderr, level)
		log.SetDefault(logger)

		cfg, err := loadConfig(logger)
		if err != nil {
			return err
		}
		ctx := withLogger(cmd.Context(), logger)
		ctx = context.WithValue(ctx, configKey, cfg)
		cmd.SetContext(ctx)
		return nil
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML configuration file (default $"+config.EnvPath+")")
}

func loadConfig(logger *log.Logger) (config.Config, error) {
	path := configPath
	if path == "" {
		path = os.Getenv(config.EnvPath)
	}
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	logger.Debug("loaded config", "path", path)
	return cfg, nil
}

func configFromContext(ctx context.Context) config.Config {
	if cfg, ok := ctx.Value(configKey).(config.Config); ok {
		return cfg
	}
	return config.Default()
}
