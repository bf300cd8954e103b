// Package main is the entry point for the almanac CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rangemap/internal/config"
	"github.com/katalvlaran/rangemap/internal/log"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// env is the configuration and logger shared by every subcommand.
type env struct {
	cfg    config.Config
	logger zerolog.Logger
}

func rootCmd() *cobra.Command {
	var (
		e        env
		envFile  string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:           "almanac",
		Short:         "Seed almanac range remapper",
		Long:          `almanac maps seeds through chains of category maps and reports the lowest location, for single seeds and whole seed ranges.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(envFile)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			e.cfg = cfg
			e.logger = log.New(cfg, cmd.ErrOrStderr())
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&envFile, "env-file", "", "path to .env file (default .env)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	cmd.AddCommand(solveCmd(&e))
	cmd.AddCommand(lookupCmd(&e))
	cmd.AddCommand(convertCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig loads configuration from .env file and environment variables.
func loadConfig(envFile string) (config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
