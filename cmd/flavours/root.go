// Package main provides the CLI entrypoint for flavours.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/flavours/internal/adapter/output"
	"github.com/jmylchreest/flavours/internal/config"
	"github.com/jmylchreest/flavours/internal/resolve"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
		directory  string
		color      string
	}
	logger *slog.Logger

	// resolver searches the config and data roots for every command
	resolver *resolve.Resolver
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "flavours",
	Short: "Manage and use base16 schemes and templates",
	Long: `flavours finds base16 color schemes and templates.

Schemes and templates live in two roots: a user-writable config root that
overrides a shared data root. Patterns accept shell globs, and templates can
be named with the family/subtemplate shorthand.`,
	Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger(cmd)

		configPath := globalOpts.configPath
		if configPath == "" {
			configPath = config.ConfigPath()
		}

		var err error
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		configRoot, dataRoot, err := cfg.Roots(configPath, globalOpts.directory)
		if err != nil {
			return fmt.Errorf("failed to resolve directories: %w", err)
		}
		logger.Debug("using roots", "config", configRoot, "data", dataRoot)

		resolver = resolve.NewResolver(resolve.Roots{Config: configRoot, Data: dataRoot}, logger)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&globalOpts.configPath, "config", "c", "",
		"Path to config file (default: ~/.config/flavours/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&globalOpts.directory, "directory", "d", "",
		"Data directory (default: ~/.local/share/flavours)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.color, "color", "auto",
		"Colorize output (auto, always, never)")
}

// setupLogger configures the global slog logger.
func setupLogger(cmd *cobra.Command) {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// useColor reports whether output to cmd's stdout should be styled.
func useColor(cmd *cobra.Command) bool {
	return output.ResolveColorMode(globalOpts.color, cmd.OutOrStdout())
}

// patternsOrAll returns args, or the match-everything pattern when empty.
func patternsOrAll(args []string) []string {
	if len(args) == 0 {
		return []string{config.DefaultListPattern}
	}
	return args
}
