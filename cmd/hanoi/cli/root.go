// Package cli defines the cobra root command for the hanoi binary.
//
// Flags override the config file and HANOI_* environment variables, which
// in turn override the built-in defaults.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"hanoi/internal/cli"
	"hanoi/internal/config"
	"hanoi/internal/core"
	"hanoi/internal/game"
	"hanoi/internal/logger"
	clitransport "hanoi/internal/transport/cli"
)

// Set from main via ldflags
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

type options struct {
	configPath string
	envFile    string
	height     int
	rules      string
	theme      string
	logLevel   string
	plain      bool
}

// IO bundles the process streams so tests can swap them
type IO struct {
	Stdin  *os.File
	Stdout *os.File
	Stderr io.Writer
}

func NewRootCommand(streams IO) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "hanoi",
		Short: "Play the Tower of Hanoi in your terminal",
		Long: `hanoi is a terminal version of the three peg disk puzzle.

Move the whole tower from column 1 to column 3 by entering moves such
as [1,3]. Enter q to quit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return play(cmd.Context(), cfg, streams)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (.yaml, .yml, .json, .jsonc)")
	flags.StringVar(&opts.envFile, "env-file", "", "Dotenv file with HANOI_* variables (default ./.env if present)")
	flags.IntVarP(&opts.height, "height", "n", 3, "Number of disks")
	flags.StringVar(&opts.rules, "rules", "classic", "Move rules: classic or strict")
	flags.StringVar(&opts.theme, "theme", "off", "Board colors: off, blue, green, gray")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level written to stderr")
	flags.BoolVar(&opts.plain, "plain", false, "Read input without the line editor")

	return rootCmd
}

// resolveConfig layers defaults, file, environment and explicitly set flags
func resolveConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	if err := config.LoadEnv(opts.envFile); err != nil {
		return nil, err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("height") {
		cfg.Height = opts.height
	}
	if flags.Changed("rules") {
		cfg.Rules = opts.rules
	}
	if flags.Changed("theme") {
		cfg.Theme = opts.theme
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("plain") {
		cfg.Plain = opts.plain
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func play(ctx context.Context, cfg *config.Config, streams IO) error {
	log, err := logger.New(streams.Stderr, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	rules, err := core.ParseRules(cfg.Rules)
	if err != nil {
		return err
	}

	g, err := game.New(cfg.Height, rules)
	if err != nil {
		return fmt.Errorf("could not start the game: %w", err)
	}

	view := cli.New(streams.Stdout)
	if err := view.SetTheme(cli.ColorTheme(cfg.Theme)); err != nil {
		return err
	}

	input, err := cli.NewLineReader(streams.Stdin, streams.Stdout, cfg.Plain)
	if err != nil {
		return err
	}
	defer input.Close()

	log.Debug().
		Int("height", cfg.Height).
		Str("rules", rules.String()).
		Str("theme", cfg.Theme).
		Bool("plain", cfg.Plain).
		Msg("config loaded")

	handler := clitransport.New(g, view, input, log)
	handler.Run(ctx) // All game loop logic is in the handler
	return nil
}

// Execute runs the root command and exits non-zero on error
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
