package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sheikhrachel/gameoflife/model"
	"github.com/sheikhrachel/gameoflife/tui"
	"github.com/sheikhrachel/gameoflife/utils"
)

var (
	configFile string
	verbose    bool
	flagConfig = utils.DefaultConfig()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flagConfig = utils.DefaultConfig()
	configFile, verbose = "", false

	rootCmd := &cobra.Command{
		Use:          "gameoflife",
		Short:        "Conway's Game of Life in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runPlain,
	}
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		newLogger(cmd.ErrOrStderr()).Error("invalid flags", "err", err)
		return err
	})

	flags := rootCmd.PersistentFlags()
	flags.IntVarP(&flagConfig.Width, "width", "w", flagConfig.Width, "grid width")
	flags.IntVarP(&flagConfig.Height, "height", "H", flagConfig.Height, "grid height")
	flags.IntVarP(&flagConfig.Iterations, "iter", "i", flagConfig.Iterations, "number of generations to display")
	flags.DurationVarP(&flagConfig.Delay, "delay", "d", flagConfig.Delay, "display time of each generation")
	flags.StringVarP(&flagConfig.File, "file", "f", "", "grid description file (overrides width and height)")
	flags.Int64Var(&flagConfig.Seed, "seed", 0, "random seed (0 picks one from the clock)")
	flags.IntVar(&flagConfig.Workers, "workers", flagConfig.Workers, "goroutines computing each generation")
	flags.StringVar(&flagConfig.Style, "style", flagConfig.Style, "display style: plain or box")
	flags.BoolVar(&flagConfig.ShowStats, "stats", false, "print a population summary after the run")
	flags.StringVarP(&configFile, "config", "c", "", "config file path (yaml or json)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the simulation in an interactive viewer",
		RunE:  runInteractive,
	}

	rootCmd.AddCommand(tuiCmd)
	return rootCmd
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// resolveConfig layers the config file under any flags given on the command line
func resolveConfig(cmd *cobra.Command) (utils.Config, error) {
	if configFile == "" {
		return flagConfig, flagConfig.Validate()
	}

	config, err := utils.LoadConfig(configFile)
	if err != nil {
		return config, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		config.Width = flagConfig.Width
	}
	if flags.Changed("height") {
		config.Height = flagConfig.Height
	}
	if flags.Changed("iter") {
		config.Iterations = flagConfig.Iterations
	}
	if flags.Changed("delay") {
		config.Delay = flagConfig.Delay
	}
	if flags.Changed("file") {
		config.File = flagConfig.File
	}
	if flags.Changed("seed") {
		config.Seed = flagConfig.Seed
	}
	if flags.Changed("workers") {
		config.Workers = flagConfig.Workers
	}
	if flags.Changed("style") {
		config.Style = flagConfig.Style
	}
	if flags.Changed("stats") {
		config.ShowStats = flagConfig.ShowStats
	}

	return config, config.Validate()
}

func runPlain(cmd *cobra.Command, _ []string) error {
	logger := newLogger(cmd.ErrOrStderr())

	config, err := resolveConfig(cmd)
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		return err
	}

	renderer, err := model.NewRenderer(config.Style, cmd.OutOrStdout())
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		return err
	}

	grid, err := initialGrid(config, logger)
	if err != nil {
		logger.Error("failed to build initial grid", "err", err)
		return err
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stats := utils.NewStats()
	if _, err = runGame(ctx, config, grid, renderer, stats, logger); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if config.ShowStats {
		fmt.Fprint(cmd.OutOrStdout(), stats.Summary())
	}
	return nil
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	logger := newLogger(cmd.ErrOrStderr())

	config, err := resolveConfig(cmd)
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		return err
	}

	grid, err := initialGrid(config, logger)
	if err != nil {
		logger.Error("failed to build initial grid", "err", err)
		return err
	}

	stats := utils.NewStats()
	if _, err = tui.Run(grid, config, stats); err != nil {
		logger.Error("viewer stopped", "err", err)
		return err
	}

	if config.ShowStats {
		fmt.Fprint(cmd.OutOrStdout(), stats.Summary())
	}
	return nil
}
