package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"lifeboard/internal/config"
	"lifeboard/internal/logging"
	"lifeboard/internal/sim"
	"lifeboard/internal/term"
)

var version = "0.1.0-dev"

type options struct {
	cfg        config.Config
	configPath string
	overrides  map[string]string
}

// resolve layers the config file under explicit flags, applies --set pairs
// last and validates the result.
func (o *options) resolve(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	cfg, err := config.Resolve(o.cfg, o.configPath, cmd.Flags())
	if err != nil {
		return cfg, nil, err
	}
	if cfg, err = cfg.WithOverrides(o.overrides); err != nil {
		return cfg, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}
	logger := logging.NewLogger(cfg.LogLevel, cmd.ErrOrStderr())
	logger.Debug("config resolved",
		"rows", cfg.Rows,
		"cols", cfg.Cols,
		"delay", cfg.Delay,
		"seed", cfg.Seed,
		"config", o.configPath,
	)
	return cfg, logger, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{cfg: config.Default()}
	rootCmd := &cobra.Command{
		Use:   "life",
		Short: "Conway's Game of Life on a bounded board",
		Long: `life runs Conway's Game of Life on a fixed board whose edges do not wrap.

Use "life gui" for the interactive window or "life run" to watch the board
in the terminal.`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	opts.cfg.Bind(flags)
	flags.StringVar(&opts.configPath, "config", "", "YAML config file (flags override its values)")
	flags.StringToStringVar(&opts.overrides, "set", nil, "override a config key by its YAML name, e.g. --set rows=20 (repeatable)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(opts),
		newGUICmd(opts),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "life version %s\n", version)
		},
	}
}

func newRunCmd(opts *options) *cobra.Command {
	var (
		generations int
		fps         int
		noClear     bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the board in the terminal",
		Long: `Run starts the simulation immediately and redraws the board in the terminal.
An empty starting board is filled randomly first. Stop with Ctrl-C or
--generations.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.resolve(cmd)
			if err != nil {
				return err
			}

			session := sim.NewSession(cfg, logger)
			if session.Grid().Population() == 0 {
				session.Randomize()
			}
			sched := sim.NewScheduler(session, logger)
			r := term.NewRenderer(cmd.OutOrStdout(), !noClear)

			return term.Run(cmd.Context(), session, sched, r, term.Options{
				FPS:         fps,
				Generations: generations,
				Logger:      logger,
			})
		},
	}
	cmd.Flags().IntVar(&generations, "generations", 0, "stop after this many generations (0 runs until interrupted)")
	cmd.Flags().IntVar(&fps, "fps", 30, "frames drawn per second")
	cmd.Flags().BoolVar(&noClear, "no-clear", false, "append frames instead of clearing the screen")
	return cmd
}
