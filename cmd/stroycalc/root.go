package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Simplici0/stroycalc/internal/config"
	"github.com/Simplici0/stroycalc/internal/logging"
)

// isTerminal checks if the given writer is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "stroycalc",
		Short:        "Construction material calculator",
		Long:         "stroycalc estimates bricks, concrete, tile, paint and mortar quantities with approximate prices.",
		Example:      rootCmdExample,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.AddCommand(newServeCmd(), newCalcCmd(), newHistoryCmd(), newMaterialsCmd())
	return cmd
}

const rootCmdExample = `  # Bricks for a 20 m² wall, one and a half bricks thick, 5% reserve
  stroycalc calc brick --set area=20 --set brickType=single --set wallThickness=1.5 --set reserveFactor=5

  # Save a tile estimate to history
  stroycalc calc tile --set area=12 --set tileSize=30x30 --save

  # Show the last tile estimates
  stroycalc history list --category tile

  # Start the HTTP API
  stroycalc serve`

// withApp loads configuration, sets up logging and opens the application
// for the duration of fn.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.LogLevel = "debug"
	}

	stderr := cmd.ErrOrStderr()
	log := logging.New(cfg.LogLevel, cfg.IsDev() && isTerminal(stderr), stderr)
	for _, w := range cfg.Warnings() {
		log.Warn().Msg(w)
	}

	ctx := log.WithContext(cmd.Context())
	a, err := openApp(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("startup failed")
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Warn().Err(err).Msg("close database")
		}
	}()

	return fn(ctx, a)
}
