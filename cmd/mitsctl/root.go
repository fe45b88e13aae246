package main

import (
	"context"

	"MITSAssistant/pkg/app"
	"MITSAssistant/pkg/config"
	"MITSAssistant/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type appOpener func(ctx context.Context, verbose bool) (*app.App, error)

func openApp(ctx context.Context, verbose bool) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	zl := zap.NewNop()
	if verbose {
		if zl, err = logger.New(cfg.AppEnv); err != nil {
			return nil, err
		}
	}
	return app.New(ctx, cfg, zl)
}

func newRootCmd(open appOpener) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "mitsctl",
		Short: "Manage the MITS Assistant knowledge base",
		Long: `mitsctl works on the same store the server uses.

Quick Start:
  mitsctl seed                              # Load the starter MITS pages
  mitsctl scrape https://www.mitsgwalior.ac.in/about
  mitsctl content list                      # Show stored pages
  mitsctl history <session-id> -f yaml      # Dump a conversation`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	// withApp opens the app for one command run and closes it afterwards.
	withApp := func(run func(cmd *cobra.Command, args []string, a *app.App) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			a, err := open(cmd.Context(), verbose)
			if err != nil {
				return err
			}
			defer a.Close()
			return run(cmd, args, a)
		}
	}

	root.AddCommand(
		newScrapeCmd(withApp),
		newRefreshCmd(withApp),
		newContentCmd(withApp),
		newSeedCmd(withApp),
		newHistoryCmd(withApp),
	)
	return root
}
