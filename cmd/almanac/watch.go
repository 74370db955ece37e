package main

import (
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/almanac"
)

// watchCmd keeps journal pages prepared while Logseq creates them.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Prepare journal pages as they are created",
	Long: `Watch the journals directory and add the day properties to every
journal page Logseq creates or rewrites. Stops on interrupt.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := graphRoot()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		opts := append(graphOptions(cmd.OutOrStdout()),
			almanac.WithVersioning(false),
			almanac.WithWatcherErrorHandler(func(err error) {
				slog.Error("watcher failed", "error", err)
			}),
		)
		if err := almanac.Watch(ctx, root, opts...); err != nil {
			return fmt.Errorf("watch %s: %w", root, err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
