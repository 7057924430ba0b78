// Package main provides the entry point for the starcrossed CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version    = "0.1.0-dev"
	globalSlot string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := newRootCmd()
	return rootCmd.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "starcrossed",
		Short:         "A relationship sim with a cast of alien companions",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&globalSlot, "slot", "s", "", "Save slot to play (default: the active slot)")

	rootCmd.AddCommand(
		newInitCmd(),
		newPlayerCmd(),
		newRosterCmd(),
		newStatusCmd(),
		newGalleryCmd(),
		newCompatCmd(),
		newInteractCmd(),
		newConflictCmd(),
		newHistoryCmd(),
		newSaveCmd(),
		newExportCmd(),
		newResetCmd(),
	)

	return rootCmd
}
