package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/starcrossed/internal/application/handlers"
	"github.com/ersonp/starcrossed/internal/infrastructure/logger"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a new game directory",
		Long:  "Creates a .starcrossed directory with default configuration and prepares the game store.",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	result, err := handlers.NewInitHandler().Handle(ctx, cwd)
	if err != nil {
		return err
	}
	fmt.Printf("Created %s\n", result.ConfigPath)

	log, err := logger.New(result.Config.Log)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck // stderr sync fails on some terminals

	store, err := openStore(result.Config, cwd, log)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("preparing %s store: %w", result.Backend, err)
	}

	fmt.Printf("Prepared %s store\n", result.Backend)
	fmt.Println("Starcrossed initialized. Create a player with 'starcrossed player create NAME'.")

	return nil
}
