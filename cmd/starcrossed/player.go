package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/starcrossed/internal/application/handlers"
	"github.com/ersonp/starcrossed/internal/domain/entities"
	"github.com/ersonp/starcrossed/internal/infrastructure/config"
)

type playerCreateFlags struct {
	stats      string
	traits     []string
	preference string
	slotName   string
}

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Manage players and save slots",
		RunE:  runPlayerList,
	}

	cmd.AddCommand(
		newPlayerCreateCmd(),
		newPlayerListCmd(),
		newPlayerUseCmd(),
		newPlayerShowCmd(),
	)

	return cmd
}

func newPlayerCreateCmd() *cobra.Command {
	var flags playerCreateFlags

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a player and a save slot for it",
		Long: `Creates a player with the given stats, traits and preference.
Stats not named default to 0.

Examples:
  starcrossed player create Ash --stats charisma=60,intelligence=70,empathy=55 --trait curious --trait kind
  starcrossed player create Rin --preference women --slot-name rin-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlayerCreate(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.stats, "stats", "", "Stats as name=value pairs (charisma, intelligence, adventure, empathy, technology)")
	cmd.Flags().StringSliceVarP(&flags.traits, "trait", "t", nil, fmt.Sprintf("Personality trait, up to %d (repeatable)", entities.MaxTraits))
	cmd.Flags().StringVarP(&flags.preference, "preference", "p", "everyone", "Sexual preference (men, women, everyone)")
	cmd.Flags().StringVar(&flags.slotName, "slot-name", "", "Save slot name (default: the player name)")

	return cmd
}

func runPlayerCreate(cmd *cobra.Command, name string, flags playerCreateFlags) error {
	ctx := cmd.Context()

	return withDeps(func(d *Deps) error {
		slot := flags.slotName
		if slot == "" {
			slot = name
		}
		if d.Saves.Exists(slot) {
			return fmt.Errorf("save slot %q already exists", config.SanitizeSlotName(slot))
		}

		player, err := d.PlayerHandler.HandleCreate(ctx, handlers.CreatePlayerInput{
			Name:       name,
			Stats:      flags.stats,
			Traits:     flags.traits,
			Preference: flags.preference,
		})
		if err != nil {
			return fmt.Errorf("creating player: %w", err)
		}

		d.Saves.Add(slot, config.SaveEntry{PlayerID: player.ID, PlayerName: player.Name})
		if err := d.Saves.Save(d.BasePath); err != nil {
			return err
		}

		fmt.Printf("Created player %s in slot %q (now active)\n", player.Name, config.SanitizeSlotName(slot))
		return nil
	})
}

func newPlayerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List save slots",
		RunE:  runPlayerList,
	}
}

func runPlayerList(cmd *cobra.Command, args []string) error {
	return withDeps(func(d *Deps) error {
		names := d.Saves.Names()
		if len(names) == 0 {
			fmt.Println("No save slots.")
			fmt.Println("Use 'starcrossed player create NAME' to start a game.")
			return nil
		}

		fmt.Printf("  %-20s %-20s %s\n", "SLOT", "PLAYER", "ID")
		fmt.Printf("  %-20s %-20s %s\n", "----", "------", "--")

		for _, name := range names {
			entry := d.Saves.Slots[name]
			marker := " "
			if name == d.Saves.Active {
				marker = "*"
			}
			fmt.Printf("%s %-20s %-20s %s\n", marker, name, entry.PlayerName, entry.PlayerID)
		}

		return nil
	})
}

func newPlayerUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use SLOT",
		Short: "Make a save slot the active one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				if err := d.Saves.Use(args[0]); err != nil {
					return err
				}
				if err := d.Saves.Save(d.BasePath); err != nil {
					return err
				}
				fmt.Printf("Active slot: %s\n", d.Saves.Active)
				return nil
			})
		},
	}
}

func newPlayerShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current player",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkDisplayFormat(format); err != nil {
				return err
			}
			return withPlayer(func(d *Deps, playerID string) error {
				player, err := d.PlayerHandler.HandleShow(cmd.Context(), playerID)
				if err != nil {
					return err
				}
				if format == "json" {
					return printJSON(player)
				}
				printPlayer(player)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, json")

	return cmd
}

func printPlayer(p *entities.PlayerProfile) {
	fmt.Printf("%s (%s)\n", p.Name, p.ID)
	fmt.Printf("  Preference: %s\n", p.Preference)
	for _, stat := range entities.AllStats {
		fmt.Printf("  %-13s %3d\n", stat, p.Stats.Get(stat))
	}
	if len(p.Traits) > 0 {
		traits := make([]string, len(p.Traits))
		for i, t := range p.Traits {
			traits[i] = string(t)
		}
		fmt.Printf("  Traits: %s\n", strings.Join(traits, ", "))
	}
}
