package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/starcrossed/internal/application/handlers"
)

func newStatusCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "status [character]",
		Short: "Show relationship status",
		Long: `Shows the relationship with one companion, or an overview of all of them.

Examples:
  starcrossed status
  starcrossed status zyx
  starcrossed status luma --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkDisplayFormat(format); err != nil {
				return err
			}
			if len(args) == 0 {
				return runOverview(cmd, format)
			}
			return runStatus(cmd, args[0], format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, json")

	return cmd
}

func runOverview(cmd *cobra.Command, format string) error {
	return withPlayer(func(d *Deps, playerID string) error {
		views, err := d.RelationshipHandler.HandleOverview(cmd.Context(), playerID)
		if err != nil {
			return err
		}
		if format == "json" {
			return printJSON(views)
		}
		printOverview(views)
		return nil
	})
}

func runStatus(cmd *cobra.Command, characterID, format string) error {
	return withPlayer(func(d *Deps, playerID string) error {
		view, err := d.RelationshipHandler.HandleStatus(cmd.Context(), playerID, characterID)
		if err != nil {
			return err
		}
		if format == "json" {
			return printJSON(view)
		}
		printStatus(view)
		return nil
	})
}

func printOverview(views []handlers.SummaryView) {
	fmt.Printf("%-10s %-12s %4s %-22s %-18s %s\n", "ID", "NAME", "AFF", "", "LEVEL", "TODAY")
	for _, v := range views {
		today := "ready"
		if !v.CanInteract {
			today = "done"
		}
		if v.ConflictActive {
			today += " (conflict!)"
		}
		fmt.Printf("%-10s %-12s %4d %-22s %-18s %s\n",
			v.CharacterID, v.Name, v.Affection, affectionBar(v.Affection), v.LevelTitle, today)
	}
}

func printStatus(v *handlers.StatusView) {
	p := v.Profile
	fmt.Printf("%s (%s)\n", p.Name, v.CharacterID)
	fmt.Printf("  Affection: %d %s\n", v.Affection, affectionBar(v.Affection))
	fmt.Printf("  Level:     %s\n", v.LevelTitle)
	if v.NextLevel != "" {
		fmt.Printf("  Next:      %s at %d\n", v.NextLevel.Title(), v.NextThreshold)
	}
	fmt.Printf("  Interactions: %d (available today: %s)\n", v.InteractionCount, yesNo(v.CanInteract))

	fmt.Println()
	fmt.Println("Known:")
	if p.Species != "" {
		fmt.Printf("  Species: %s\n", p.Species)
	}
	if len(p.Interests) > 0 {
		parts := make([]string, len(p.Interests))
		for i, in := range p.Interests {
			parts[i] = fmt.Sprintf("%s (%d)", in.Category, in.Intensity)
		}
		fmt.Printf("  Interests: %s\n", strings.Join(parts, ", "))
	}
	if p.ConversationStyle != "" {
		fmt.Printf("  Conversation style: %s\n", p.ConversationStyle)
	}
	if len(p.Values) > 0 {
		parts := make([]string, len(p.Values))
		for i, val := range p.Values {
			parts[i] = string(val)
		}
		fmt.Printf("  Values: %s\n", strings.Join(parts, ", "))
	}
	if len(p.Dealbreakers) > 0 {
		fmt.Printf("  Dealbreakers: %s\n", strings.Join(p.Dealbreakers, ", "))
	}
	fmt.Printf("  Revealed: %s\n", strings.Join(p.Revealed, ", "))

	fmt.Println()
	fmt.Println("Milestones:")
	for _, m := range v.Milestones {
		mark := " "
		if m.Achieved {
			mark = "x"
		}
		fmt.Printf("  [%s] %-22s %3d\n", mark, m.Title, m.UnlockThreshold)
	}
	fmt.Printf("Photos: %d/%d unlocked\n", v.PhotosUnlocked, v.PhotosTotal)

	if c := v.ActiveConflict; c != nil {
		fmt.Println()
		fmt.Printf("Conflict (%s, %s): %s\n", c.Type, c.Severity, c.Description)
		fmt.Printf("  Resolve with 'starcrossed conflict show %s'\n", v.CharacterID)
	}
}

func newGalleryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gallery CHARACTER",
		Short: "Show a companion's photo gallery",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPlayer(func(d *Deps, playerID string) error {
				view, err := d.RelationshipHandler.HandleGallery(cmd.Context(), playerID, args[0])
				if err != nil {
					return err
				}

				fmt.Printf("%s's gallery\n", view.Name)
				for _, p := range view.Photos {
					if p.Unlocked {
						fmt.Printf("  %-22s unlocked %s\n", p.Title, p.UnlockedDate.Format("2006-01-02"))
					} else {
						fmt.Printf("  %-22s locked (affection %d)\n", "???", p.UnlockThreshold)
					}
				}
				return nil
			})
		},
	}
}
