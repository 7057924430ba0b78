package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/starcrossed/internal/application/handlers"
)

func newInteractCmd() *cobra.Command {
	var (
		delta  int
		format string
	)

	cmd := &cobra.Command{
		Use:   "interact CHARACTER KIND",
		Short: "Spend today's interaction with a companion",
		Long: fmt.Sprintf(`Interacts with a companion. Each companion accepts one interaction per day.

Kinds: %s

Examples:
  starcrossed interact zyx dialogue
  starcrossed interact luma gift --delta 6`, strings.Join(handlers.ValidInteractionKinds, ", ")),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkDisplayFormat(format); err != nil {
				return err
			}
			var deltaArg *int
			if cmd.Flags().Changed("delta") {
				deltaArg = &delta
			}
			return withPlayer(func(d *Deps, playerID string) error {
				view, err := d.InteractionHandler.HandleInteract(cmd.Context(), playerID, args[0], args[1], deltaArg)
				if err != nil {
					return err
				}
				if format == "json" {
					return printJSON(view)
				}
				printInteraction(view)
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&delta, "delta", "d", 0, "Affection change (default: the configured value for the kind)")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, json")

	return cmd
}

func printInteraction(v *handlers.InteractView) {
	fmt.Printf("%s with %s: %+d affection (%d -> %d)\n",
		v.Kind, v.CharacterID, v.Affection-v.PreviousAffection, v.PreviousAffection, v.Affection)
	if v.LevelChanged {
		fmt.Printf("Relationship is now: %s\n", v.Level.Title())
	}
	for _, m := range v.NewMilestones {
		fmt.Printf("Milestone reached: %s\n", m.Title)
	}
	for _, p := range v.NewPhotos {
		fmt.Printf("Photo unlocked: %s\n", p.Title)
	}
	if len(v.NewlyRevealed) > 0 {
		fmt.Printf("Learned about them: %s\n", strings.Join(v.NewlyRevealed, ", "))
	}
	if c := v.Conflict; c != nil {
		fmt.Printf("\nA conflict broke out (%s, %s): %s\n", c.Type, c.Severity, c.Description)
		fmt.Printf("See 'starcrossed conflict show %s'\n", v.CharacterID)
	}
}
