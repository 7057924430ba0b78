package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/starcrossed/internal/application/handlers"
)

func newCompatCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "compat [character]",
		Short: "Show compatibility with companions",
		Long: `Scores the player against one companion, or ranks every companion.

Examples:
  starcrossed compat
  starcrossed compat nyx --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkDisplayFormat(format); err != nil {
				return err
			}
			characterID := ""
			if len(args) > 0 {
				characterID = args[0]
			}
			return withPlayer(func(d *Deps, playerID string) error {
				views, err := d.RelationshipHandler.HandleCompatibility(cmd.Context(), playerID, characterID)
				if err != nil {
					return err
				}
				if format == "json" {
					return printJSON(views)
				}
				printCompatibility(views, characterID != "")
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, json")

	return cmd
}

func printCompatibility(views []handlers.CompatibilityView, detailed bool) {
	for _, v := range views {
		b := v.Score.Breakdown
		fmt.Printf("%-12s %3d%%  interests %3d  values %3d  style %3d  activities %3d\n",
			v.Name, v.Score.Overall, b.Interests, b.Values, b.ConversationStyle, b.Activities)
		if detailed {
			for _, line := range v.Score.Explanation {
				fmt.Printf("  - %s\n", line)
			}
		}
	}
}
