package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/starcrossed/internal/application/handlers"
)

func newConflictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conflict",
		Short: "Inspect and resolve conflicts",
	}

	cmd.AddCommand(
		newConflictShowCmd(),
		newConflictResolveCmd(),
		newConflictStartCmd(),
	)

	return cmd
}

func newConflictShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show CHARACTER",
		Short: "Show the active conflict and its resolution options",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkDisplayFormat(format); err != nil {
				return err
			}
			return withPlayer(func(d *Deps, playerID string) error {
				view, err := d.ConflictHandler.HandleShow(cmd.Context(), playerID, args[0])
				if err != nil {
					return err
				}
				if format == "json" {
					return printJSON(view)
				}
				printConflict(view)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, json")

	return cmd
}

func newConflictResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve CHARACTER OPTION",
		Short: "Try to resolve the active conflict",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPlayer(func(d *Deps, playerID string) error {
				view, err := d.ConflictHandler.HandleResolve(cmd.Context(), playerID, args[0], args[1])
				if err != nil {
					return err
				}
				printResolution(view)
				return nil
			})
		},
	}
}

func newConflictStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start CHARACTER TYPE",
		Short: "Start a conflict of the given type",
		Long:  fmt.Sprintf("Starts a conflict without a roll.\n\nTypes: %s", strings.Join(handlers.ValidConflictTypes, ", ")),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPlayer(func(d *Deps, playerID string) error {
				view, err := d.ConflictHandler.HandleStart(cmd.Context(), playerID, args[0], args[1])
				if err != nil {
					return err
				}
				printConflict(view)
				return nil
			})
		},
	}
}

func printConflict(v *handlers.ConflictView) {
	fmt.Printf("Conflict with %s: %s (%s)\n", v.CharacterID, v.Type, v.Severity)
	fmt.Printf("  %s\n\n", v.Description)
	fmt.Printf("  %-20s %6s  %s\n", "OPTION", "CHANCE", "DESCRIPTION")
	for _, o := range v.Options {
		line := fmt.Sprintf("  %-20s %5d%%  %s", o.ID, o.SuccessChance, o.Description)
		if o.Requirement != nil {
			line += fmt.Sprintf(" (bonus above %s %d)", o.Requirement.Stat, o.Requirement.MinValue)
		}
		fmt.Println(line)
	}
}

func printResolution(v *handlers.ResolveView) {
	outcome := "failed"
	if v.Success {
		outcome = "succeeded"
	}
	fmt.Printf("%s %s (rolled %.1f against %d%%)\n", v.OptionID, outcome, v.Roll, v.SuccessChance)
	fmt.Printf("Affection %+d, now %d (%s)\n", v.Recovery, v.Affection, v.Level.Title())
	for _, m := range v.NewMilestones {
		fmt.Printf("Milestone reached: %s\n", m.Title)
	}
	for _, p := range v.NewPhotos {
		fmt.Printf("Photo unlocked: %s\n", p.Title)
	}
}
