package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRosterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "List the companions",
		RunE:  runRosterList,
	}

	cmd.AddCommand(newRosterCheckCmd())

	return cmd
}

func runRosterList(cmd *cobra.Command, args []string) error {
	return withDeps(func(d *Deps) error {
		list := d.RosterHandler.HandleList()

		fmt.Printf("%-12s %-20s %s\n", "ID", "NAME", "SPECIES")
		fmt.Printf("%-12s %-20s %s\n", "--", "----", "-------")
		for _, c := range list {
			fmt.Printf("%-12s %-20s %s\n", c.ID, c.Name, c.Species)
		}
		return nil
	})
}

func newRosterCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Validate a roster file (.yaml, .yml or .json)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				profiles, err := d.RosterHandler.HandleCheck(args[0])
				if err != nil {
					return err
				}
				fmt.Printf("%s: %d companions OK\n", args[0], len(profiles))
				return nil
			})
		},
	}
}
