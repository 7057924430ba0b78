package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newResetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the current player and all of its progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				entry, err := resolveSlot(d.Saves)
				if err != nil {
					return err
				}

				if !force && !confirmAction(fmt.Sprintf("Delete %s and all progress?", entry.PlayerName)) {
					fmt.Println("Cancelled.")
					return nil
				}

				if err := d.PlayerHandler.HandleReset(cmd.Context(), entry.PlayerID); err != nil {
					return fmt.Errorf("resetting game: %w", err)
				}

				for _, name := range d.Saves.Names() {
					if d.Saves.Slots[name].PlayerID == entry.PlayerID {
						d.Saves.Remove(name)
					}
				}
				if err := d.Saves.Save(d.BasePath); err != nil {
					return err
				}

				fmt.Printf("Deleted %s.\n", entry.PlayerName)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}

func confirmAction(prompt string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s [y/N]: ", prompt)
	response, _ := reader.ReadString('\n') // Error ignored: EOF/error treated as "no"
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
