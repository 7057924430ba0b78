package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/starcrossed/internal/infrastructure/config"
)

func newSaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Export and import game snapshots",
	}

	cmd.AddCommand(
		newSaveExportCmd(),
		newSaveImportCmd(),
	)

	return cmd
}

func newSaveExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the current game to a JSON snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPlayer(func(d *Deps, playerID string) (err error) {
				var w io.Writer = os.Stdout
				if output != "" {
					f, ferr := os.OpenFile(output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
					if ferr != nil {
						return fmt.Errorf("creating file: %w", ferr)
					}
					defer func() {
						if cerr := f.Close(); cerr != nil && err == nil {
							err = fmt.Errorf("closing file: %w", cerr)
						}
					}()
					w = f
				}

				state, err := d.SaveHandler.HandleExport(cmd.Context(), playerID, w)
				if err != nil {
					return err
				}
				if output != "" {
					fmt.Printf("Saved %s (%d companions) to %s\n", state.Player.Name, len(state.Records), output)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func newSaveImportCmd() *cobra.Command {
	var slotName string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Restore a JSON snapshot into a save slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				result, err := d.SaveHandler.HandleImportFile(cmd.Context(), args[0])
				if err != nil {
					return err
				}

				slot := slotName
				if slot == "" {
					slot = result.PlayerName
				}
				d.Saves.Add(slot, config.SaveEntry{PlayerID: result.PlayerID, PlayerName: result.PlayerName})
				if err := d.Saves.Save(d.BasePath); err != nil {
					return err
				}

				fmt.Printf("Restored %s (%d companions) into slot %q (now active)\n",
					result.PlayerName, result.Records, config.SanitizeSlotName(slot))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&slotName, "slot-name", "", "Save slot name (default: the player name)")

	return cmd
}
