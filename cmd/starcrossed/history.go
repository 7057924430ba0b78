package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ersonp/starcrossed/internal/domain/entities"
)

func newHistoryCmd() *cobra.Command {
	var (
		limit  int
		format string
		action string
	)

	cmd := &cobra.Command{
		Use:   "history [character]",
		Short: "Show what happened with a companion",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkDisplayFormat(format); err != nil {
				return err
			}
			characterID := ""
			if len(args) > 0 {
				characterID = args[0]
			}
			if action != "" {
				return runActionHistory(cmd, characterID, action, limit, format)
			}
			return withPlayer(func(d *Deps, playerID string) error {
				entries, err := d.RelationshipHandler.HandleHistory(cmd.Context(), playerID, characterID, limit)
				if err != nil {
					return err
				}
				return printHistory(entries, format)
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", DefaultHistoryLimit, "Maximum number of entries to display")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, json")
	cmd.Flags().StringVarP(&action, "action", "a", "", "Only show entries of this action (e.g. conflict_resolved)")

	return cmd
}

// runActionHistory reads the per-action audit index and keeps the entries of the current player.
func runActionHistory(cmd *cobra.Command, characterID, action string, limit int, format string) error {
	return withInternalDeps(func(d *internalDeps) error {
		entry, err := resolveSlot(d.Saves)
		if err != nil {
			return err
		}

		all, err := d.store.FindAuditLogByAction(cmd.Context(), action, 0)
		if err != nil {
			return fmt.Errorf("reading %s history: %w", action, err)
		}

		entries := filterAuditEntries(all, entry.PlayerID, characterID, limit)
		d.logger.Debug("action history",
			zap.String("action", action),
			zap.Int("scanned", len(all)),
			zap.Int("matched", len(entries)))

		return printHistory(entries, format)
	})
}

// filterAuditEntries keeps the entries of playerID (and characterID, when set), up to limit.
func filterAuditEntries(all []entities.AuditEntry, playerID, characterID string, limit int) []entities.AuditEntry {
	entries := make([]entities.AuditEntry, 0)
	for _, e := range all {
		if e.PlayerID != playerID || (characterID != "" && e.CharacterID != characterID) {
			continue
		}
		entries = append(entries, e)
		if limit > 0 && len(entries) == limit {
			break
		}
	}
	return entries
}

func printHistory(entries []entities.AuditEntry, format string) error {
	if format == "json" {
		return printJSON(entries)
	}
	if len(entries) == 0 {
		fmt.Println("Nothing has happened yet.")
		return nil
	}
	for _, e := range entries {
		printAuditEntry(e)
	}
	return nil
}

func printAuditEntry(e entities.AuditEntry) {
	who := e.CharacterID
	if who == "" {
		who = "-"
	}
	fmt.Printf("%s  %-10s %-20s %s\n", e.CreatedAt.Local().Format("2006-01-02 15:04"), who, e.Action, formatDetails(e.Details))
}

func formatDetails(details map[string]any) string {
	if len(details) == 0 {
		return ""
	}
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, details[k]))
	}
	return strings.Join(parts, " ")
}
