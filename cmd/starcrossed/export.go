package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/starcrossed/internal/application/handlers"
)

type exportFlags struct {
	format string
	output string
}

type exporter struct {
	handler *handlers.RelationshipHandler
	format  string
	output  string
}

func newExportCmd() *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the relationship overview",
		Long:  "Exports one row per companion to JSON, CSV, or markdown format.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "json", "Output format (json, csv, markdown)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runExport(cmd *cobra.Command, flags exportFlags) error {
	if !contains(validFormats, flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, validFormats)
	}

	ctx := cmd.Context()

	return withPlayer(func(d *Deps, playerID string) error {
		e := &exporter{
			handler: d.RelationshipHandler,
			format:  flags.format,
			output:  flags.output,
		}

		rows, err := e.fetchRows(ctx, playerID)
		if err != nil {
			return err
		}

		return e.export(rows)
	})
}

func (e *exporter) fetchRows(ctx context.Context, playerID string) ([]handlers.SummaryView, error) {
	rows, err := e.handler.HandleOverview(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("building overview: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no companions to export")
	}
	return rows, nil
}

func (e *exporter) export(rows []handlers.SummaryView) (err error) {
	var w io.Writer
	var f *os.File

	if e.output != "" {
		f, err = os.OpenFile(e.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("creating file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing file: %w", cerr)
			}
		}()
		w = f
	} else {
		w = os.Stdout
	}

	if err := e.formatRows(w, rows); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if e.output != "" {
		fmt.Printf("Exported %d companions to %s\n", len(rows), e.output)
	}

	return nil
}

func (e *exporter) formatRows(w io.Writer, rows []handlers.SummaryView) error {
	switch e.format {
	case "json":
		return formatJSON(w, rows)
	case "csv":
		return formatCSV(w, rows)
	case "markdown":
		return formatMarkdown(w, rows)
	default:
		return fmt.Errorf("unknown format: %s", e.format)
	}
}

func formatJSON(w io.Writer, rows []handlers.SummaryView) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rows)
}

func formatCSV(w io.Writer, rows []handlers.SummaryView) error {
	writer := csv.NewWriter(w)

	header := []string{"character_id", "name", "affection", "level", "milestones", "photos", "can_interact", "conflict_active"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		row := []string{
			r.CharacterID,
			r.Name,
			strconv.Itoa(r.Affection),
			r.LevelTitle,
			strconv.Itoa(r.Milestones),
			strconv.Itoa(r.Photos),
			strconv.FormatBool(r.CanInteract),
			strconv.FormatBool(r.ConflictActive),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatMarkdown(w io.Writer, rows []handlers.SummaryView) error {
	if _, err := fmt.Fprintf(w, "# Relationships\n\nTotal: %d companions\n\n", len(rows)); err != nil {
		return err
	}

	if _, err := fmt.Fprint(w, "| Companion | Affection | Level | Milestones | Photos | Conflict |\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "|-----------|-----------|-------|------------|--------|----------|\n"); err != nil {
		return err
	}

	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "| %s | %d | %s | %d | %d | %s |\n",
			escapeMarkdown(r.Name),
			r.Affection,
			escapeMarkdown(r.LevelTitle),
			r.Milestones,
			r.Photos,
			yesNo(r.ConflictActive),
		); err != nil {
			return err
		}
	}

	return nil
}

func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
