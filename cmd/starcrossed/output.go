package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	return writeJSON(os.Stdout, v)
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// checkDisplayFormat validates a --format flag value for display commands.
func checkDisplayFormat(format string) error {
	if !contains(validDisplayFormats, format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", format, validDisplayFormats)
	}
	return nil
}

// affectionBar renders affection as a fixed-width bar.
func affectionBar(affection int) string {
	const width = 20
	filled := affection * width / 100
	filled = max(0, min(width, filled))
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
