package main

// Default limits for CLI commands.
const (
	DefaultHistoryLimit = 20
)

// Valid export formats.
var validFormats = []string{"json", "csv", "markdown"}

// Valid display formats.
var validDisplayFormats = []string{"text", "json"}
