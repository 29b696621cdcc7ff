package cli

// Package cli implements the skeletonne command line: exporting and previewing
// layouts built from YAML scripts, and looking up dimension tokens.
