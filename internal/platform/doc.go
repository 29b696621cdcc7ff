package platform

// Package platform contains OS integration glue: export file writing,
// the user's Downloads directory, and OS open/reveal helpers.
