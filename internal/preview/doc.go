package preview

// Package preview paints a layout in the terminal with lipgloss, using the
// same row grouping as the generated code so both always agree.
