package layout

// Package layout holds the pure layout engine: grouping a flat element list
// into render units, redistributing row widths, and the mutation policy that
// decides how add, remove and orientation changes affect rows. Every function
// takes a list and returns a new one; inputs are never modified.
