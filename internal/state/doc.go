package state

// Package state holds the explicit playground state container. A Store owns
// the current element list, applies layout operations to it one at a time and
// hands out copies, so the UI and CLI never share a mutable slice.
