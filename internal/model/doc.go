package model

// Package model defines the domain data structures shared by the layout engine,
// the code generator and the playground shells: skeleton elements, their
// orientation and radius enums, and export tasks. Elements are plain values so
// copying a slice of them never aliases an element.
