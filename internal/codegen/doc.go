package codegen

// Package codegen serializes a skeleton layout into markup. It renders the
// same units that the previews paint, so exported code and preview always
// agree on order and grouping.
