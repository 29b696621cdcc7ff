package export

// Package export writes generated skeleton code to disk. Each write is tracked
// as a model.ExportTask so the playground can show status and reveal the file.
