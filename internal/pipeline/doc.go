// Package pipeline orchestrates candidate discovery, the dry-run report,
// the interactive rename loop, and batch summary reporting.
package pipeline
