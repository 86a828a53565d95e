// Package naming implements the rename rule: base names beginning with the
// literal " - " prefix are rewritten to begin with "_", and target paths that
// already exist are disambiguated with a numeric suffix.
//
// The functions here are the only place the prefix and suffix formats are
// encoded; discovery, planning, and execution all go through them.
package naming
