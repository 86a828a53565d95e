// Package planner turns discovered candidate paths into rename plans: the
// candidate paired with its computed new base name and target path.
package planner

import (
	"os"
	"path/filepath"

	"github.com/backmassage/undash/internal/naming"
)

// Plan describes one intended rename. The target always lives in the same
// parent directory as the candidate.
type Plan struct {
	Path    string // current absolute path of the candidate
	Name    string // current base name (starts with the candidate prefix)
	NewName string // computed base name ("_" + Name minus the prefix)
	Target  string // full path the candidate should be renamed to
}

// New builds the plan for a single candidate path.
func New(path string) Plan {
	name := filepath.Base(path)
	newName := naming.TargetName(name)
	return Plan{
		Path:    path,
		Name:    name,
		NewName: newName,
		Target:  filepath.Join(filepath.Dir(path), newName),
	}
}

// Build maps discovered candidate paths to plans, preserving order. Order
// matters: discovery yields deeper entries first, and applying plans in that
// order keeps not-yet-processed paths valid when a parent directory is
// renamed.
func Build(paths []string) []Plan {
	plans := make([]Plan, len(paths))
	for i, p := range paths {
		plans[i] = New(p)
	}
	return plans
}

// TargetExists reports whether something already occupies the plan's target
// path. Evaluated fresh on each call so execution sees the filesystem as it
// is, not as it was at planning time.
func (p Plan) TargetExists() bool {
	_, err := os.Lstat(p.Target)
	return err == nil
}
