package pipeline

import (
	"os"
	"path/filepath"

	"github.com/backmassage/undash/internal/naming"
)

// Discover walks root and returns every file and directory whose base name
// starts with the candidate prefix, deepest entries first.
//
// The walk is post-order: a directory's subtrees are fully visited before
// the directory's own matching children are appended. Renaming in the
// returned order therefore never invalidates the path of a candidate that
// has not been processed yet, even when a matched directory contains further
// matches. Unreadable subdirectories are skipped; only a read failure on
// root itself is an error.
func Discover(root string) ([]string, error) {
	var candidates []string

	var walk func(dir string, isRoot bool) error
	walk = func(dir string, isRoot bool) error {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if isRoot {
				return err
			}
			return nil
		}
		for _, e := range entries {
			if e.IsDir() {
				if err := walk(filepath.Join(dir, e.Name()), false); err != nil {
					return err
				}
			}
		}
		for _, e := range entries {
			if naming.IsCandidate(e.Name()) {
				candidates = append(candidates, filepath.Join(dir, e.Name()))
			}
		}
		return nil
	}

	if err := walk(root, true); err != nil {
		return nil, err
	}
	return candidates, nil
}
