package planner

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	p := New(filepath.Join("/data", "media", " - notes.txt"))

	if p.Name != " - notes.txt" {
		t.Errorf("Name = %q, want %q", p.Name, " - notes.txt")
	}
	if p.NewName != "_notes.txt" {
		t.Errorf("NewName = %q, want %q", p.NewName, "_notes.txt")
	}
	want := filepath.Join("/data", "media", "_notes.txt")
	if p.Target != want {
		t.Errorf("Target = %q, want %q", p.Target, want)
	}
}

func TestBuild_PreservesOrder(t *testing.T) {
	paths := []string{
		filepath.Join("/r", " - a", " - deep.txt"),
		filepath.Join("/r", " - a"),
		filepath.Join("/r", " - b.txt"),
	}
	plans := Build(paths)

	if len(plans) != len(paths) {
		t.Fatalf("got %d plans, want %d", len(plans), len(paths))
	}
	for i, p := range plans {
		if p.Path != paths[i] {
			t.Errorf("plans[%d].Path = %q, want %q", i, p.Path, paths[i])
		}
	}
}

func TestTargetExists(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, " - notes.txt")
	if err := os.WriteFile(src, []byte{}, 0o644); err != nil {
		t.Fatal(err)
	}

	p := New(src)
	if p.TargetExists() {
		t.Error("TargetExists() = true before target is created")
	}

	if err := os.WriteFile(p.Target, []byte{}, 0o644); err != nil {
		t.Fatal(err)
	}
	if !p.TargetExists() {
		t.Error("TargetExists() = false after target was created")
	}
}
