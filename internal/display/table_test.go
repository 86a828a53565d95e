package display

import (
	"bytes"
	"strings"
	"testing"
)

func TestWritePlanTable(t *testing.T) {
	var buf bytes.Buffer
	WritePlanTable(&buf, []PlanRow{
		{Current: "/data/ - notes.txt", New: "/data/_notes.txt", Status: StatusOK},
		{Current: "/data/ - plan.md", New: "/data/_plan.md", Status: StatusConflict},
	})

	out := buf.String()
	for _, want := range []string{
		"CURRENT", "NEW", "STATUS",
		"/data/ - notes.txt", "/data/_notes.txt",
		StatusOK, StatusConflict,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestWritePlanTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	WritePlanTable(&buf, nil)
	if !strings.Contains(buf.String(), "CURRENT") {
		t.Errorf("empty table should still render headers:\n%s", buf.String())
	}
}
