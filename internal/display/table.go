package display

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// Status values shown in the plan table.
const (
	StatusOK       = "ok"
	StatusConflict = "conflict"
)

// PlanRow is one line of the dry-run report.
type PlanRow struct {
	Current string
	New     string
	Status  string
}

// WritePlanTable renders the dry-run report as a bordered table.
func WritePlanTable(w io.Writer, rows []PlanRow) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Current", "New", "Status"})
	table.SetAutoWrapText(false)
	for _, r := range rows {
		table.Append([]string{r.Current, r.New, r.Status})
	}
	table.Render()
}
