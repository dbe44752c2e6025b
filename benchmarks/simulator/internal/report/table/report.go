package table

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/maypok86/seqlist/benchmarks/simulator/internal/report/simulation"
)

type Table struct {
	w     io.Writer
	table [][]simulation.Result
}

func NewTable(w io.Writer, table [][]simulation.Result) *Table {
	return &Table{
		w:     w,
		table: table,
	}
}

// Report writes moves/op per list (rows) and prefill size (columns).
func (t *Table) Report() error {
	if t == nil || len(t.table) == 0 {
		return nil
	}

	sizes := make([]string, 0, len(t.table[0]))
	for _, r := range t.table[0] {
		sizes = append(sizes, strconv.Itoa(r.Size()))
	}

	w := tablewriter.NewWriter(t.w)
	w.SetHeader(append([]string{"List"}, sizes...))
	w.SetBorders(tablewriter.Border{
		Left:   true,
		Top:    false,
		Right:  true,
		Bottom: false,
	})
	w.SetCenterSeparator("|")
	for _, results := range t.table {
		if len(results) == 0 {
			continue
		}
		processed := make([]string, 0, len(sizes)+1)
		processed = append(processed, results[0].Name())
		for _, r := range results {
			processed = append(processed, fmt.Sprintf("%0.2f", r.MovesPerOp()))
		}
		w.Append(processed)
	}
	w.Render()
	return nil
}
