// Package report renders priced spot vectors for the console.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// Table writes one row per spot with its index and value.
// spots and values must have the same length.
func Table(w io.Writer, spots, values []float64) error {
	if len(spots) != len(values) {
		return fmt.Errorf("report: %d spots but %d values", len(spots), len(values))
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "spot", "value"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetAutoFormatHeaders(false)

	for i := range spots {
		table.Append([]string{
			strconv.Itoa(i),
			strconv.FormatFloat(spots[i], 'f', -1, 64),
			strconv.FormatFloat(values[i], 'f', 6, 64),
		})
	}

	table.Render()
	return nil
}

// Summary writes a two-column key/value table, used for run metadata.
func Summary(w io.Writer, rows [][2]string) {
	table := tablewriter.NewWriter(w)
	table.SetColumnSeparator("")
	table.SetBorder(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, r := range rows {
		table.Append([]string{r[0], r[1]})
	}
	table.Render()
}
