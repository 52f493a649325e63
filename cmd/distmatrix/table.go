package main

import (
	"bytes"

	"github.com/olekukonko/tablewriter"
)

// NewMatrixTable renders table with one row per origin and one column per
// destination.
func NewMatrixTable(title string, origins, destinations []string, table [][]string) string {
	b := bytes.NewBuffer([]byte{})
	w := tablewriter.NewWriter(b)

	w.SetHeader(append([]string{title}, destinations...))
	for i, row := range table {
		label := ""
		if i < len(origins) {
			label = origins[i]
		}

		w.Append(append([]string{label}, row...))
	}

	w.SetRowLine(true)
	w.SetRowSeparator("-")
	w.SetAutoFormatHeaders(false)
	w.SetAutoWrapText(false)

	w.Render()

	return b.String()
}
