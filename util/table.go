/*
table.go

MIT License

Copyright (c) Foxglove Technologies Inc

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

/*
 Derived from https://github.com/foxglove/foxglove-cli/blob/main/foxglove/util/tablewriter/tablewriter.go
*/

package util

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// Table is a set of rows with named columns.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Width returns the width of the table when rendered with one record per line,
// along with the width of each cell.
func (t Table) Width() (int, []int) {
	cellWidths := make([]int, len(t.Headers))
	for i, header := range t.Headers {
		cellWidths[i] = len(header) + 4 // pad two spaces each side
	}
	for _, row := range t.Rows {
		for i, column := range row {
			cellWidths[i] = max(cellWidths[i], len(column)+2)
		}
	}
	// size the cells so the headers can be center-spaced
	for i, header := range t.Headers {
		if (cellWidths[i]-len(header))%2 == 1 {
			cellWidths[i]++
		}
	}
	tableWidth := len(t.Headers) + 1
	for _, width := range cellWidths {
		tableWidth += width
	}
	return tableWidth, cellWidths
}

/*
printRows outputs one record per line:
|   x   |   y   |   z   |  voxel  |
|-------|-------|-------|---------|
| 0     | 0     | 0     | 9999    |
*/
func (t Table) printRows(w io.Writer) {
	_, cellWidths := t.Width()
	fmt.Fprint(w, "|")
	for i, header := range t.Headers {
		padding := strings.Repeat(" ", (cellWidths[i]-len(header))/2)
		fmt.Fprintf(w, "%s%s%s|", padding, header, padding)
	}
	fmt.Fprintln(w)
	fmt.Fprint(w, "|")
	for _, width := range cellWidths {
		fmt.Fprintf(w, "%s|", strings.Repeat("-", width))
	}
	fmt.Fprintln(w)
	for _, row := range t.Rows {
		fmt.Fprint(w, "|")
		for i, col := range row {
			fmt.Fprintf(w, " %s%s|", col, strings.Repeat(" ", cellWidths[i]-len(col)-1))
		}
		fmt.Fprintln(w)
	}
}

/*
printRecords outputs a series of records for terminals too narrow for
printRows:

	-[ RECORD 1 ]+-----------------
	branches     | 9
	leaves       | 64
*/
func (t Table) printRecords(w io.Writer, termwidth int) {
	var maxHeaderWidth int
	var maxRecordWidth int
	for _, header := range t.Headers {
		maxHeaderWidth = max(maxHeaderWidth, len(header))
	}
	for _, row := range t.Rows {
		for _, col := range row {
			maxRecordWidth = max(maxRecordWidth, len(col))
		}
	}
	longestRecordHeader := fmt.Sprintf("-[ RECORD %d ]", len(t.Rows)+1)
	maxHeaderWidth = max(maxHeaderWidth, len(longestRecordHeader))

	// extend the dashes 15 past the widest record, unless that would wrap.
	dashesRightExtent := max(0, min(maxRecordWidth+15, termwidth-maxHeaderWidth-1))
	rightDashes := strings.Repeat("-", dashesRightExtent)

	for i, row := range t.Rows {
		recordHeader := fmt.Sprintf("-[ RECORD %d ]", i+1)
		fmt.Fprintf(w, "%s%s+%s\n",
			recordHeader,
			strings.Repeat("-", maxHeaderWidth-len(recordHeader)),
			rightDashes,
		)
		for j, col := range row {
			fmt.Fprintf(w, "%-*s| %-*s\n", maxHeaderWidth, t.Headers[j], max(0, dashesRightExtent-1), col)
		}
	}
}

// Print writes the table to w, as rows if it fits within termwidth and as
// records otherwise.
func (t Table) Print(w io.Writer, termwidth int) {
	if tableWidth, _ := t.Width(); termwidth < tableWidth {
		t.printRecords(w, termwidth)
		return
	}
	t.printRows(w)
}

// TermWidth returns the width of the terminal, or 80 if it cannot be
// determined.
func TermWidth() int {
	if width := readline.GetScreenWidth(); width > 0 {
		return width
	}
	return 80
}

// PrintTable writes a table sized to the terminal.
func PrintTable(w io.Writer, headers []string, data [][]string) {
	Table{Headers: headers, Rows: data}.Print(w, TermWidth())
}
