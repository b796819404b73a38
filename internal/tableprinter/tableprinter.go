// Package tableprinter provides behavior to write tabular data to a given
// destination.
package tableprinter

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"go.flow.arcalot.io/catalog"
)

const (
	tabwriterMinWidth = 6
	tabwriterWidth    = 4
	tabwriterPadding  = 3
	tabwriterPadChar  = ' '
	tabwriterFlags    = tabwriter.FilterHTML
)

// NewTabWriter returns a tabwriter that transforms tabbed columns into aligned
// text.
func NewTabWriter(output io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(output, tabwriterMinWidth, tabwriterWidth, tabwriterPadding, tabwriterPadChar, tabwriterFlags)
}

// PrintTwoColumnTable writes a two column table with headers to a given
// output destination.
func PrintTwoColumnTable(output io.Writer, headers []string, rows [][]string) {
	w := NewTabWriter(output)

	// column headers are at the top, so they are written first
	for _, col := range headers {
		_, _ = fmt.Fprint(w, strings.ToUpper(col), "\t")
	}
	_, _ = fmt.Fprintln(w)

	// rows form the body of the table
	for _, row := range rows {
		_, _ = fmt.Fprintln(w, row[0], "\t", row[1])
	}

	_ = w.Flush()
}

// PrintView writes a grouped catalog view to the given output destination, one category header per group followed
// by its actions.
func PrintView(output io.Writer, view catalog.View) {
	switch view.State {
	case catalog.ViewStateNoResults:
		_, _ = fmt.Fprintln(output, "No actions found")
		return
	case catalog.ViewStateAllHidden:
		_, _ = fmt.Fprintln(output, "All groups are hidden")
		return
	case catalog.ViewStateOK:
	}
	for i, group := range view.Groups {
		if i > 0 {
			_, _ = fmt.Fprintln(output)
		}
		_, _ = fmt.Fprintf(output, "%s\n", strings.ToUpper(group.Category))
		rows := make([][]string, len(group.Actions))
		for j, action := range group.Actions {
			rows[j] = []string{action.Label, action.Description}
		}
		PrintTwoColumnTable(output, []string{"action", "description"}, rows)
	}
}
