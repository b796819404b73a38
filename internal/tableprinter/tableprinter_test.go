package tableprinter_test

import (
	"bytes"
	"testing"

	"go.arcalot.io/assert"
	"go.flow.arcalot.io/catalog"
	"go.flow.arcalot.io/catalog/internal/tableprinter"
	"go.flow.arcalot.io/catalog/plugin"
)

func TestPrintTwoColumnTable(t *testing.T) {
	var buf bytes.Buffer
	tableprinter.PrintTwoColumnTable(
		&buf,
		[]string{"action", "description"},
		[][]string{
			{"Get Order", "Retrieve an order"},
		},
	)
	assert.Contains(t, buf.String(), "ACTION")
	assert.Contains(t, buf.String(), "DESCRIPTION")
	assert.Contains(t, buf.String(), "Get Order")
}

func TestPrintView(t *testing.T) {
	var buf bytes.Buffer
	tableprinter.PrintView(&buf, catalog.View{
		State: catalog.ViewStateOK,
		Groups: []catalog.Group{
			{
				Category: "System",
				Actions: []plugin.Entry{
					{Label: "HTTP Request", Description: "Make an HTTP request to any API"},
				},
			},
			{
				Category: "Shopify",
				Actions: []plugin.Entry{
					{Label: "Get Order", Description: "Retrieve an order"},
				},
			},
		},
	})
	output := buf.String()
	assert.Contains(t, output, "SYSTEM")
	assert.Contains(t, output, "SHOPIFY")
	assert.Contains(t, output, "HTTP Request")
	assert.Contains(t, output, "Get Order")
}

func TestPrintViewTerminalStates(t *testing.T) {
	var buf bytes.Buffer
	tableprinter.PrintView(&buf, catalog.View{State: catalog.ViewStateNoResults})
	assert.Contains(t, buf.String(), "No actions found")

	buf.Reset()
	tableprinter.PrintView(&buf, catalog.View{State: catalog.ViewStateAllHidden})
	assert.Contains(t, buf.String(), "All groups are hidden")
}
