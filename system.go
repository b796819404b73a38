package catalog

import "go.flow.arcalot.io/catalog/plugin"

// SystemCategory is the reserved category of the built-in actions. It always sorts before every other category.
const SystemCategory = "System"

// System actions ship with the workflow builder itself and carry no integration.
var systemEntries = []plugin.Entry{
	{
		ID:          "HTTP Request",
		Label:       "HTTP Request",
		Description: "Make an HTTP request to any API",
		Category:    SystemCategory,
	},
	{
		ID:          "Database Query",
		Label:       "Database Query",
		Description: "Query your database",
		Category:    SystemCategory,
	},
	{
		ID:          "Condition",
		Label:       "Condition",
		Description: "Branch based on a condition",
		Category:    SystemCategory,
	},
}

// System returns the built-in system actions as catalog entries.
func System() []plugin.Entry {
	result := make([]plugin.Entry, len(systemEntries))
	copy(result, systemEntries)
	return result
}
