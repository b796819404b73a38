package plugin

import (
	"fmt"
	"strings"
)

// ErrPluginNotFound is an error indicating that an integration type was not found in the registry.
type ErrPluginNotFound struct {
	Type       string
	ValidTypes []string
}

// Error returns the error message.
func (e ErrPluginNotFound) Error() string {
	return fmt.Sprintf(
		"the following integration type is not registered: %s (only the following types are registered: %s)",
		e.Type,
		strings.Join(e.ValidTypes, ", "),
	)
}
