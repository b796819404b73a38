package registry

import "fmt"

// ErrDuplicateType indicates that there are two plugins with the same integration type value.
type ErrDuplicateType struct {
	Type string
}

// Error returns the error message.
func (e ErrDuplicateType) Error() string {
	return fmt.Sprintf("duplicate plugin for integration type %s found", e.Type)
}

// ErrDuplicateActionID indicates that two actions resolved to the same catalog-level identifier.
type ErrDuplicateActionID struct {
	ID string
}

// Error returns the error message.
func (e ErrDuplicateActionID) Error() string {
	return fmt.Sprintf("duplicate catalog action identifier %s found", e.ID)
}
