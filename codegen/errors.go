package codegen

import "fmt"

// ErrNotTestable indicates that a plugin does not provide a credential test.
type ErrNotTestable struct {
	Type string
}

// Error returns the error message.
func (e ErrNotTestable) Error() string {
	return fmt.Sprintf("the %s integration does not provide a credential test", e.Type)
}

// ErrActionNotFound indicates that a plugin has no action with the requested slug.
type ErrActionNotFound struct {
	Type string
	Slug string
}

// Error returns the error message.
func (e ErrActionNotFound) Error() string {
	return fmt.Sprintf("the %s integration has no action with slug %s", e.Type, e.Slug)
}

// ErrNoTemplate indicates that no codegen template exists for an action's step import path.
type ErrNoTemplate struct {
	Type           string
	StepImportPath string
}

// Error returns the error message.
func (e ErrNoTemplate) Error() string {
	return fmt.Sprintf("the %s integration has no codegen template for step import path %s", e.Type, e.StepImportPath)
}
