package accounts

import "fmt"

// ErrFeatureDisabled signals that the managed-keys feature is not enabled for this deployment.
var ErrFeatureDisabled = fmt.Errorf("feature not enabled")

// ErrNotAuthenticated signals that no authenticated user is present.
var ErrNotAuthenticated = fmt.Errorf("not authenticated")

// ErrNoAccountLinked indicates that the user has not linked an account for the required provider.
type ErrNoAccountLinked struct {
	Provider string
}

// Error returns the error message.
func (e ErrNoAccountLinked) Error() string {
	return fmt.Sprintf("no %s account linked", e.Provider)
}

// ErrAccountLookupFailed indicates that the linked-account store could not be queried.
type ErrAccountLookupFailed struct {
	Cause error
}

// Error returns the error message.
func (e ErrAccountLookupFailed) Error() string {
	return fmt.Sprintf("failed to look up the linked account (%v)", e.Cause)
}

// Unwrap returns the underlying error.
func (e ErrAccountLookupFailed) Unwrap() error {
	return e.Cause
}
