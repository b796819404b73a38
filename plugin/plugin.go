package plugin

import "context"

// Plugin is the description of a single integration in the action catalog. A plugin declares its display metadata,
// the form fields required to configure an integration instance, and the actions a workflow may bind to.
//
// Plugins are passive descriptors. They must not perform any I/O when constructed or queried; anything that talks
// to the integration's API belongs behind the Testable capability's deferred accessor.
type Plugin interface {
	// Type returns the identifier that uniquely identifies this integration.
	// e.g. "shopify"
	Type() string

	// Label returns the human-readable name of the integration.
	Label() string

	// Description returns a short description of what the integration does.
	Description() string

	// Icon returns an opaque renderable icon reference. The catalog does not interpret this value, it only hands
	// it to the hosting UI.
	Icon() string

	// FormFields returns the ordered credential and configuration fields needed to set up an integration instance.
	FormFields() []FormField

	// Actions returns the ordered list of actions this integration exposes.
	Actions() []Action
}

// Testable is an optional plugin capability for integrations that can verify their credentials. The TestConfig
// accessor must be cheap and side effect free; only the function it yields performs any I/O.
type Testable interface {
	Plugin

	// TestConfig returns the deferred credential test configuration.
	TestConfig() TestConfig
}

// TemplateSource is an optional plugin capability for integrations that provide codegen templates for standalone
// export. Templates are looked up by the step import path declared on the action.
type TemplateSource interface {
	Plugin

	// CodegenTemplate returns the code generation template for the given step import path. The second return value
	// is false if no template exists for the path.
	CodegenTemplate(stepImportPath string) (string, bool)
}

// TestConfig holds the deferred accessor for a plugin's credential test function. The accessor is only invoked when
// a credential test is actually requested, so integrations do not need to initialize their client libraries at
// registration time.
type TestConfig struct {
	// GetTestFunction yields the actual test function. It must not perform I/O itself.
	GetTestFunction func() (TestFunc, error)
}

// TestFunc verifies a set of credentials against the integration's API. It never returns a Go error; all failure
// modes are reported as a structured TestResult so the caller can render them.
type TestFunc func(ctx context.Context, credentials map[string]string) TestResult

// TestResult is the outcome of a credential test.
type TestResult struct {
	// Success indicates whether the credentials were verified.
	Success bool
	// Error holds a human-readable failure reason when Success is false.
	Error string
}
