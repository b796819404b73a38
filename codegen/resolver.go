// Package codegen provides the deferred hook resolver. Plugins declare their credential test function and their
// per-action codegen templates lazily; nothing integration-specific is loaded at registration time. The resolver
// is the single place where those deferred hooks are actually materialized.
package codegen

import (
	"fmt"

	"go.flow.arcalot.io/catalog/plugin"
)

// Resolver resolves the deferred hooks of registered plugins.
type Resolver struct {
	registry plugin.Registry
}

// NewResolver creates a resolver over the given plugin registry.
func NewResolver(pluginRegistry plugin.Registry) *Resolver {
	return &Resolver{
		registry: pluginRegistry,
	}
}

// ResolveTestFunction invokes the plugin's deferred test accessor and returns the resulting function. Plugins
// without the test capability yield ErrNotTestable so callers can render an "untestable" state instead of a
// failure.
func (r *Resolver) ResolveTestFunction(integrationType string) (plugin.TestFunc, error) {
	p, err := r.registry.GetByType(integrationType)
	if err != nil {
		return nil, err
	}
	testable, ok := p.(plugin.Testable)
	if !ok {
		return nil, &ErrNotTestable{
			Type: integrationType,
		}
	}
	testConfig := testable.TestConfig()
	if testConfig.GetTestFunction == nil {
		return nil, &ErrNotTestable{
			Type: integrationType,
		}
	}
	testFunc, err := testConfig.GetTestFunction()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve the %s test function (%w)", integrationType, err)
	}
	return testFunc, nil
}

// ResolveTemplate locates the codegen template for the given action. The action's slug selects the action within
// the plugin; its step import path keys the template lookup. The template is a pure string returned verbatim.
func (r *Resolver) ResolveTemplate(integrationType string, actionSlug string) (string, error) {
	p, err := r.registry.GetByType(integrationType)
	if err != nil {
		return "", err
	}
	actions := p.Actions()
	var action *plugin.Action
	for i := range actions {
		if actions[i].Slug == actionSlug {
			action = &actions[i]
			break
		}
	}
	if action == nil {
		return "", &ErrActionNotFound{
			Type: integrationType,
			Slug: actionSlug,
		}
	}
	source, ok := p.(plugin.TemplateSource)
	if !ok {
		return "", &ErrNoTemplate{
			Type:           integrationType,
			StepImportPath: action.StepImportPath,
		}
	}
	template, ok := source.CodegenTemplate(action.StepImportPath)
	if !ok {
		return "", &ErrNoTemplate{
			Type:           integrationType,
			StepImportPath: action.StepImportPath,
		}
	}
	return template, nil
}
