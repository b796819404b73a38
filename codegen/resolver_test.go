package codegen_test

import (
	"context"
	"testing"

	"go.arcalot.io/assert"
	"go.arcalot.io/lang"
	"go.flow.arcalot.io/catalog/codegen"
	"go.flow.arcalot.io/catalog/plugin"
	"go.flow.arcalot.io/catalog/plugins/linear"
	"go.flow.arcalot.io/catalog/plugins/shopify"
	"go.flow.arcalot.io/catalog/registry"
)

// plainPlugin declares neither a test function nor codegen templates.
type plainPlugin struct{}

func (p *plainPlugin) Type() string                   { return "plain" }
func (p *plainPlugin) Label() string                  { return "Plain" }
func (p *plainPlugin) Description() string            { return "integration without deferred hooks" }
func (p *plainPlugin) Icon() string                   { return "" }
func (p *plainPlugin) FormFields() []plugin.FormField { return nil }
func (p *plainPlugin) Actions() []plugin.Action {
	return []plugin.Action{
		{Slug: "noop", Label: "Noop", Description: "Do nothing", Category: "Plain"},
	}
}

func newResolver(t *testing.T) *codegen.Resolver {
	t.Helper()
	r := lang.Must2(registry.New(
		shopify.New(),
		linear.New(),
		&plainPlugin{},
	))
	return codegen.NewResolver(r)
}

func TestResolveTestFunction(t *testing.T) {
	resolver := newResolver(t)

	testFunc, err := resolver.ResolveTestFunction("shopify")
	assert.NoError(t, err)

	// Missing credentials fail fast without a network round trip.
	result := testFunc(context.Background(), map[string]string{})
	assert.Equals(t, result.Success, false)
	assert.Equals(t, result.Error, "SHOPIFY_STORE_DOMAIN is required")

	result = testFunc(context.Background(), map[string]string{
		"SHOPIFY_STORE_DOMAIN": "test.myshopify.com",
	})
	assert.Equals(t, result.Success, false)
	assert.Equals(t, result.Error, "SHOPIFY_ACCESS_TOKEN is required")
}

func TestResolveTestFunctionNotTestable(t *testing.T) {
	resolver := newResolver(t)

	_, err := resolver.ResolveTestFunction("plain")
	assert.Error(t, err)
	assert.InstanceOf[*codegen.ErrNotTestable](t, err)
	assert.Equals(t, err.(*codegen.ErrNotTestable).Type, "plain")
}

func TestResolveTestFunctionUnknownType(t *testing.T) {
	resolver := newResolver(t)

	_, err := resolver.ResolveTestFunction("stripe")
	assert.Error(t, err)
	assert.InstanceOf[*plugin.ErrPluginNotFound](t, err)
}

func TestResolveTemplate(t *testing.T) {
	resolver := newResolver(t)

	template, err := resolver.ResolveTemplate("linear", "find-issues")
	assert.NoError(t, err)
	assert.Contains(t, template, "findIssuesStep")

	template, err = resolver.ResolveTemplate("shopify", "get-order")
	assert.NoError(t, err)
	assert.Contains(t, template, "getOrderStep")
}

func TestResolveTemplateActionNotFound(t *testing.T) {
	resolver := newResolver(t)

	_, err := resolver.ResolveTemplate("shopify", "delete-everything")
	assert.Error(t, err)
	assert.InstanceOf[*codegen.ErrActionNotFound](t, err)
	assert.Equals(t, err.(*codegen.ErrActionNotFound).Slug, "delete-everything")
}

func TestResolveTemplateNoTemplate(t *testing.T) {
	resolver := newResolver(t)

	_, err := resolver.ResolveTemplate("plain", "noop")
	assert.Error(t, err)
	assert.InstanceOf[*codegen.ErrNoTemplate](t, err)
}
