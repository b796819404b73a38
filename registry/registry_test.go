package registry_test

import (
	"testing"

	"go.arcalot.io/assert"
	"go.flow.arcalot.io/catalog/plugin"
	"go.flow.arcalot.io/catalog/plugins/linear"
	"go.flow.arcalot.io/catalog/plugins/shopify"
	"go.flow.arcalot.io/catalog/registry"
)

func TestRegistry(t *testing.T) {
	r, err := registry.New(
		shopify.New(),
		linear.New(),
	)
	assert.NoError(t, err)

	p, err := r.GetByType("shopify")
	assert.NoError(t, err)
	assert.Equals(t, p.Type(), "shopify")

	plugins := r.List()
	assert.Equals(t, len(plugins), 2)
	assert.Equals(t, plugins[0].Type(), "shopify")
	assert.Equals(t, plugins[1].Type(), "linear")
}

func TestRegistryEntriesOrder(t *testing.T) {
	r, err := registry.New(
		shopify.New(),
		linear.New(),
	)
	assert.NoError(t, err)

	entries := r.Entries()
	expectedCount := len(shopify.New().Actions()) + len(linear.New().Actions())
	assert.Equals(t, len(entries), expectedCount)

	// Registration order first, then declaration order within the plugin.
	assert.Equals(t, entries[0].ID, "shopify/get-order")
	assert.Equals(t, entries[0].Integration, "shopify")
	assert.Equals(t, entries[1].ID, "shopify/list-orders")
	assert.Equals(t, entries[len(entries)-1].ID, "linear/find-issues")
	assert.Equals(t, entries[len(entries)-1].Integration, "linear")
}

func TestRegistryDuplicateType(t *testing.T) {
	_, err := registry.New(
		shopify.New(),
		shopify.New(),
	)
	assert.Error(t, err)
	assert.InstanceOf[*registry.ErrDuplicateType](t, err)
	assert.Equals(t, err.(*registry.ErrDuplicateType).Type, "shopify")
}

func TestRegistryNotFound(t *testing.T) {
	r, err := registry.New(
		shopify.New(),
	)
	assert.NoError(t, err)

	_, err = r.GetByType("stripe")
	assert.Error(t, err)
	assert.InstanceOf[*plugin.ErrPluginNotFound](t, err)
	assert.Equals(t, err.(*plugin.ErrPluginNotFound).Type, "stripe")
}

func TestRegistryEmpty(t *testing.T) {
	r, err := registry.New()
	assert.NoError(t, err)
	assert.Equals(t, len(r.List()), 0)
	assert.Equals(t, len(r.Entries()), 0)
}
