package statestore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.arcalot.io/assert"
	"go.flow.arcalot.io/catalog/statestore"
)

func TestMemoryStore(t *testing.T) {
	store := statestore.NewMemory()

	categories, err := store.Load(context.Background())
	assert.NoError(t, err)
	assert.Equals(t, len(categories), 0)

	assert.NoError(t, store.Save(context.Background(), []string{"Shopify", "Linear"}))
	categories, err = store.Load(context.Background())
	assert.NoError(t, err)
	assert.Equals(t, categories, []string{"Shopify", "Linear"})

	// The stored slice is a copy, mutating the loaded value must not leak back.
	categories[0] = "mutated"
	categories, err = store.Load(context.Background())
	assert.NoError(t, err)
	assert.Equals(t, categories[0], "Shopify")
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store, err := statestore.NewFile(path)
	assert.NoError(t, err)

	assert.NoError(t, store.Save(context.Background(), []string{"Shopify"}))
	categories, err := store.Load(context.Background())
	assert.NoError(t, err)
	assert.Equals(t, categories, []string{"Shopify"})

	// A second store over the same path sees the persisted value.
	reopened, err := statestore.NewFile(path)
	assert.NoError(t, err)
	categories, err = reopened.Load(context.Background())
	assert.NoError(t, err)
	assert.Equals(t, categories, []string{"Shopify"})
}

func TestFileStoreMissingFile(t *testing.T) {
	store, err := statestore.NewFile(filepath.Join(t.TempDir(), "does-not-exist.json"))
	assert.NoError(t, err)

	categories, err := store.Load(context.Background())
	assert.NoError(t, err)
	assert.Equals(t, len(categories), 0)
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	store, err := statestore.NewFile(path)
	assert.NoError(t, err)
	_, err = store.Load(context.Background())
	assert.Error(t, err)
}

func TestFileStoreNilSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store, err := statestore.NewFile(path)
	assert.NoError(t, err)

	assert.NoError(t, store.Save(context.Background(), nil))
	contents, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equals(t, string(contents), "[]")
}
