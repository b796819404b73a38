// Package catalog provides the searchable, categorized action catalog for the workflow builder. It merges the
// built-in system actions with every registered integration plugin's actions and turns the flat list into a
// grouped display model driven by the user's filter and visibility state.
package catalog

import (
	"context"
	"sync"

	log "go.arcalot.io/log/v2"
	"go.flow.arcalot.io/catalog/config"
	"go.flow.arcalot.io/catalog/plugin"
	"go.flow.arcalot.io/catalog/statestore"
)

// Catalog aggregates system and plugin actions and tracks the user's view state. The hidden-categories set is the
// only durable state; collapse state and the filter string live only for the lifetime of the catalog.
type Catalog struct {
	logger   log.Logger
	registry plugin.Registry
	store    statestore.Store

	lock      sync.Mutex
	hidden    map[string]struct{}
	collapsed map[string]struct{}
}

// New creates a catalog over the given plugin registry. The hidden-categories set is loaded from the store once;
// a missing or unreadable value degrades to an empty set so a broken state slot can never take the catalog down.
func New(
	ctx context.Context,
	cfg *config.Config,
	pluginRegistry plugin.Registry,
	store statestore.Store,
) (*Catalog, error) {
	logger := log.New(cfg.Log)
	c := &Catalog{
		logger:    logger,
		registry:  pluginRegistry,
		store:     store,
		hidden:    map[string]struct{}{},
		collapsed: map[string]struct{}{},
	}
	if store != nil {
		categories, err := store.Load(ctx)
		if err != nil {
			logger.Warningf("Failed to load hidden categories, starting with an empty set (%v)", err)
		} else {
			for _, category := range categories {
				c.hidden[category] = struct{}{}
			}
		}
	}
	return c, nil
}

// Entries returns the full flat catalog: the built-in system actions followed by every plugin action in
// registration order. A missing registry degrades to the system actions only.
func (c *Catalog) Entries() []plugin.Entry {
	entries := System()
	if c.registry != nil {
		entries = append(entries, c.registry.Entries()...)
	}
	return entries
}

// ToggleHidden flips the visibility of a category and persists the updated hidden-categories set. The persisted
// set may retain names of categories that no longer exist; these are tolerated on load.
func (c *Catalog) ToggleHidden(ctx context.Context, category string) error {
	c.lock.Lock()
	if _, ok := c.hidden[category]; ok {
		delete(c.hidden, category)
	} else {
		c.hidden[category] = struct{}{}
	}
	categories := make([]string, 0, len(c.hidden))
	for name := range c.hidden {
		categories = append(categories, name)
	}
	c.lock.Unlock()
	if c.store == nil {
		return nil
	}
	if err := c.store.Save(ctx, categories); err != nil {
		c.logger.Errorf("Failed to persist hidden categories (%v)", err)
		return err
	}
	return nil
}

// ToggleCollapsed flips the collapse state of a single group. Collapse state is ephemeral and toggling one group
// never affects another.
func (c *Catalog) ToggleCollapsed(category string) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if _, ok := c.collapsed[category]; ok {
		delete(c.collapsed, category)
	} else {
		c.collapsed[category] = struct{}{}
	}
}

// IsHidden reports whether a category is currently in the hidden-categories set.
func (c *Catalog) IsHidden(category string) bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	_, ok := c.hidden[category]
	return ok
}

// HiddenCount returns the number of hidden categories, including stale names.
func (c *Catalog) HiddenCount() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return len(c.hidden)
}

func (c *Catalog) snapshotState() (hidden map[string]struct{}, collapsed map[string]struct{}) {
	c.lock.Lock()
	defer c.lock.Unlock()
	hidden = make(map[string]struct{}, len(c.hidden))
	for k := range c.hidden {
		hidden[k] = struct{}{}
	}
	collapsed = make(map[string]struct{}, len(c.collapsed))
	for k := range c.collapsed {
		collapsed[k] = struct{}{}
	}
	return hidden, collapsed
}
