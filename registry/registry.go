// Package registry provides the plugin registry, joining the integration plugins together.
package registry

import (
	"fmt"

	"go.flow.arcalot.io/catalog/plugin"
)

// New creates a new plugin registry from the specified plugins. Registration order is preserved and becomes the
// catalog order. Duplicate integration types and duplicate catalog-level action identifiers are rejected so a
// misbehaving plugin cannot silently shadow another one.
func New(plugins ...plugin.Plugin) (plugin.Registry, error) {
	byType := make(map[string]plugin.Plugin, len(plugins))
	ordered := make([]plugin.Plugin, 0, len(plugins))
	entries := make([]plugin.Entry, 0, len(plugins))
	seenIDs := map[string]struct{}{}
	for _, p := range plugins {
		integrationType := p.Type()
		if integrationType == "" {
			return nil, fmt.Errorf("bug: plugin %q declares an empty type", p.Label())
		}
		if _, ok := byType[integrationType]; ok {
			return nil, &ErrDuplicateType{
				integrationType,
			}
		}
		for _, action := range p.Actions() {
			if action.Slug == "" {
				return nil, fmt.Errorf("bug: the %s plugin declares an action with an empty slug", integrationType)
			}
			id := entryID(integrationType, action.Slug)
			if _, ok := seenIDs[id]; ok {
				return nil, &ErrDuplicateActionID{
					id,
				}
			}
			seenIDs[id] = struct{}{}
			category := action.Category
			if category == "" {
				// Grouping must always succeed, so fall back to a type-derived category.
				category = p.Label()
			}
			entries = append(entries, plugin.Entry{
				ID:          id,
				Label:       action.Label,
				Description: action.Description,
				Category:    category,
				Integration: integrationType,
			})
		}
		byType[integrationType] = p
		ordered = append(ordered, p)
	}
	return &pluginRegistry{
		byType:  byType,
		ordered: ordered,
		entries: entries,
	}, nil
}

func entryID(integrationType string, slug string) string {
	return integrationType + "/" + slug
}

type pluginRegistry struct {
	byType  map[string]plugin.Plugin
	ordered []plugin.Plugin
	entries []plugin.Entry
}

func (r pluginRegistry) GetByType(integrationType string) (plugin.Plugin, error) {
	p, ok := r.byType[integrationType]
	if !ok {
		types := make([]string, len(r.ordered))
		for i, registered := range r.ordered {
			types[i] = registered.Type()
		}

		return nil, &plugin.ErrPluginNotFound{
			Type:       integrationType,
			ValidTypes: types,
		}
	}
	return p, nil
}

func (r pluginRegistry) List() []plugin.Plugin {
	result := make([]plugin.Plugin, len(r.ordered))
	copy(result, r.ordered)
	return result
}

func (r pluginRegistry) Entries() []plugin.Entry {
	result := make([]plugin.Entry, len(r.entries))
	copy(result, r.entries)
	return result
}
