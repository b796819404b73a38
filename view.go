package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"go.flow.arcalot.io/catalog/plugin"
)

// Query is the input to a catalog view computation.
type Query struct {
	// Filter is a free-text, case-insensitive filter matched against label, description and category.
	Filter string
	// ShowHidden includes groups whose category is in the hidden-categories set.
	ShowHidden bool
}

// ViewState is the terminal display state of a computed view.
type ViewState string

const (
	// ViewStateOK indicates that at least one group is visible.
	ViewStateOK ViewState = "ok"
	// ViewStateNoResults indicates that no action survived the filter.
	ViewStateNoResults ViewState = "no_results"
	// ViewStateAllHidden indicates that actions survived the filter but every surviving group is hidden.
	ViewStateAllHidden ViewState = "all_groups_hidden"
)

// GroupIcon identifies the icon shown next to a category group.
type GroupIcon string

const (
	// GroupIconSystem is the fixed icon of the reserved System category.
	GroupIconSystem GroupIcon = "system"
	// GroupIconGeneric is the fallback icon for categories without an integration.
	GroupIconGeneric GroupIcon = "generic"
)

// Group is one category worth of actions in display order.
type Group struct {
	// Category is the grouping label.
	Category string
	// Actions holds the group members in catalog order.
	Actions []plugin.Entry
	// Collapsed reflects the ephemeral per-group collapse toggle. Groups default to expanded.
	Collapsed bool
	// Hidden reports whether the category is in the hidden-categories set. Hidden groups only appear in views
	// computed with ShowHidden.
	Hidden bool
	// Icon is the resolved group icon: the first member's integration icon if present, the fixed system icon for
	// the System category, or the generic fallback.
	Icon GroupIcon
}

// View is the grouped display model of the catalog.
type View struct {
	Groups []Group
	State  ViewState
}

// View computes the grouped display model for the given query. The computation is pure and safe to re-run on
// every keystroke; the only I/O in this subsystem happens in ToggleHidden.
func (c *Catalog) View(query Query) View {
	hidden, collapsed := c.snapshotState()

	filtered := filterEntries(c.Entries(), query.Filter)
	if len(filtered) == 0 {
		return View{
			Groups: []Group{},
			State:  ViewStateNoResults,
		}
	}

	groups := groupEntries(filtered)
	visible := make([]Group, 0, len(groups))
	for _, group := range groups {
		_, isHidden := hidden[group.Category]
		if isHidden && !query.ShowHidden {
			continue
		}
		_, isCollapsed := collapsed[group.Category]
		group.Hidden = isHidden
		group.Collapsed = isCollapsed
		group.Icon = c.resolveIcon(group)
		visible = append(visible, group)
	}
	if len(visible) == 0 {
		return View{
			Groups: []Group{},
			State:  ViewStateAllHidden,
		}
	}
	return View{
		Groups: visible,
		State:  ViewStateOK,
	}
}

// filterEntries applies the case-insensitive free-text filter. An entry passes if the filter is a substring of its
// label, description or category. The empty filter passes everything.
func filterEntries(entries []plugin.Entry, filter string) []plugin.Entry {
	if filter == "" {
		return entries
	}
	term := strings.ToLower(filter)
	result := make([]plugin.Entry, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Label), term) ||
			strings.Contains(strings.ToLower(entry.Description), term) ||
			strings.Contains(strings.ToLower(entry.Category), term) {
			result = append(result, entry)
		}
	}
	return result
}

// groupEntries partitions entries by category, preserving catalog order within each group, and orders the groups:
// the System category first, all others ascending by locale-aware comparison.
func groupEntries(entries []plugin.Entry) []Group {
	byCategory := map[string][]plugin.Entry{}
	categories := make([]string, 0, len(entries))
	for _, entry := range entries {
		if _, ok := byCategory[entry.Category]; !ok {
			categories = append(categories, entry.Category)
		}
		byCategory[entry.Category] = append(byCategory[entry.Category], entry)
	}

	collator := collate.New(language.English)
	sort.Slice(categories, func(i, j int) bool {
		return categoryLess(collator, categories[i], categories[j])
	})

	groups := make([]Group, len(categories))
	for i, category := range categories {
		groups[i] = Group{
			Category: category,
			Actions:  byCategory[category],
		}
	}
	return groups
}

func categoryLess(collator *collate.Collator, a string, b string) bool {
	if a == SystemCategory {
		return b != SystemCategory
	}
	if b == SystemCategory {
		return false
	}
	return collator.CompareString(a, b) < 0
}

// resolveIcon applies the first-member lookup rule. Categories mixing actions from several integrations cannot
// occur with well-behaved plugins, but the rule stays well-defined if they do.
func (c *Catalog) resolveIcon(group Group) GroupIcon {
	if len(group.Actions) > 0 && group.Actions[0].Integration != "" && c.registry != nil {
		if p, err := c.registry.GetByType(group.Actions[0].Integration); err == nil {
			return GroupIcon(p.Icon())
		}
	}
	if group.Category == SystemCategory {
		return GroupIconSystem
	}
	return GroupIconGeneric
}
