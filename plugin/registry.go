package plugin

// Entry is the flattened, catalog-level view of a single action. System actions and plugin actions share this
// shape; only plugin actions carry an integration type.
type Entry struct {
	// ID is globally unique across the merged catalog. Plugin entries use "<type>/<slug>".
	ID string
	// Label is the human-readable action name.
	Label string
	// Description is a short description of the action.
	Description string
	// Category is the non-empty display grouping label.
	Category string
	// Integration is the owning plugin's type, or empty for system actions.
	Integration string
}

// Registry holds the integration plugins available to the action catalog. A registry is built once at process
// start and is immutable afterwards.
type Registry interface {
	// GetByType returns a plugin by its type value.
	GetByType(integrationType string) (Plugin, error)
	// List returns all plugins in registration order.
	List() []Plugin
	// Entries returns every plugin action flattened into catalog entries, preserving registration order and,
	// within a plugin, declaration order.
	Entries() []Entry
}
