package plugin

// Action describes a single invocable operation exposed by a plugin. The slug must be unique within the plugin;
// the catalog-level identifier is derived from the plugin type and the slug.
type Action struct {
	// Slug identifies the action within its plugin, e.g. "get-order".
	Slug string
	// Label is the human-readable action name.
	Label string
	// Description is a short description of what the action does.
	Description string
	// Category is the display grouping label. If left empty, the registry defaults it to the plugin label.
	Category string
	// StepFunction is the exported function name used by codegen. Opaque to the catalog.
	StepFunction string
	// StepImportPath is the codegen template key. Opaque to the catalog.
	StepImportPath string
	// OutputFields describes the shape the action produces at run time.
	OutputFields []OutputField
	// ConfigFields are the ordered configuration fields of the action.
	ConfigFields []ConfigField
}

// OutputField documents one field of an action's run-time output.
type OutputField struct {
	Field       string
	Description string
}

// ConfigFieldType enumerates the supported action configuration field types.
type ConfigFieldType string

const (
	// ConfigFieldTemplateInput is a single-line input supporting template expressions.
	ConfigFieldTemplateInput ConfigFieldType = "template-input"
	// ConfigFieldTemplateTextarea is a multi-line input supporting template expressions.
	ConfigFieldTemplateTextarea ConfigFieldType = "template-textarea"
	// ConfigFieldSelect is a fixed-options dropdown.
	ConfigFieldSelect ConfigFieldType = "select"
	// ConfigFieldNumber is a numeric input.
	ConfigFieldNumber ConfigFieldType = "number"
)

// ConfigField describes one configuration field of an action. The Key must be unique within the action.
type ConfigField struct {
	Key          string
	Label        string
	Type         ConfigFieldType
	Placeholder  string
	Example      string
	DefaultValue string
	// Options holds the selectable values for ConfigFieldSelect fields.
	Options []Option
	// Min is the lower bound for ConfigFieldNumber fields, if any.
	Min *int64
	// Rows is the display height for ConfigFieldTemplateTextarea fields.
	Rows     int64
	Required bool
}

// Option is one selectable value of a ConfigFieldSelect field.
type Option struct {
	Value string
	Label string
}

// FormFieldType enumerates the supported integration setup field types.
type FormFieldType string

const (
	// FormFieldText is a plain text input.
	FormFieldText FormFieldType = "text"
	// FormFieldPassword is a masked secret input.
	FormFieldPassword FormFieldType = "password"
	// FormFieldNumber is a numeric input.
	FormFieldNumber FormFieldType = "number"
	// FormFieldSelect is a fixed-options dropdown.
	FormFieldSelect FormFieldType = "select"
)

// FormField describes one credential or configuration field collected when setting up an integration instance.
type FormField struct {
	ID          string
	Label       string
	Type        FormFieldType
	Placeholder string
	HelpText    string
	// HelpLink optionally points at external documentation for the field.
	HelpLink *HelpLink
	// ConfigKey is the key the value is stored under in the instance configuration.
	ConfigKey string
	// EnvVar is the environment variable the field maps to in exported code, if any.
	EnvVar string
}

// HelpLink is a documentation link attached to a form field.
type HelpLink struct {
	Text string
	URL  string
}
