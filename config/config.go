package config

import (
	log "go.arcalot.io/log/v2"
)

// Config is the main configuration structure for the action catalog library and its bundled CLI.
type Config struct {
	// Log configures logging for the catalog and its collaborator clients.
	Log log.Config `json:"log" yaml:"log"`
	// StateFile is the path of the JSON file holding the hidden-categories set when the file-backed state store
	// is used.
	StateFile string `json:"state_file" yaml:"state_file"`
	// Directory configures the remote account/team directory API client.
	Directory DirectoryConfig `json:"directory" yaml:"directory"`
	// ManagedKeysEnabled gates the account-linking backed team listing. When disabled, the teams service reports
	// a feature-disabled state instead of calling out.
	ManagedKeysEnabled bool `json:"managed_keys" yaml:"managed_keys"`
}

// DirectoryConfig holds the settings of the remote account/team directory API.
type DirectoryConfig struct {
	// BaseURL is the root URL of the directory API.
	BaseURL string `json:"base_url" yaml:"base_url"`
}
