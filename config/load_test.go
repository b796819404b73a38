package config_test

import (
	"testing"

	"go.arcalot.io/lang"
	"go.arcalot.io/log/v2"
	"go.flow.arcalot.io/catalog/config"
	"gopkg.in/yaml.v3"
)

var configLoadData = map[string]struct {
	input          string
	error          bool
	expectedOutput *config.Config
}{
	"empty": {
		input: "",
		expectedOutput: &config.Config{
			StateFile: "catalog-state.json",
			Directory: config.DirectoryConfig{
				BaseURL: "https://api.vercel.com",
			},
			Log: log.Config{
				Level:       log.LevelInfo,
				Destination: log.DestinationStdout,
			},
		},
	},
	"log-level": {
		input: `
log:
  level: debug
`,
		expectedOutput: &config.Config{
			StateFile: "catalog-state.json",
			Directory: config.DirectoryConfig{
				BaseURL: "https://api.vercel.com",
			},
			Log: log.Config{
				Level:       log.LevelDebug,
				Destination: log.DestinationStdout,
			},
		},
	},
	"directory": {
		input: `
directory:
  base_url: https://directory.example.com
`,
		expectedOutput: &config.Config{
			StateFile: "catalog-state.json",
			Directory: config.DirectoryConfig{
				BaseURL: "https://directory.example.com",
			},
			Log: log.Config{
				Level:       log.LevelInfo,
				Destination: log.DestinationStdout,
			},
		},
	},
	"managed-keys": {
		input: `
managed_keys: true
state_file: /var/lib/catalog/state.json
`,
		expectedOutput: &config.Config{
			StateFile: "/var/lib/catalog/state.json",
			Directory: config.DirectoryConfig{
				BaseURL: "https://api.vercel.com",
			},
			ManagedKeysEnabled: true,
			Log: log.Config{
				Level:       log.LevelInfo,
				Destination: log.DestinationStdout,
			},
		},
	},
}

func TestConfigLoad(t *testing.T) {
	for name, tc := range configLoadData {
		testCase := tc
		t.Run(name, func(t *testing.T) {
			var data map[string]any
			if err := yaml.Unmarshal([]byte(testCase.input), &data); err != nil {
				t.Fatal(err)
			}
			c, err := config.Load(data)
			if err != nil && !tc.error {
				t.Fatalf("Unexpected error: %v", err)
			}
			if err == nil && tc.error {
				t.Fatal("No error returned")
			}

			marshalledC := string(lang.Must2(yaml.Marshal(*c)))
			marshalledExpectedOutput := string(lang.Must2(yaml.Marshal(*testCase.expectedOutput)))

			if marshalledC != marshalledExpectedOutput {
				t.Fatalf(
					"The loaded config does not match the expected value:\n\nGot:\n\n%s\n\nExpected:\n\n%s\n\n",
					marshalledC,
					marshalledExpectedOutput,
				)
			}
		})
	}
}
