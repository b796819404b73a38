// Package main provides the main entrypoint for the catalog CLI.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	log "go.arcalot.io/log/v2"
	"go.flow.arcalot.io/catalog"
	"go.flow.arcalot.io/catalog/config"
	"go.flow.arcalot.io/catalog/internal/tableprinter"
	"go.flow.arcalot.io/catalog/plugin"
	"go.flow.arcalot.io/catalog/plugins/linear"
	"go.flow.arcalot.io/catalog/plugins/shopify"
	"go.flow.arcalot.io/catalog/registry"
	"go.flow.arcalot.io/catalog/statestore"
	"gopkg.in/yaml.v3"
)

// These variables are filled using ldflags during the build process with Goreleaser.
// See https://goreleaser.com/cookbooks/using-main.version/
var (
	version = "development"
	commit  = "unknown"
	date    = "unknown"
)

// ExitCodeOK signals that the program terminated normally.
const ExitCodeOK = 0

// ExitCodeInvalidData signals that the program encountered invalid configuration data.
const ExitCodeInvalidData = 1

// ExitCodeCatalogFailed indicates that the catalog could not be built.
const ExitCodeCatalogFailed = 2

// bundledPlugins are the integrations shipped with the CLI. Hosting applications construct their own registries.
func bundledPlugins() []plugin.Plugin {
	return []plugin.Plugin{
		shopify.New(),
		linear.New(),
	}
}

func main() {
	tempLogger := log.New(log.Config{
		Level:       log.LevelInfo,
		Destination: log.DestinationStdout,
		Stdout:      os.Stderr,
	})

	configFile := ""
	filter := ""
	showHidden := false
	stateFile := ""
	printVersion := false

	flag.BoolVar(&printVersion, "version", printVersion, "Print the catalog CLI version and exit.")
	flag.StringVar(
		&configFile,
		"config",
		configFile,
		"The configuration file to load, if any.",
	)
	flag.StringVar(
		&filter,
		"filter",
		filter,
		"Free-text filter applied to action labels, descriptions and categories.",
	)
	flag.BoolVar(
		&showHidden,
		"show-hidden",
		showHidden,
		"Include hidden category groups in the output.",
	)
	flag.StringVar(
		&stateFile,
		"state",
		stateFile,
		"Path of the hidden-categories state file. Overrides the configured value.",
	)
	flag.Usage = func() {
		_, _ = os.Stderr.Write([]byte(`Usage: catalog [OPTIONS]

Prints the grouped action catalog of the bundled integrations.

Options:

  -version          Print the catalog CLI version and exit.

  -config FILENAME  The configuration file to load, if any.

  -filter TEXT      Free-text filter applied to action labels,
                    descriptions and categories.

  -show-hidden      Include hidden category groups in the output.

  -state FILENAME   Path of the hidden-categories state file.
                    Overrides the configured value.
`))
	}
	flag.Parse()

	if printVersion {
		fmt.Printf(
			"Action Catalog\n"+
				"==============\n"+
				"Version: %s\n"+
				"Commit: %s\n"+
				"Date: %s\n"+
				"Apache 2.0 license\n"+
				"Copyright (c) Arcalot Contributors",
			version, commit, date,
		)
		return
	}

	var err error

	var configData any = map[any]any{}
	if configFile != "" {
		configData, err = loadYamlFile(configFile)
		if err != nil {
			tempLogger.Errorf("Failed to load configuration file %s (%v)", configFile, err)
			flag.Usage()
			os.Exit(ExitCodeInvalidData)
		}
	}
	cfg, err := config.Load(configData)
	if err != nil {
		tempLogger.Errorf("Failed to load configuration file %s (%v)", configFile, err)
		flag.Usage()
		os.Exit(ExitCodeInvalidData)
	}

	// now we are ready to instantiate our main logger
	cfg.Log.Stdout = os.Stderr
	logger := log.New(cfg.Log).WithLabel("source", "main")

	if stateFile == "" {
		stateFile = cfg.StateFile
	}

	os.Exit(printCatalog(cfg, logger, stateFile, filter, showHidden))
}

func printCatalog(cfg *config.Config, logger log.Logger, stateFile string, filter string, showHidden bool) int {
	ctx := context.Background()

	pluginRegistry, err := registry.New(bundledPlugins()...)
	if err != nil {
		logger.Errorf("Failed to build the plugin registry (%v)", err)
		return ExitCodeCatalogFailed
	}

	store, err := statestore.NewFile(stateFile)
	if err != nil {
		logger.Errorf("Failed to open the state file %s (%v)", stateFile, err)
		return ExitCodeInvalidData
	}

	c, err := catalog.New(ctx, cfg, pluginRegistry, store)
	if err != nil {
		logger.Errorf("Failed to initialize the catalog (%v)", err)
		return ExitCodeCatalogFailed
	}

	view := c.View(catalog.Query{
		Filter:     filter,
		ShowHidden: showHidden,
	})
	tableprinter.PrintView(os.Stdout, view)
	return ExitCodeOK
}

func loadYamlFile(configFile string) (any, error) {
	fileContents, err := os.ReadFile(configFile) //nolint:gosec
	if err != nil {
		return nil, err
	}
	var data any
	if err := yaml.Unmarshal(fileContents, &data); err != nil {
		return nil, err
	}
	return data, nil
}
