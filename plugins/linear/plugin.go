// Package linear provides the Linear integration plugin: issue search backed by the Linear GraphQL API.
package linear

import (
	"go.flow.arcalot.io/catalog/plugin"
)

// New creates the Linear plugin.
func New() plugin.Plugin {
	return &linearPlugin{}
}

type linearPlugin struct {
}

func (p *linearPlugin) Type() string {
	return "linear"
}

func (p *linearPlugin) Label() string {
	return "Linear"
}

func (p *linearPlugin) Description() string {
	return "Find and track issues in your Linear workspace"
}

func (p *linearPlugin) Icon() string {
	return "linear"
}

func (p *linearPlugin) FormFields() []plugin.FormField {
	return []plugin.FormField{
		{
			ID:          "apiKey",
			Label:       "API Key",
			Type:        plugin.FormFieldPassword,
			Placeholder: "lin_api_...",
			ConfigKey:   "apiKey",
			EnvVar:      "LINEAR_API_KEY",
			HelpText:    "Create a personal API key from ",
			HelpLink: &plugin.HelpLink{
				Text: "Linear Settings > API",
				URL:  "https://linear.app/settings/api",
			},
		},
	}
}

func (p *linearPlugin) TestConfig() plugin.TestConfig {
	return plugin.TestConfig{
		GetTestFunction: func() (plugin.TestFunc, error) {
			return testCredentials, nil
		},
	}
}

func (p *linearPlugin) CodegenTemplate(stepImportPath string) (string, bool) {
	template, ok := codegenTemplates[stepImportPath]
	return template, ok
}

func (p *linearPlugin) Actions() []plugin.Action {
	return []plugin.Action{
		{
			Slug:           "find-issues",
			Label:          "Find Issues",
			Description:    "Search issues by assignee, team, status or label",
			Category:       "Linear",
			StepFunction:   "findIssuesStep",
			StepImportPath: "find-issues",
			OutputFields: []plugin.OutputField{
				{Field: "issues", Description: "Array of matching issue objects"},
				{Field: "count", Description: "Number of issues returned"},
			},
			ConfigFields: []plugin.ConfigField{
				{
					Key:         "linearAssigneeId",
					Label:       "Assignee ID",
					Type:        plugin.ConfigFieldTemplateInput,
					Placeholder: "user id or {{NodeName.userId}}",
				},
				{
					Key:         "linearTeamId",
					Label:       "Team ID",
					Type:        plugin.ConfigFieldTemplateInput,
					Placeholder: "team id or {{NodeName.teamId}}",
				},
				{
					Key:          "linearStatus",
					Label:        "Status",
					Type:         plugin.ConfigFieldSelect,
					DefaultValue: "any",
					Options: []plugin.Option{
						{Value: "any", Label: "Any"},
						{Value: "backlog", Label: "Backlog"},
						{Value: "todo", Label: "Todo"},
						{Value: "in progress", Label: "In Progress"},
						{Value: "done", Label: "Done"},
						{Value: "canceled", Label: "Canceled"},
					},
				},
				{
					Key:         "linearLabel",
					Label:       "Label",
					Type:        plugin.ConfigFieldTemplateInput,
					Placeholder: "bug or {{NodeName.label}}",
				},
			},
		},
	}
}
