package linear

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"go.flow.arcalot.io/catalog/plugin"
)

// credentialAPIKey matches the EnvVar declaration on the API key form field.
const credentialAPIKey = "LINEAR_API_KEY"

const apiEndpoint = "https://api.linear.app"

type viewerResponse struct {
	Data struct {
		Viewer struct {
			ID string `json:"id"`
		} `json:"viewer"`
	} `json:"data"`
}

// testCredentials verifies the API key with a minimal viewer query.
func testCredentials(ctx context.Context, credentials map[string]string) plugin.TestResult {
	apiKey := credentials[credentialAPIKey]
	if apiKey == "" {
		return plugin.TestResult{
			Success: false,
			Error:   fmt.Sprintf("%s is required", credentialAPIKey),
		}
	}

	client := resty.New()
	client.SetBaseURL(apiEndpoint)
	client.SetTimeout(30 * time.Second)
	return verifyViewer(ctx, client, apiKey)
}

// verifyViewer performs the actual API call against a pre-configured client.
func verifyViewer(ctx context.Context, client *resty.Client, apiKey string) plugin.TestResult {
	var viewer viewerResponse
	response, err := client.R().
		SetContext(ctx).
		SetHeader("Authorization", apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"query": "{ viewer { id } }",
		}).
		SetResult(&viewer).
		Post("/graphql")
	if err != nil {
		return plugin.TestResult{
			Success: false,
			Error:   err.Error(),
		}
	}
	if !response.IsSuccess() {
		if response.StatusCode() == http.StatusUnauthorized {
			return plugin.TestResult{
				Success: false,
				Error:   "Invalid API key. Please check your Linear API key.",
			}
		}
		return plugin.TestResult{
			Success: false,
			Error:   fmt.Sprintf("API validation failed: HTTP %d", response.StatusCode()),
		}
	}
	if viewer.Data.Viewer.ID == "" {
		return plugin.TestResult{
			Success: false,
			Error:   "Failed to verify Linear connection",
		}
	}
	return plugin.TestResult{
		Success: true,
	}
}
