package shopify

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"go.flow.arcalot.io/catalog/plugin"
)

// Credential keys as they appear in the instance configuration. These match the EnvVar declarations on the form
// fields so exported standalone code reads the same names from the environment.
const (
	credentialStoreDomain = "SHOPIFY_STORE_DOMAIN"
	credentialAccessToken = "SHOPIFY_ACCESS_TOKEN"
)

var schemePrefix = regexp.MustCompile(`^https?://`)

// normalizeDomain strips the protocol and any trailing slash from a store domain.
func normalizeDomain(domain string) string {
	return strings.TrimSuffix(schemePrefix.ReplaceAllString(domain, ""), "/")
}

type shopResponse struct {
	Shop struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"shop"`
}

// testCredentials verifies the store domain and access token with a lightweight shop lookup. Required-field
// failures are reported before any network call is attempted.
func testCredentials(ctx context.Context, credentials map[string]string) plugin.TestResult {
	storeDomain := credentials[credentialStoreDomain]
	accessToken := credentials[credentialAccessToken]

	if storeDomain == "" {
		return plugin.TestResult{
			Success: false,
			Error:   fmt.Sprintf("%s is required", credentialStoreDomain),
		}
	}
	if accessToken == "" {
		return plugin.TestResult{
			Success: false,
			Error:   fmt.Sprintf("%s is required", credentialAccessToken),
		}
	}

	client := resty.New()
	client.SetBaseURL("https://" + normalizeDomain(storeDomain))
	client.SetTimeout(30 * time.Second)
	return verifyShop(ctx, client, accessToken)
}

// verifyShop performs the actual API call against a pre-configured client.
func verifyShop(ctx context.Context, client *resty.Client, accessToken string) plugin.TestResult {
	var shop shopResponse
	response, err := client.R().
		SetContext(ctx).
		SetHeader("X-Shopify-Access-Token", accessToken).
		SetHeader("Content-Type", "application/json").
		SetResult(&shop).
		Get("/admin/api/2024-01/shop.json")
	if err != nil {
		return plugin.TestResult{
			Success: false,
			Error:   err.Error(),
		}
	}
	if !response.IsSuccess() {
		switch response.StatusCode() {
		case http.StatusUnauthorized:
			return plugin.TestResult{
				Success: false,
				Error:   "Invalid access token. Please check your Shopify Admin API access token.",
			}
		case http.StatusNotFound:
			return plugin.TestResult{
				Success: false,
				Error:   "Store not found. Please check your store domain (e.g., your-store.myshopify.com).",
			}
		default:
			return plugin.TestResult{
				Success: false,
				Error:   fmt.Sprintf("API validation failed: HTTP %d", response.StatusCode()),
			}
		}
	}
	if shop.Shop.Name == "" {
		return plugin.TestResult{
			Success: false,
			Error:   "Failed to verify Shopify connection",
		}
	}
	return plugin.TestResult{
		Success: true,
	}
}
