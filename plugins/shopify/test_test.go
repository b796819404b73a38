package shopify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"go.arcalot.io/assert"
)

func TestNormalizeDomain(t *testing.T) {
	assert.Equals(t, normalizeDomain("test.myshopify.com"), "test.myshopify.com")
	assert.Equals(t, normalizeDomain("https://test.myshopify.com"), "test.myshopify.com")
	assert.Equals(t, normalizeDomain("http://test.myshopify.com/"), "test.myshopify.com")
}

func TestCredentialsRequiredFields(t *testing.T) {
	result := testCredentials(context.Background(), map[string]string{})
	assert.Equals(t, result.Success, false)
	assert.Equals(t, result.Error, "SHOPIFY_STORE_DOMAIN is required")

	result = testCredentials(context.Background(), map[string]string{
		credentialStoreDomain: "test.myshopify.com",
	})
	assert.Equals(t, result.Success, false)
	assert.Equals(t, result.Error, "SHOPIFY_ACCESS_TOKEN is required")
}

func shopServer(t *testing.T, handler http.HandlerFunc) *resty.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := resty.New()
	client.SetBaseURL(server.URL)
	return client
}

func TestVerifyShop(t *testing.T) {
	client := shopServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equals(t, r.URL.Path, "/admin/api/2024-01/shop.json")
		assert.Equals(t, r.Header.Get("X-Shopify-Access-Token"), "shpat_test")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"shop": {"name": "Test Shop", "email": "owner@example.com"}}`))
	})

	result := verifyShop(context.Background(), client, "shpat_test")
	assert.Equals(t, result.Success, true)
	assert.Equals(t, result.Error, "")
}

func TestVerifyShopUnauthorized(t *testing.T) {
	client := shopServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	result := verifyShop(context.Background(), client, "shpat_bad")
	assert.Equals(t, result.Success, false)
	assert.Contains(t, result.Error, "Invalid access token")
}

func TestVerifyShopNotFound(t *testing.T) {
	client := shopServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	result := verifyShop(context.Background(), client, "shpat_test")
	assert.Equals(t, result.Success, false)
	assert.Contains(t, result.Error, "Store not found")
}

func TestVerifyShopServerError(t *testing.T) {
	client := shopServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	result := verifyShop(context.Background(), client, "shpat_test")
	assert.Equals(t, result.Success, false)
	assert.Equals(t, result.Error, "API validation failed: HTTP 502")
}

func TestVerifyShopEmptyName(t *testing.T) {
	client := shopServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"shop": {}}`))
	})

	result := verifyShop(context.Background(), client, "shpat_test")
	assert.Equals(t, result.Success, false)
	assert.Equals(t, result.Error, "Failed to verify Shopify connection")
}

func TestPluginDescriptor(t *testing.T) {
	p := New()
	assert.Equals(t, p.Type(), "shopify")
	assert.Equals(t, len(p.FormFields()), 2)
	assert.Equals(t, len(p.Actions()), 4)

	for _, action := range p.Actions() {
		assert.Equals(t, action.Category, "Shopify")
		template, ok := codegenTemplates[action.StepImportPath]
		if !ok {
			t.Fatalf("action %s has no codegen template", action.Slug)
		}
		assert.Contains(t, template, action.StepFunction)
	}
}
