// Package shopify provides the Shopify integration plugin: order, product and inventory actions backed by the
// Shopify Admin REST API.
package shopify

import (
	"go.flow.arcalot.io/catalog/plugin"
)

// New creates the Shopify plugin.
func New() plugin.Plugin {
	return &shopifyPlugin{}
}

type shopifyPlugin struct {
}

func (p *shopifyPlugin) Type() string {
	return "shopify"
}

func (p *shopifyPlugin) Label() string {
	return "Shopify"
}

func (p *shopifyPlugin) Description() string {
	return "Manage orders, products, and inventory in your Shopify store"
}

func (p *shopifyPlugin) Icon() string {
	return "shopify"
}

func (p *shopifyPlugin) FormFields() []plugin.FormField {
	return []plugin.FormField{
		{
			ID:          "storeDomain",
			Label:       "Store Domain",
			Type:        plugin.FormFieldText,
			Placeholder: "your-store.myshopify.com",
			ConfigKey:   "storeDomain",
			EnvVar:      "SHOPIFY_STORE_DOMAIN",
			HelpText:    "Your Shopify store domain (e.g., your-store.myshopify.com)",
		},
		{
			ID:          "accessToken",
			Label:       "Admin API Access Token",
			Type:        plugin.FormFieldPassword,
			Placeholder: "shpat_...",
			ConfigKey:   "accessToken",
			EnvVar:      "SHOPIFY_ACCESS_TOKEN",
			HelpText:    "Create an access token from ",
			HelpLink: &plugin.HelpLink{
				Text: "Shopify Admin > Apps > Develop apps",
				URL:  "https://help.shopify.com/en/manual/apps/app-types/custom-apps",
			},
		},
	}
}

func (p *shopifyPlugin) TestConfig() plugin.TestConfig {
	return plugin.TestConfig{
		GetTestFunction: func() (plugin.TestFunc, error) {
			return testCredentials, nil
		},
	}
}

func (p *shopifyPlugin) CodegenTemplate(stepImportPath string) (string, bool) {
	template, ok := codegenTemplates[stepImportPath]
	return template, ok
}

func (p *shopifyPlugin) Actions() []plugin.Action {
	return []plugin.Action{
		{
			Slug:           "get-order",
			Label:          "Get Order",
			Description:    "Retrieve details of a specific order by ID",
			Category:       "Shopify",
			StepFunction:   "getOrderStep",
			StepImportPath: "get-order",
			OutputFields: []plugin.OutputField{
				{Field: "id", Description: "Unique ID of the order"},
				{Field: "orderNumber", Description: "Human-readable order number"},
				{Field: "name", Description: "Order name (e.g., #1001)"},
				{Field: "email", Description: "Customer email address"},
				{Field: "totalPrice", Description: "Total price of the order"},
				{Field: "currency", Description: "Currency code (e.g., USD)"},
				{Field: "financialStatus", Description: "Payment status (pending, paid, refunded, etc.)"},
				{Field: "fulfillmentStatus", Description: "Fulfillment status (unfulfilled, fulfilled, partial)"},
				{Field: "createdAt", Description: "ISO timestamp when order was created"},
				{Field: "lineItems", Description: "Array of line item objects"},
				{Field: "shippingAddress", Description: "Shipping address object (if available)"},
				{Field: "customer", Description: "Customer information object"},
			},
			ConfigFields: []plugin.ConfigField{
				{
					Key:         "orderId",
					Label:       "Order ID",
					Type:        plugin.ConfigFieldTemplateInput,
					Placeholder: "450789469 or {{NodeName.orderId}}",
					Example:     "450789469",
					Required:    true,
				},
			},
		},
		{
			Slug:           "list-orders",
			Label:          "List Orders",
			Description:    "Search and list orders with optional filters",
			Category:       "Shopify",
			StepFunction:   "listOrdersStep",
			StepImportPath: "list-orders",
			OutputFields: []plugin.OutputField{
				{Field: "orders", Description: "Array of order objects"},
				{Field: "count", Description: "Number of orders returned"},
			},
			ConfigFields: []plugin.ConfigField{
				{
					Key:          "status",
					Label:        "Order Status",
					Type:         plugin.ConfigFieldSelect,
					DefaultValue: "any",
					Options: []plugin.Option{
						{Value: "any", Label: "Any"},
						{Value: "open", Label: "Open"},
						{Value: "closed", Label: "Closed"},
						{Value: "cancelled", Label: "Cancelled"},
					},
				},
				{
					Key:          "financialStatus",
					Label:        "Financial Status",
					Type:         plugin.ConfigFieldSelect,
					DefaultValue: "",
					Options: []plugin.Option{
						{Value: "", Label: "Any"},
						{Value: "pending", Label: "Pending"},
						{Value: "paid", Label: "Paid"},
						{Value: "refunded", Label: "Refunded"},
						{Value: "voided", Label: "Voided"},
						{Value: "partially_refunded", Label: "Partially Refunded"},
					},
				},
				{
					Key:          "fulfillmentStatus",
					Label:        "Fulfillment Status",
					Type:         plugin.ConfigFieldSelect,
					DefaultValue: "",
					Options: []plugin.Option{
						{Value: "", Label: "Any"},
						{Value: "unfulfilled", Label: "Unfulfilled"},
						{Value: "fulfilled", Label: "Fulfilled"},
						{Value: "partial", Label: "Partial"},
					},
				},
				{
					Key:         "createdAtMin",
					Label:       "Created After (ISO date)",
					Type:        plugin.ConfigFieldTemplateInput,
					Placeholder: "2024-01-01 or {{NodeName.date}}",
				},
				{
					Key:         "createdAtMax",
					Label:       "Created Before (ISO date)",
					Type:        plugin.ConfigFieldTemplateInput,
					Placeholder: "2024-12-31 or {{NodeName.date}}",
				},
				{
					Key:          "limit",
					Label:        "Limit",
					Type:         plugin.ConfigFieldNumber,
					Min:          int64Ptr(1),
					DefaultValue: "50",
				},
			},
		},
		{
			Slug:           "create-product",
			Label:          "Create Product",
			Description:    "Create a new product in your Shopify store",
			Category:       "Shopify",
			StepFunction:   "createProductStep",
			StepImportPath: "create-product",
			OutputFields: []plugin.OutputField{
				{Field: "id", Description: "Unique ID of the created product"},
				{Field: "title", Description: "Title of the product"},
				{Field: "handle", Description: "URL-friendly handle for the product"},
				{Field: "status", Description: "Product status (active, draft, archived)"},
				{Field: "variants", Description: "Array of product variants"},
				{Field: "createdAt", Description: "ISO timestamp when product was created"},
			},
			ConfigFields: []plugin.ConfigField{
				{
					Key:         "title",
					Label:       "Product Title",
					Type:        plugin.ConfigFieldTemplateInput,
					Placeholder: "Awesome T-Shirt or {{NodeName.title}}",
					Example:     "Awesome T-Shirt",
					Required:    true,
				},
				{
					Key:         "bodyHtml",
					Label:       "Description (HTML)",
					Type:        plugin.ConfigFieldTemplateTextarea,
					Placeholder: "<p>Product description...</p>",
					Rows:        4,
					Example:     "<p>A comfortable cotton t-shirt</p>",
				},
				{
					Key:         "vendor",
					Label:       "Vendor",
					Type:        plugin.ConfigFieldTemplateInput,
					Placeholder: "Your Brand or {{NodeName.vendor}}",
					Example:     "Acme Inc",
				},
				{
					Key:         "productType",
					Label:       "Product Type",
					Type:        plugin.ConfigFieldTemplateInput,
					Placeholder: "T-Shirts or {{NodeName.type}}",
					Example:     "Clothing",
				},
				{
					Key:         "tags",
					Label:       "Tags (comma-separated)",
					Type:        plugin.ConfigFieldTemplateInput,
					Placeholder: "summer, sale, new",
					Example:     "summer, featured",
				},
				{
					Key:          "status",
					Label:        "Status",
					Type:         plugin.ConfigFieldSelect,
					DefaultValue: "draft",
					Options: []plugin.Option{
						{Value: "draft", Label: "Draft"},
						{Value: "active", Label: "Active"},
						{Value: "archived", Label: "Archived"},
					},
				},
				{
					Key:         "price",
					Label:       "Price",
					Type:        plugin.ConfigFieldTemplateInput,
					Placeholder: "29.99 or {{NodeName.price}}",
					Example:     "29.99",
				},
				{
					Key:         "sku",
					Label:       "SKU",
					Type:        plugin.ConfigFieldTemplateInput,
					Placeholder: "TSHIRT-001 or {{NodeName.sku}}",
					Example:     "TSHIRT-001",
				},
				{
					Key:          "inventoryQuantity",
					Label:        "Inventory Quantity",
					Type:         plugin.ConfigFieldNumber,
					Min:          int64Ptr(0),
					DefaultValue: "0",
				},
			},
		},
		{
			Slug:           "update-inventory",
			Label:          "Update Inventory",
			Description:    "Update inventory levels for a product variant",
			Category:       "Shopify",
			StepFunction:   "updateInventoryStep",
			StepImportPath: "update-inventory",
			OutputFields: []plugin.OutputField{
				{Field: "inventoryItemId", Description: "ID of the inventory item updated"},
				{Field: "locationId", Description: "ID of the inventory location"},
				{Field: "available", Description: "New available inventory quantity"},
				{Field: "previousQuantity", Description: "Previous inventory quantity"},
			},
			ConfigFields: []plugin.ConfigField{
				{
					Key:         "inventoryItemId",
					Label:       "Inventory Item ID",
					Type:        plugin.ConfigFieldTemplateInput,
					Placeholder: "808950810 or {{NodeName.inventoryItemId}}",
					Example:     "808950810",
					Required:    true,
				},
				{
					Key:         "locationId",
					Label:       "Location ID",
					Type:        plugin.ConfigFieldTemplateInput,
					Placeholder: "655441491 or {{NodeName.locationId}}",
					Example:     "655441491",
					Required:    true,
				},
				{
					Key:         "adjustment",
					Label:       "Quantity Adjustment",
					Type:        plugin.ConfigFieldTemplateInput,
					Placeholder: "10 or -5 or {{NodeName.adjustment}}",
					Example:     "10",
					Required:    true,
				},
			},
		},
	}
}

func int64Ptr(value int64) *int64 {
	return &value
}
