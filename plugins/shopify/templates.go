package shopify

// Code generation templates keyed by step import path. Used when exporting workflows to standalone projects; the
// catalog hands them out verbatim through the codegen resolver.
var codegenTemplates = map[string]string{
	"get-order": `export async function getOrderStep(input: { orderId: string }) {
  "use step";

  const domain = process.env.SHOPIFY_STORE_DOMAIN;
  const response = await fetch(
    ` + "`https://${domain}/admin/api/2024-01/orders/${input.orderId}.json`" + `,
    {
      headers: {
        "X-Shopify-Access-Token": process.env.SHOPIFY_ACCESS_TOKEN!,
        "Content-Type": "application/json",
      },
    }
  );

  if (!response.ok) {
    throw new Error(` + "`Failed to fetch order: HTTP ${response.status}`" + `);
  }

  const { order } = await response.json();

  return {
    id: order.id,
    orderNumber: order.order_number,
    name: order.name,
    email: order.email,
    totalPrice: order.total_price,
    currency: order.currency,
    financialStatus: order.financial_status,
    fulfillmentStatus: order.fulfillment_status,
    createdAt: order.created_at,
    lineItems: order.line_items,
    shippingAddress: order.shipping_address,
    customer: order.customer,
  };
}`,
	"list-orders": `export async function listOrdersStep(input: {
  status?: string;
  financialStatus?: string;
  fulfillmentStatus?: string;
  createdAtMin?: string;
  createdAtMax?: string;
  limit?: number;
}) {
  "use step";

  const domain = process.env.SHOPIFY_STORE_DOMAIN;
  const params = new URLSearchParams();

  if (input.status) params.set("status", input.status);
  if (input.financialStatus) params.set("financial_status", input.financialStatus);
  if (input.fulfillmentStatus) params.set("fulfillment_status", input.fulfillmentStatus);
  if (input.createdAtMin) params.set("created_at_min", input.createdAtMin);
  if (input.createdAtMax) params.set("created_at_max", input.createdAtMax);
  params.set("limit", String(input.limit ?? 50));

  const response = await fetch(
    ` + "`https://${domain}/admin/api/2024-01/orders.json?${params}`" + `,
    {
      headers: {
        "X-Shopify-Access-Token": process.env.SHOPIFY_ACCESS_TOKEN!,
        "Content-Type": "application/json",
      },
    }
  );

  if (!response.ok) {
    throw new Error(` + "`Failed to list orders: HTTP ${response.status}`" + `);
  }

  const { orders } = await response.json();

  return {
    orders,
    count: orders.length,
  };
}`,
	"create-product": `export async function createProductStep(input: {
  title: string;
  bodyHtml?: string;
  vendor?: string;
  productType?: string;
  tags?: string;
  status?: string;
  price?: string;
  sku?: string;
  inventoryQuantity?: number;
}) {
  "use step";

  const domain = process.env.SHOPIFY_STORE_DOMAIN;
  const response = await fetch(
    ` + "`https://${domain}/admin/api/2024-01/products.json`" + `,
    {
      method: "POST",
      headers: {
        "X-Shopify-Access-Token": process.env.SHOPIFY_ACCESS_TOKEN!,
        "Content-Type": "application/json",
      },
      body: JSON.stringify({
        product: {
          title: input.title,
          body_html: input.bodyHtml,
          vendor: input.vendor,
          product_type: input.productType,
          tags: input.tags,
          status: input.status ?? "draft",
          variants: [
            {
              price: input.price,
              sku: input.sku,
              inventory_quantity: input.inventoryQuantity ?? 0,
            },
          ],
        },
      }),
    }
  );

  if (!response.ok) {
    throw new Error(` + "`Failed to create product: HTTP ${response.status}`" + `);
  }

  const { product } = await response.json();

  return {
    id: product.id,
    title: product.title,
    handle: product.handle,
    status: product.status,
    variants: product.variants,
    createdAt: product.created_at,
  };
}`,
	"update-inventory": `export async function updateInventoryStep(input: {
  inventoryItemId: string;
  locationId: string;
  adjustment: string;
}) {
  "use step";

  const domain = process.env.SHOPIFY_STORE_DOMAIN;
  const response = await fetch(
    ` + "`https://${domain}/admin/api/2024-01/inventory_levels/adjust.json`" + `,
    {
      method: "POST",
      headers: {
        "X-Shopify-Access-Token": process.env.SHOPIFY_ACCESS_TOKEN!,
        "Content-Type": "application/json",
      },
      body: JSON.stringify({
        inventory_item_id: Number(input.inventoryItemId),
        location_id: Number(input.locationId),
        available_adjustment: Number(input.adjustment),
      }),
    }
  );

  if (!response.ok) {
    throw new Error(` + "`Failed to adjust inventory: HTTP ${response.status}`" + `);
  }

  const { inventory_level } = await response.json();

  return {
    inventoryItemId: inventory_level.inventory_item_id,
    locationId: inventory_level.location_id,
    available: inventory_level.available,
    previousQuantity: inventory_level.available - Number(input.adjustment),
  };
}`,
}
