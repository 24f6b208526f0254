package shopifydomain

// Order é um pedido retornado pela Admin API do Shopify
// (/admin/api/<versão>/orders.json). Apenas os campos consumidos pelo
// pipeline são decodificados.
type Order struct {
	ID        int64      `json:"id"`
	CreatedAt string     `json:"created_at"`
	LineItems []LineItem `json:"line_items"`
}

// LineItem é um item de linha de um pedido Shopify. O preço vem como string
// decimal, conforme a API.
type LineItem struct {
	Title    string `json:"title"`
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

// OrdersResponse é o envelope da listagem de pedidos.
type OrdersResponse struct {
	Orders []Order `json:"orders"`
}
