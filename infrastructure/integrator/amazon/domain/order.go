package amazondomain

import "github.com/shopspring/decimal"

// OrderRow é uma linha do relatório plano de pedidos da Amazon
// (GET_FLAT_FILE_ALL_ORDERS_DATA_BY_ORDER_DATE_GENERAL), uma linha por item
// vendido.
type OrderRow struct {
	Date        string          `json:"date"`
	OrderID     string          `json:"order_id"`
	ProductName string          `json:"product_name"`
	ASIN        string          `json:"asin"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"`
}
