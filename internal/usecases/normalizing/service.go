package normalizing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	amazondomain "github.com/vfg2006/sales-report-api/infrastructure/integrator/amazon/domain"
	shopifydomain "github.com/vfg2006/sales-report-api/infrastructure/integrator/shopify/domain"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/pkg/log"
)

// Política de registros malformados: a linha é descartada com um aviso no
// log, identificando canal e pedido; o lote segue adiante. Um item inválido
// em uma página de 250 pedidos não derruba o canal inteiro.

// AmazonOrderRows converte as linhas do relatório plano da Amazon para o
// esquema canônico.
func AmazonOrderRows(rows []amazondomain.OrderRow) []*domain.SalesRecord {
	records := make([]*domain.SalesRecord, 0, len(rows))

	for _, row := range rows {
		date, err := time.Parse(time.DateOnly, row.Date)
		if err != nil {
			skip(domain.ChannelAmazon, row.OrderID, fmt.Sprintf("data inválida: %q", row.Date))
			continue
		}

		if row.ProductName == "" {
			skip(domain.ChannelAmazon, row.OrderID, "nome de produto ausente")
			continue
		}

		if row.Quantity < 0 || row.Price.IsNegative() {
			skip(domain.ChannelAmazon, row.OrderID, "quantidade ou preço negativo")
			continue
		}

		records = append(records, domain.NewSalesRecord(
			date,
			row.OrderID,
			row.ProductName,
			row.ASIN,
			row.Quantity,
			row.Price,
		))
	}

	return records
}

// ShopifyOrders converte pedidos da Admin API do Shopify para o esquema
// canônico, um registro por item de linha. O identificador do pedido é
// prefixado com o nome do canal para manter o namespace por canal.
func ShopifyOrders(channel string, orders []shopifydomain.Order) []*domain.SalesRecord {
	var records []*domain.SalesRecord

	for _, order := range orders {
		orderID := fmt.Sprintf("%s-%d", channel, order.ID)

		if len(order.CreatedAt) < len(time.DateOnly) {
			skip(channel, orderID, fmt.Sprintf("data de criação inválida: %q", order.CreatedAt))
			continue
		}

		date, err := time.Parse(time.DateOnly, order.CreatedAt[:len(time.DateOnly)])
		if err != nil {
			skip(channel, orderID, fmt.Sprintf("data de criação inválida: %q", order.CreatedAt))
			continue
		}

		for _, item := range order.LineItems {
			if item.Title == "" {
				skip(channel, orderID, "item sem título de produto")
				continue
			}

			price, err := decimal.NewFromString(item.Price)
			if err != nil {
				skip(channel, orderID, fmt.Sprintf("preço inválido: %q", item.Price))
				continue
			}

			if item.Quantity < 0 || price.IsNegative() {
				skip(channel, orderID, "quantidade ou preço negativo")
				continue
			}

			records = append(records, domain.NewSalesRecord(
				date,
				orderID,
				item.Title,
				item.SKU,
				item.Quantity,
				price,
			))
		}
	}

	return records
}

// ApplyMapping renomeia os registros cujo identificador externo está na
// tabela de reconciliação, trocando o nome reportado pelo canal pelo nome
// canônico do produto. Registros sem entrada na tabela ficam como estão.
func ApplyMapping(records []*domain.SalesRecord, mapping *domain.SkuMapping) []*domain.SalesRecord {
	if mapping == nil || mapping.Len() == 0 {
		return records
	}

	relabeled := make([]*domain.SalesRecord, 0, len(records))
	for _, record := range records {
		name, ok := mapping.CanonicalName(record.ExternalID)
		if !ok || name == record.ProductName {
			relabeled = append(relabeled, record)
			continue
		}

		relabeled = append(relabeled, domain.NewSalesRecord(
			record.Date,
			record.OrderID,
			name,
			record.ExternalID,
			record.Quantity,
			record.UnitPrice,
		))
	}

	return relabeled
}

func skip(channel, orderID, reason string) {
	log.L.WithFields(log.Fields{
		"channel": channel,
		"error":   reason,
	}).Warnf("Registro descartado na normalização (pedido %s): %s", orderID, reason)
}
