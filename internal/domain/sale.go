package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Nomes das plataformas como aparecem nos relatórios
const (
	ChannelAmazon   = "AMAZON"
	ChannelShopify1 = "SHOPIFY1"
	ChannelShopify2 = "SHOPIFY2"
)

// SalesRecord representa um item de linha vendido em um canal, já normalizado
// para o esquema canônico. Imutável após a criação; vive apenas durante uma
// execução do pipeline (a planilha publicada é o registro durável).
type SalesRecord struct {
	Date        time.Time
	OrderID     string
	ProductName string
	ExternalID  string // SKU (Shopify) ou ASIN (Amazon)
	Quantity    int
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal

	// Marcações de bundle derivadas do nome do produto
	IsBundle  bool
	HasWiFi   bool
	HasRemote bool
}

// NewSalesRecord cria um registro de venda garantindo a invariante
// LineTotal = Quantity * UnitPrice na precisão de duas casas decimais.
// O total informado pelo canal nunca é confiado.
func NewSalesRecord(date time.Time, orderID, productName, externalID string, quantity int, unitPrice decimal.Decimal) *SalesRecord {
	record := &SalesRecord{
		Date:        TruncateToDay(date),
		OrderID:     orderID,
		ProductName: productName,
		ExternalID:  externalID,
		Quantity:    quantity,
		UnitPrice:   unitPrice.Round(2),
	}

	record.LineTotal = record.UnitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2)

	record.IsBundle = strings.Contains(productName, "Bundle")
	record.HasWiFi = strings.Contains(productName, "WiFi")
	record.HasRemote = strings.Contains(productName, "Remote")

	return record
}

// TruncateToDay normaliza um instante para a granularidade de dia em UTC.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ChannelSales agrupa os registros normalizados de um canal durante uma
// execução. O orquestrador monta a lista explicitamente e repassa para os
// estágios seguintes, sem acúmulo em estado global.
type ChannelSales struct {
	Channel string
	Records []*SalesRecord
}
