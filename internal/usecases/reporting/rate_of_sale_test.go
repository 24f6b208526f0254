package reporting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

func record(day int, product, externalID string, quantity int, unitPrice float64) *domain.SalesRecord {
	return domain.NewSalesRecord(
		time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC),
		"order-1",
		product,
		externalID,
		quantity,
		decimal.NewFromFloat(unitPrice),
	)
}

func marchWindow(startDay, endDay int) domain.DateRange {
	return domain.NewDateRange(
		time.Date(2024, time.March, startDay, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, endDay, 0, 0, 0, 0, time.UTC),
	)
}

func TestBuildRateOfSale(t *testing.T) {
	mapping := domain.NewSkuMapping(
		[]string{"Advanced OG", "Standard"},
		[]domain.SkuMappingEntry{
			{ExternalID: "B09VY25KD8", ProductName: "Advanced OG"},
			{ExternalID: "B09VYXL17W", ProductName: "Standard"},
		},
		map[string]string{"Advanced OG": "B09VY25KD8", "Standard": "B09VYXL17W"},
		map[string]string{"Standard": "STD-SKU"},
	)

	channels := []domain.ChannelSales{
		{
			Channel: domain.ChannelAmazon,
			Records: []*domain.SalesRecord{
				record(10, "Advanced OG", "B09VY25KD8", 2, 149.99),
				record(11, "Standard", "B09VYXL17W", 1, 99.99),
			},
		},
		{
			Channel: domain.ChannelShopify1,
			Records: []*domain.SalesRecord{
				record(12, "Standard", "STD-SKU", 3, 99.99),
			},
		},
		{
			Channel: domain.ChannelShopify2,
			Records: nil,
		},
	}

	report := BuildRateOfSale(mapping, channels, marchWindow(10, 16))

	assert.Equal(t, domain.ReportRateOfSale, report.Type)
	assert.Equal(t, TabRateOfSale, report.TabName)

	assert.Equal(t, [][]interface{}{
		{"Start Date", "2024-03-10", "End Date", "2024-03-16"},
	}, report.Preamble)

	assert.Equal(t, []string{
		"Product Name",
		"Amazon Product",
		"Amazon ASIN",
		"QTY Sold (Amazon)",
		"Shopify SKU",
		"QTY Sold (Shopify1)",
		"QTY Sold (Shopify2)",
	}, report.Columns)

	// Uma linha por produto canônico, na ordem do mapeamento
	assert.Len(t, report.Rows, 2)

	advanced := report.Rows[0]
	assert.Equal(t, "Advanced OG", advanced[0])
	assert.Equal(t, "B09VY25KD8", advanced[2])
	assert.Equal(t, 2, advanced[3])
	assert.Equal(t, 0, advanced[5], "sem vendas no Shopify1")
	assert.Equal(t, 0, advanced[6])

	standard := report.Rows[1]
	assert.Equal(t, "Standard", standard[0])
	assert.Equal(t, 1, standard[3])
	assert.Equal(t, "STD-SKU", standard[4])
	assert.Equal(t, 3, standard[5])
}

func TestBuildRateOfSale_MapeamentoDegradado(t *testing.T) {
	channels := []domain.ChannelSales{
		{Channel: domain.ChannelAmazon, Records: nil},
		{Channel: domain.ChannelShopify1, Records: nil},
	}

	report := BuildRateOfSale(domain.FallbackSkuMapping(), channels, marchWindow(10, 16))

	// A lista fixa de produtos sustenta o relatório quando o mapeamento
	// está indisponível
	assert.Len(t, report.Rows, len(domain.DefaultProducts))
	for i, product := range domain.DefaultProducts {
		assert.Equal(t, product, report.Rows[i][0])
		// Sem ASIN cadastrado a célula fica vazia e o SKU cai no
		// próprio nome do produto
		assert.Equal(t, "", report.Rows[i][2])
		assert.Equal(t, product, report.Rows[i][4])
	}
}

func TestBuildRateOfSale_CasamentoPorSubstring(t *testing.T) {
	mapping := domain.FallbackSkuMapping()

	channels := []domain.ChannelSales{
		{
			Channel: domain.ChannelAmazon,
			Records: []*domain.SalesRecord{
				record(10, "Advanced Bundle + WiFi", "B09ZF8LVBK", 1, 169.99),
			},
		},
	}

	report := BuildRateOfSale(mapping, channels, marchWindow(10, 16))

	// "Advanced Bundle + WiFi" contém o token "Advanced Bundle"
	assert.Equal(t, "Advanced Bundle", report.Rows[0][0])
	assert.Equal(t, 1, report.Rows[0][3])
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Amazon", titleCase("AMAZON"))
	assert.Equal(t, "Shopify1", titleCase("SHOPIFY1"))
	assert.Equal(t, "Shopify2", titleCase("SHOPIFY2"))
	assert.Equal(t, "", titleCase(""))
}
