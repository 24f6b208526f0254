package reporting

import (
	"fmt"
	"time"

	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/usecases/aggregating"
)

// TabRateOfSale é a aba de destino do relatório de taxa de venda.
const TabRateOfSale = "Sales Rate Report"

// BuildRateOfSale monta o relatório de taxa de venda: uma linha por produto
// canônico, com a quantidade vendida em cada canal dentro da janela. Os
// produtos vêm do mapeamento de SKUs (ou da lista fixa, no modo degradado);
// as quantidades usam o casamento por substring do agregador.
func BuildRateOfSale(
	mapping *domain.SkuMapping,
	channels []domain.ChannelSales,
	window domain.DateRange,
) *domain.Report {
	products := mapping.ProductNames()

	columns := []string{"Product Name", "Amazon Product", "Amazon ASIN"}
	for _, channel := range channels {
		if channel.Channel == domain.ChannelAmazon {
			columns = append(columns, "QTY Sold (Amazon)")
		}
	}
	columns = append(columns, "Shopify SKU")
	for _, channel := range channels {
		if channel.Channel != domain.ChannelAmazon {
			columns = append(columns, fmt.Sprintf("QTY Sold (%s)", titleCase(channel.Channel)))
		}
	}

	byChannel := make(map[string]map[string]aggregating.Totals, len(channels))
	for _, channel := range channels {
		byChannel[channel.Channel] = aggregating.SumByProduct(channel.Records, window, products)
	}

	rows := make([][]interface{}, 0, len(products))
	for _, product := range products {
		row := []interface{}{product, product, mapping.ASINFor(product)}

		for _, channel := range channels {
			if channel.Channel == domain.ChannelAmazon {
				row = append(row, byChannel[channel.Channel][product].Quantity)
			}
		}

		sku := mapping.SkuFor(product)
		if sku == "" {
			sku = product
		}
		row = append(row, sku)

		for _, channel := range channels {
			if channel.Channel != domain.ChannelAmazon {
				row = append(row, byChannel[channel.Channel][product].Quantity)
			}
		}

		rows = append(rows, row)
	}

	return &domain.Report{
		Type:    domain.ReportRateOfSale,
		TabName: TabRateOfSale,
		Preamble: [][]interface{}{
			{"Start Date", window.Start.Format(time.DateOnly), "End Date", window.End.Format(time.DateOnly)},
		},
		Columns: columns,
		Rows:    rows,
	}
}

// titleCase converte o nome do canal (SHOPIFY1) para a grafia das colunas do
// relatório (Shopify1).
func titleCase(channel string) string {
	if len(channel) == 0 {
		return channel
	}

	out := make([]rune, 0, len(channel))
	for i, r := range channel {
		if i == 0 {
			out = append(out, r)
			continue
		}
		if r >= 'A' && r <= 'Z' {
			out = append(out, r+('a'-'A'))
			continue
		}
		out = append(out, r)
	}

	return string(out)
}
