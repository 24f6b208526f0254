package aggregating

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/sales-report-api/internal/domain"
)

// Totals acumula quantidade e receita de um grupo dentro de uma janela.
type Totals struct {
	Quantity int
	Revenue  decimal.Decimal
}

func (t Totals) add(record *domain.SalesRecord) Totals {
	return Totals{
		Quantity: t.Quantity + record.Quantity,
		Revenue:  t.Revenue.Add(record.LineTotal),
	}
}

// Sum soma quantidade e receita dos registros cuja data cai dentro da janela
// (pontas inclusivas, granularidade de dia).
func Sum(records []*domain.SalesRecord, window domain.DateRange) Totals {
	totals := Totals{Revenue: decimal.Zero}

	for _, record := range records {
		if !window.Contains(record.Date) {
			continue
		}
		totals = totals.add(record)
	}

	return totals
}

// SumByProduct soma por produto canônico usando contenção de substring no
// nome do registro: o produto "Advanced Bundle" também casa com o registro
// "Advanced Bundle + WiFi". Sobreposições não são deduplicadas; um registro
// pode contar em mais de um balde quando seu nome contém mais de um token de
// produto. Política de casamento grosseiro preservada do sistema de origem.
func SumByProduct(records []*domain.SalesRecord, window domain.DateRange, products []string) map[string]Totals {
	byProduct := make(map[string]Totals, len(products))
	for _, product := range products {
		byProduct[product] = Totals{Revenue: decimal.Zero}
	}

	for _, record := range records {
		if !window.Contains(record.Date) {
			continue
		}

		for _, product := range products {
			if strings.Contains(record.ProductName, product) {
				byProduct[product] = byProduct[product].add(record)
			}
		}
	}

	return byProduct
}

// SumByExactProduct soma por nome exato de produto, sem contenção de
// substring. Usado pelo painel para o ranking de produtos.
func SumByExactProduct(records []*domain.SalesRecord, window domain.DateRange) map[string]Totals {
	byProduct := make(map[string]Totals)

	for _, record := range records {
		if !window.Contains(record.Date) {
			continue
		}

		totals, ok := byProduct[record.ProductName]
		if !ok {
			totals = Totals{Revenue: decimal.Zero}
		}
		byProduct[record.ProductName] = totals.add(record)
	}

	return byProduct
}

// SumByDate soma por dia dentro da janela; a chave é a data em formato
// YYYY-MM-DD.
func SumByDate(records []*domain.SalesRecord, window domain.DateRange) map[string]Totals {
	byDate := make(map[string]Totals)

	for _, record := range records {
		if !window.Contains(record.Date) {
			continue
		}

		key := record.Date.Format(time.DateOnly)
		totals, ok := byDate[key]
		if !ok {
			totals = Totals{Revenue: decimal.Zero}
		}
		byDate[key] = totals.add(record)
	}

	return byDate
}
