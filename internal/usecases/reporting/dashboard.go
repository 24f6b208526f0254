package reporting

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-report-api/pkg/utils"
)

// TabDashboard é a aba de destino do instantâneo do painel.
const TabDashboard = "Dashboard Data"

// dashboardTimezone é o fuso usado no carimbo de atualização do painel.
const dashboardTimezone = "Europe/Paris"

// topProductsLimit limita o ranking de produtos do painel.
const topProductsLimit = 5

// TopProduct é uma entrada do ranking de produtos por receita.
type TopProduct struct {
	ProductName string          `json:"product_name"`
	Platform    string          `json:"platform"`
	Revenue     decimal.Decimal `json:"total"`
}

// DailyRevenue é um ponto da série diária de receita por canal.
type DailyRevenue struct {
	Date     string          `json:"date"`
	Platform string          `json:"platform"`
	Revenue  decimal.Decimal `json:"total"`
}

// BuildDashboardSnapshot monta o instantâneo do painel: carimbo da execução,
// receita total por canal e geral, top produtos por receita (agrupamento por
// nome exato, todos os canais combinados) e a série diária dos últimos 7
// dias por canal. As estruturas compostas são serializadas como JSON
// compacto dentro das células.
func BuildDashboardSnapshot(channels []domain.ChannelSales, now time.Time) *domain.Report {
	location, err := time.LoadLocation(dashboardTimezone)
	if err != nil {
		location = time.UTC
	}

	// Janela aberta o suficiente para capturar tudo que está em memória
	allTime := domain.DateRange{
		Start: time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   domain.TruncateToDay(now),
	}

	columns := []string{"Last Updated"}
	row := []interface{}{now.In(location).Format("2006-01-02 15:04:05")}

	grandTotal := decimal.Zero
	for _, channel := range channels {
		totals := aggregating.Sum(channel.Records, allTime)
		grandTotal = grandTotal.Add(totals.Revenue)

		columns = append(columns, titleCase(channel.Channel)+" Revenue")
		row = append(row, totals.Revenue.StringFixed(2))
	}

	columns = append(columns, "Total Revenue")
	row = append(row, grandTotal.StringFixed(2))

	columns = append(columns, "Top Products")
	row = append(row, utils.CompactJson(topProducts(channels, allTime)))

	trailingWeek := domain.NewDateRange(now.AddDate(0, 0, -7), now)
	columns = append(columns, "Daily Revenue (7d)")
	row = append(row, utils.CompactJson(dailySeries(channels, trailingWeek)))

	return &domain.Report{
		Type:    domain.ReportDashboardSnapshot,
		TabName: TabDashboard,
		Columns: columns,
		Rows:    [][]interface{}{row},
	}
}

// topProducts combina o agrupamento exato por produto de cada canal e
// devolve as cinco maiores receitas.
func topProducts(channels []domain.ChannelSales, window domain.DateRange) []TopProduct {
	var products []TopProduct

	for _, channel := range channels {
		for name, totals := range aggregating.SumByExactProduct(channel.Records, window) {
			products = append(products, TopProduct{
				ProductName: name,
				Platform:    titleCase(channel.Channel),
				Revenue:     totals.Revenue,
			})
		}
	}

	sort.Slice(products, func(i, j int) bool {
		if !products[i].Revenue.Equal(products[j].Revenue) {
			return products[i].Revenue.GreaterThan(products[j].Revenue)
		}
		// Desempate estável para saída determinística
		if products[i].ProductName != products[j].ProductName {
			return products[i].ProductName < products[j].ProductName
		}
		return products[i].Platform < products[j].Platform
	})

	if len(products) > topProductsLimit {
		products = products[:topProductsLimit]
	}

	return products
}

// dailySeries monta a série diária de receita por canal dentro da janela,
// ordenada por data e canal.
func dailySeries(channels []domain.ChannelSales, window domain.DateRange) []DailyRevenue {
	var series []DailyRevenue

	for _, channel := range channels {
		for date, totals := range aggregating.SumByDate(channel.Records, window) {
			series = append(series, DailyRevenue{
				Date:     date,
				Platform: titleCase(channel.Channel),
				Revenue:  totals.Revenue,
			})
		}
	}

	sort.Slice(series, func(i, j int) bool {
		if series[i].Date != series[j].Date {
			return series[i].Date < series[j].Date
		}
		return series[i].Platform < series[j].Platform
	})

	return series
}
