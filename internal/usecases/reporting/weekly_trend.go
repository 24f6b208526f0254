package reporting

import (
	"fmt"

	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-report-api/internal/usecases/comparing"
)

// TabWeeklyTrend é a aba de destino do relatório semanal.
const TabWeeklyTrend = "Weekly Sales Report"

// currencySymbol prefixa as colunas monetárias do relatório semanal.
const currencySymbol = "£"

// vatNote acompanha o cabeçalho do relatório semanal.
const vatNote = "Sales Ex VAT (VAT is on all products) - Ex returns."

// BuildWeeklyTrend monta o relatório de tendência semanal: uma linha por
// canal com a receita em cada janela de comparação e as razões de
// crescimento. Colunas monetárias são prefixadas com o símbolo da moeda e
// duas casas decimais; as razões ficam como decimais crus (sem escala
// percentual).
func BuildWeeklyTrend(channels []domain.ChannelSales, periods comparing.ComparisonPeriods) *domain.Report {
	_, isoWeek := periods.LastWeek.Start.ISOWeek()

	columns := []string{
		"Platform",
		domain.PeriodLastWeek,
		domain.PeriodPriorWeek,
		domain.PeriodPriorYear,
		domain.PeriodLast4Weeks,
		domain.PeriodYTD,
		domain.PeriodPriorYTD,
		"WOW",
		"YOY",
		"YOY YTD",
	}

	rows := make([][]interface{}, 0, len(channels))
	for _, channel := range channels {
		lastWeek := aggregating.Sum(channel.Records, periods.LastWeek.DateRange)
		priorWeek := aggregating.Sum(channel.Records, periods.PriorWeek.DateRange)
		priorYear := aggregating.Sum(channel.Records, periods.PriorYear.DateRange)
		last4Weeks := aggregating.Sum(channel.Records, periods.Last4Weeks.DateRange)
		ytd := aggregating.Sum(channel.Records, periods.YTD.DateRange)
		priorYTD := aggregating.Sum(channel.Records, periods.PriorYTD.DateRange)

		rows = append(rows, []interface{}{
			channel.Channel,
			money(lastWeek),
			money(priorWeek),
			money(priorYear),
			money(last4Weeks),
			money(ytd),
			money(priorYTD),
			comparing.GrowthRatio(lastWeek.Revenue, priorWeek.Revenue),
			comparing.GrowthRatio(lastWeek.Revenue, priorYear.Revenue),
			comparing.GrowthRatio(ytd.Revenue, priorYTD.Revenue),
		})
	}

	return &domain.Report{
		Type:    domain.ReportWeeklyTrend,
		TabName: TabWeeklyTrend,
		Preamble: [][]interface{}{
			{fmt.Sprintf("ISOWEEK %d Dashboard", isoWeek)},
			{vatNote},
		},
		Columns: columns,
		Rows:    rows,
	}
}

func money(totals aggregating.Totals) string {
	return currencySymbol + totals.Revenue.StringFixed(2)
}
