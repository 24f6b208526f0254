package comparing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/sales-report-api/internal/domain"
)

// ComparisonPeriods são as janelas de comparação derivadas da semana âncora
// por deslocamentos fixos de calendário. Recalculadas a cada execução.
type ComparisonPeriods struct {
	LastWeek   domain.PeriodWindow
	PriorWeek  domain.PeriodWindow
	PriorYear  domain.PeriodWindow
	Last4Weeks domain.PeriodWindow
	YTD        domain.PeriodWindow
	PriorYTD   domain.PeriodWindow
}

// DerivePeriods calcula as janelas de comparação a partir da janela âncora
// [start, end]:
//
//	PriorWeek  = [start-7d, end-7d]
//	PriorYear  = [start-365d, end-365d]
//	Last4Weeks = [start-28d, end]
//	YTD        = [1º de janeiro do ano de start, end]
//	PriorYTD   = [1º de janeiro do ano anterior, end com ano-1]
func DerivePeriods(anchor domain.DateRange) ComparisonPeriods {
	// 29/02 não existe no ano anterior; fechar em 28/02 em vez de deixar o
	// time.Date normalizar para 01/03 e incluir um dia a mais
	endDay := anchor.End.Day()
	if anchor.End.Month() == time.February && endDay == 29 {
		endDay = 28
	}
	priorYTDEnd := time.Date(
		anchor.End.Year()-1,
		anchor.End.Month(),
		endDay,
		0, 0, 0, 0, time.UTC,
	)

	return ComparisonPeriods{
		LastWeek: domain.PeriodWindow{
			Name:      domain.PeriodLastWeek,
			DateRange: anchor,
		},
		PriorWeek: domain.PeriodWindow{
			Name: domain.PeriodPriorWeek,
			DateRange: domain.DateRange{
				Start: anchor.Start.AddDate(0, 0, -7),
				End:   anchor.End.AddDate(0, 0, -7),
			},
		},
		PriorYear: domain.PeriodWindow{
			Name: domain.PeriodPriorYear,
			DateRange: domain.DateRange{
				Start: anchor.Start.AddDate(0, 0, -365),
				End:   anchor.End.AddDate(0, 0, -365),
			},
		},
		Last4Weeks: domain.PeriodWindow{
			Name: domain.PeriodLast4Weeks,
			DateRange: domain.DateRange{
				Start: anchor.Start.AddDate(0, 0, -28),
				End:   anchor.End,
			},
		},
		YTD: domain.PeriodWindow{
			Name: domain.PeriodYTD,
			DateRange: domain.DateRange{
				Start: time.Date(anchor.Start.Year(), time.January, 1, 0, 0, 0, 0, time.UTC),
				End:   anchor.End,
			},
		},
		PriorYTD: domain.PeriodWindow{
			Name: domain.PeriodPriorYTD,
			DateRange: domain.DateRange{
				Start: time.Date(anchor.Start.Year()-1, time.January, 1, 0, 0, 0, 0, time.UTC),
				End:   priorYTDEnd,
			},
		},
	}
}

// GrowthRatio calcula (atual - anterior) / anterior. Denominador zero (ou
// negativo) resulta em crescimento 0 — convenção de "sem dados anteriores"
// preservada do sistema de origem, nunca infinito/NaN/erro.
func GrowthRatio(current, prior decimal.Decimal) float64 {
	if !prior.IsPositive() {
		return 0
	}

	ratio, _ := current.Sub(prior).Div(prior).Float64()
	return ratio
}
