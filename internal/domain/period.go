package domain

import "time"

// Nomes dos períodos de comparação derivados da janela âncora
const (
	PeriodLastWeek   = "Last week"
	PeriodPriorWeek  = "Prior Week"
	PeriodPriorYear  = "Prior Year"
	PeriodLast4Weeks = "Last 4 weeks"
	PeriodYTD        = "YTD"
	PeriodPriorYTD   = "Prior YTD"
)

// DateRange é um intervalo de datas inclusivo nas duas pontas, na
// granularidade de dia.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange normaliza as pontas para a granularidade de dia.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{
		Start: TruncateToDay(start),
		End:   TruncateToDay(end),
	}
}

// Contains verifica se a data está dentro do intervalo (pontas inclusas).
func (r DateRange) Contains(date time.Time) bool {
	d := TruncateToDay(date)
	return !d.Before(r.Start) && !d.After(r.End)
}

// PeriodWindow é um intervalo nomeado, derivado da janela âncora por
// deslocamentos fixos de calendário. Recalculado a cada execução.
type PeriodWindow struct {
	Name string
	DateRange
}
