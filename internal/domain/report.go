package domain

// ReportType identifica um dos três relatórios publicados pelo pipeline
type ReportType string

const (
	ReportRateOfSale        ReportType = "rate_of_sale"
	ReportWeeklyTrend       ReportType = "weekly_trend"
	ReportDashboardSnapshot ReportType = "dashboard_snapshot"
)

// Report é uma tabela retangular pronta para publicação: linhas de
// preâmbulo opcionais, uma linha de cabeçalho e as linhas de dados.
// Produzido por um builder e consumido exatamente uma vez pelo publisher.
type Report struct {
	Type     ReportType
	TabName  string
	Preamble [][]interface{}
	Columns  []string
	Rows     [][]interface{}
}

// Values monta a matriz de células no formato aceito pelo destino
// (preâmbulo, cabeçalho e dados, nessa ordem).
func (r *Report) Values() [][]interface{} {
	values := make([][]interface{}, 0, len(r.Preamble)+1+len(r.Rows))
	values = append(values, r.Preamble...)

	header := make([]interface{}, len(r.Columns))
	for i, column := range r.Columns {
		header[i] = column
	}
	values = append(values, header)

	values = append(values, r.Rows...)
	return values
}
