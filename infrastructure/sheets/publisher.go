package sheets

import (
	"context"
	"fmt"

	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/pkg/log"
)

// Dimensões da aba criada quando o destino ainda não existe
const (
	newTabRows    = 1000
	newTabColumns = 26
)

// Publisher grava um relatório em uma aba nomeada do destino, substituindo
// integralmente o conteúdo anterior (nunca anexa).
type Publisher interface {
	Publish(ctx context.Context, report *domain.Report, sheetID string) error
}

type SheetPublisher struct {
	service *sheetsapi.Service
}

func NewPublisher(service *sheetsapi.Service) Publisher {
	return &SheetPublisher{service: service}
}

// Publish garante que a aba exista, limpa o conteúdo atual e grava o
// relatório em uma única escrita de valores.
func (p *SheetPublisher) Publish(ctx context.Context, report *domain.Report, sheetID string) error {
	if err := p.ensureTab(ctx, sheetID, report.TabName); err != nil {
		return fmt.Errorf("erro ao preparar a aba %q: %w", report.TabName, err)
	}

	_, err := p.service.Spreadsheets.Values.
		Clear(sheetID, report.TabName, &sheetsapi.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("erro ao limpar a aba %q: %w", report.TabName, err)
	}

	valueRange := &sheetsapi.ValueRange{
		MajorDimension: "ROWS",
		Range:          report.TabName,
		Values:         report.Values(),
	}

	_, err = p.service.Spreadsheets.Values.
		Update(sheetID, report.TabName, valueRange).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("erro ao gravar a aba %q: %w", report.TabName, err)
	}

	log.L.WithFields(log.Fields{
		"tab":  report.TabName,
		"rows": len(report.Rows),
	}).Infof("Relatório %s publicado com sucesso", report.Type)

	return nil
}

// ensureTab cria a aba de destino quando ela ainda não existe.
func (p *SheetPublisher) ensureTab(ctx context.Context, sheetID, tabName string) error {
	spreadsheet, err := p.service.Spreadsheets.Get(sheetID).Context(ctx).Do()
	if err != nil {
		return err
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == tabName {
			return nil
		}
	}

	batchUpdate := &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{
			{
				AddSheet: &sheetsapi.AddSheetRequest{
					Properties: &sheetsapi.SheetProperties{
						Title: tabName,
						GridProperties: &sheetsapi.GridProperties{
							RowCount:    newTabRows,
							ColumnCount: newTabColumns,
						},
					},
				},
			},
		},
	}

	_, err = p.service.Spreadsheets.BatchUpdate(sheetID, batchUpdate).Context(ctx).Do()
	return err
}
