package sheets

import (
	"context"
	"fmt"
	"strings"

	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/pkg/log"
)

// mappingTab é a aba da planilha que contém a tabela de mapeamento.
const mappingTab = "Sheet1"

// Colunas reconhecidas no cabeçalho da tabela de mapeamento
const (
	columnProductName = "Product Name"
	columnAmazonASIN  = "Amazon ASIN"
	columnShopifySKU  = "Shopify SKU"
)

// MappingLoader carrega a tabela de mapeamento de SKUs uma vez por execução.
type MappingLoader interface {
	LoadMapping(ctx context.Context, sheetID string) (*domain.SkuMapping, error)
}

type SheetMappingLoader struct {
	service *sheetsapi.Service
}

func NewMappingLoader(service *sheetsapi.Service) MappingLoader {
	return &SheetMappingLoader{service: service}
}

// LoadMapping lê a aba de mapeamento (cabeçalho + linhas de dados) e monta a
// tabela canônica. A coluna "Product Name" é obrigatória; ASIN e SKU
// alimentam o mapeamento de identificadores externos quando presentes.
func (l *SheetMappingLoader) LoadMapping(ctx context.Context, sheetID string) (*domain.SkuMapping, error) {
	resp, err := l.service.Spreadsheets.Values.
		Get(sheetID, mappingTab).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a planilha de mapeamento: %w", err)
	}

	if len(resp.Values) < 2 {
		return nil, fmt.Errorf("planilha de mapeamento vazia ou sem linhas de dados")
	}

	header := resp.Values[0]
	nameIdx, asinIdx, skuIdx := -1, -1, -1
	for i, cell := range header {
		switch strings.TrimSpace(fmt.Sprint(cell)) {
		case columnProductName:
			nameIdx = i
		case columnAmazonASIN:
			asinIdx = i
		case columnShopifySKU:
			skuIdx = i
		}
	}

	if nameIdx < 0 {
		return nil, fmt.Errorf("coluna %q ausente no cabeçalho da planilha de mapeamento", columnProductName)
	}

	var (
		products   []string
		entries    []domain.SkuMappingEntry
		asinByName = map[string]string{}
		skuByName  = map[string]string{}
	)

	for _, row := range resp.Values[1:] {
		name := cellAt(row, nameIdx)
		if name == "" {
			continue
		}

		products = append(products, name)

		if asin := cellAt(row, asinIdx); asin != "" {
			entries = append(entries, domain.SkuMappingEntry{ExternalID: asin, ProductName: name})
			asinByName[name] = asin
		}
		if sku := cellAt(row, skuIdx); sku != "" {
			entries = append(entries, domain.SkuMappingEntry{ExternalID: sku, ProductName: name})
			skuByName[name] = sku
		}
	}

	mapping := domain.NewSkuMapping(products, entries, asinByName, skuByName)

	log.L.WithField("entries", mapping.Len()).Infof("Mapeamento de SKUs carregado com sucesso: %d produtos", len(products))

	return mapping, nil
}

func cellAt(row []interface{}, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(row[idx]))
}
