package domain

// DefaultProducts é a lista fixa de produtos usada quando a planilha de
// mapeamento de SKUs está indisponível. A ausência do mapeamento reduz o
// escopo dos relatórios mas não é fatal.
var DefaultProducts = []string{
	"Advanced Bundle",
	"Standard",
	"Basic",
	"Basic+ Bundle",
}

// SkuMappingEntry mapeia um identificador específico de canal (SKU ou ASIN)
// para o nome canônico do produto.
type SkuMappingEntry struct {
	ExternalID  string
	ProductName string
}

// SkuMapping é a tabela de reconciliação de nomes de produtos, carregada uma
// vez no início da execução e somente leitura depois disso.
type SkuMapping struct {
	products     []string
	byExternalID map[string]string
	asinByName   map[string]string
	skuByName    map[string]string
}

// NewSkuMapping monta a tabela a partir da lista ordenada de produtos
// canônicos e das entradas de identificadores externos.
func NewSkuMapping(products []string, entries []SkuMappingEntry, asinByName, skuByName map[string]string) *SkuMapping {
	byExternalID := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.ExternalID == "" || entry.ProductName == "" {
			continue
		}
		byExternalID[entry.ExternalID] = entry.ProductName
	}

	if asinByName == nil {
		asinByName = map[string]string{}
	}
	if skuByName == nil {
		skuByName = map[string]string{}
	}

	return &SkuMapping{
		products:     products,
		byExternalID: byExternalID,
		asinByName:   asinByName,
		skuByName:    skuByName,
	}
}

// FallbackSkuMapping devolve a tabela degradada com a lista fixa de produtos
// e nenhum identificador externo.
func FallbackSkuMapping() *SkuMapping {
	return NewSkuMapping(DefaultProducts, nil, nil, nil)
}

// ProductNames devolve os nomes canônicos na ordem de carga.
func (m *SkuMapping) ProductNames() []string {
	return m.products
}

// CanonicalName resolve um identificador externo para o nome canônico.
func (m *SkuMapping) CanonicalName(externalID string) (string, bool) {
	name, ok := m.byExternalID[externalID]
	return name, ok
}

// ASINFor devolve o ASIN cadastrado para um produto canônico, se houver.
func (m *SkuMapping) ASINFor(productName string) string {
	return m.asinByName[productName]
}

// SkuFor devolve o SKU Shopify cadastrado para um produto canônico, se houver.
func (m *SkuMapping) SkuFor(productName string) string {
	return m.skuByName[productName]
}

// Len devolve a quantidade de identificadores externos mapeados.
func (m *SkuMapping) Len() int {
	return len(m.byExternalID)
}
