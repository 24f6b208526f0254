package amazonclient

import (
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"
	amazondomain "github.com/vfg2006/sales-report-api/infrastructure/integrator/amazon/domain"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

// catalogItem é um produto do Global SKU List usado pelo gerador local.
type catalogItem struct {
	Name  string
	ASIN  string
	Price string
}

var sandboxCatalog = []catalogItem{
	{Name: "Advanced OG", ASIN: "B09VY25KD8", Price: "149.99"},
	{Name: "Advanced PL", ASIN: "B09ZF8LVBK", Price: "169.99"},
	{Name: "Standard", ASIN: "B09VYXL17W", Price: "99.99"},
	{Name: "Basic", ASIN: "B09VY2HGVK", Price: "49.99"},
}

// SandboxClient gera pedidos locais com o formato do relatório plano,
// permitindo executar o pipeline sem credenciais do marketplace.
type SandboxClient struct {
	rng *rand.Rand
}

func NewSandboxClient(seed int64) Client {
	return &SandboxClient{rng: rand.New(rand.NewSource(seed))}
}

func (c *SandboxClient) GetOrderRows(window domain.DateRange) ([]amazondomain.OrderRow, error) {
	var rows []amazondomain.OrderRow

	for date := window.Start; !date.After(window.End); date = date.AddDate(0, 0, 1) {
		for _, item := range sandboxCatalog {
			quantity := c.rng.Intn(11)
			if quantity == 0 {
				continue
			}

			price, err := decimal.NewFromString(item.Price)
			if err != nil {
				return nil, err
			}

			rows = append(rows, amazondomain.OrderRow{
				Date:        date.Format("2006-01-02"),
				OrderID:     fmt.Sprintf("AMZ-%06d", 100000+c.rng.Intn(900000)),
				ProductName: item.Name,
				ASIN:        item.ASIN,
				Quantity:    quantity,
				Price:       price,
				Total:       price.Mul(decimal.NewFromInt(int64(quantity))),
			})
		}
	}

	return rows, nil
}
