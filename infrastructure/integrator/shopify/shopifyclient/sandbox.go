package shopifyclient

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/domain"

	shopifydomain "github.com/vfg2006/sales-report-api/infrastructure/integrator/shopify/domain"
)

type catalogItem struct {
	Name  string
	SKU   string
	Price string
}

var sandboxCatalog = []catalogItem{
	{Name: "Advanced Bundle", SKU: "Advanced Bundle", Price: "149.99"},
	{Name: "Advanced Bundle + WiFi", SKU: "Advanced Bundle + WiFi", Price: "189.99"},
	{Name: "Advanced Bundle + Remote", SKU: "Advanced Bundle + Remote", Price: "179.99"},
	{Name: "Expert Bundle", SKU: "Expert Bundle", Price: "199.99"},
}

// secondShopPriceFactor aplica a variação de preço da segunda loja.
var secondShopPriceFactor = decimal.NewFromFloat(0.9)

// SandboxClient gera pedidos locais no formato da Admin API, permitindo
// executar o pipeline sem credenciais das lojas.
type SandboxClient struct {
	cfg *config.Config
	rng *rand.Rand
}

func NewSandboxClient(cfg *config.Config, seed int64) Client {
	return &SandboxClient{cfg: cfg, rng: rand.New(rand.NewSource(seed))}
}

func (c *SandboxClient) GetOrders(shop config.Shopify, window domain.DateRange) ([]shopifydomain.Order, error) {
	shopIndex := 0
	for i, configured := range c.cfg.Shops {
		if configured.ShopURL == shop.ShopURL {
			shopIndex = i
			break
		}
	}

	var orders []shopifydomain.Order

	for date := window.Start; !date.After(window.End); date = date.AddDate(0, 0, 1) {
		for _, item := range sandboxCatalog {
			quantity := c.rng.Intn(9)
			if quantity == 0 {
				continue
			}

			price, err := decimal.NewFromString(item.Price)
			if err != nil {
				return nil, err
			}
			if shopIndex == 1 {
				price = price.Mul(secondShopPriceFactor).Round(2)
			}

			orders = append(orders, shopifydomain.Order{
				ID:        int64(100000 + c.rng.Intn(900000)),
				CreatedAt: date.Format(time.DateOnly) + "T12:00:00Z",
				LineItems: []shopifydomain.LineItem{
					{
						Title:    item.Name,
						SKU:      item.SKU,
						Quantity: quantity,
						Price:    price.StringFixed(2),
					},
				},
			})
		}
	}

	return orders, nil
}
