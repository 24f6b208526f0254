package shopify

import (
	"github.com/vfg2006/sales-report-api/infrastructure/integrator/shopify/shopifyclient"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/domain"

	shopifydomain "github.com/vfg2006/sales-report-api/infrastructure/integrator/shopify/domain"
)

type ShopifyIntegrator interface {
	GetOrdersByShop(shop config.Shopify, window domain.DateRange) ([]shopifydomain.Order, error)
}

type ShopifyService struct {
	cfg    *config.Config
	Client shopifyclient.Client
}

func New(cfg *config.Config, client shopifyclient.Client) ShopifyIntegrator {
	return &ShopifyService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *ShopifyService) GetOrdersByShop(shop config.Shopify, window domain.DateRange) ([]shopifydomain.Order, error) {
	return s.Client.GetOrders(shop, window)
}
