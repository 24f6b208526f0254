package shopifyclient

import (
	"net/http"
	"time"

	shopifydomain "github.com/vfg2006/sales-report-api/infrastructure/integrator/shopify/domain"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

type Client interface {
	GetOrders(shop config.Shopify, window domain.DateRange) ([]shopifydomain.Order, error)
}

type ShopifyClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &ShopifyClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
