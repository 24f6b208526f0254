package amazonclient

import (
	"net/http"
	"time"

	amazondomain "github.com/vfg2006/sales-report-api/infrastructure/integrator/amazon/domain"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

type Client interface {
	GetOrderRows(window domain.DateRange) ([]amazondomain.OrderRow, error)
}

type AmazonClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &AmazonClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
