package amazon

import (
	"github.com/vfg2006/sales-report-api/infrastructure/integrator/amazon/amazonclient"
	amazondomain "github.com/vfg2006/sales-report-api/infrastructure/integrator/amazon/domain"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

type AmazonIntegrator interface {
	GetOrderRows(window domain.DateRange) ([]amazondomain.OrderRow, error)
}

type AmazonService struct {
	cfg    *config.Config
	Client amazonclient.Client
}

func New(cfg *config.Config, client amazonclient.Client) AmazonIntegrator {
	return &AmazonService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *AmazonService) GetOrderRows(window domain.DateRange) ([]amazondomain.OrderRow, error) {
	return s.Client.GetOrderRows(window)
}
