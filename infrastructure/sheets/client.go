package sheets

import (
	"context"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/vfg2006/sales-report-api/internal/config"
)

// NewService autentica na API do Google Sheets com a service account
// configurada e devolve o serviço pronto para leitura e escrita.
func NewService(ctx context.Context, cfg *config.Config) (*sheetsapi.Service, error) {
	data, err := cfg.GoogleSheets.ServiceAccountJSON()
	if err != nil {
		return nil, err
	}

	serviceConfig, err := google.JWTConfigFromJSON(data, sheetsapi.SpreadsheetsScope)
	if err != nil {
		return nil, err
	}

	service, err := sheetsapi.NewService(ctx, option.WithHTTPClient(serviceConfig.Client(ctx)))
	if err != nil {
		return nil, err
	}

	return service, nil
}
