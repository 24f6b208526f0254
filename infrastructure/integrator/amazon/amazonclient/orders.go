package amazonclient

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	amazondomain "github.com/vfg2006/sales-report-api/infrastructure/integrator/amazon/domain"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// reportRequest é o corpo aceito pela SP-API para solicitar o relatório
// plano de pedidos por data.
type reportRequest struct {
	ReportType     string   `json:"reportType"`
	DataStartTime  string   `json:"dataStartTime"`
	DataEndTime    string   `json:"dataEndTime"`
	MarketplaceIDs []string `json:"marketplaceIds"`
}

type reportResponse struct {
	Rows []amazondomain.OrderRow `json:"rows"`
}

// GetOrderRows solicita as linhas de pedidos do marketplace para a janela
// informada. As pontas da janela são enviadas na granularidade de dia
// (00:00:00 e 23:59:59 UTC), ambas inclusivas.
func (c *AmazonClient) GetOrderRows(window domain.DateRange) ([]amazondomain.OrderRow, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	endpoint, err := url.Parse(c.config.Amazon.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/reports/2021-06-30/reports")

	body := reportRequest{
		ReportType:     "GET_FLAT_FILE_ALL_ORDERS_DATA_BY_ORDER_DATE_GENERAL",
		DataStartTime:  window.Start.Format(time.DateOnly) + "T00:00:00Z",
		DataEndTime:    window.End.Format(time.DateOnly) + "T23:59:59Z",
		MarketplaceIDs: []string{c.config.Amazon.MarketplaceID},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar a requisição: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("x-amz-access-token", c.config.Amazon.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var response reportResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response.Rows, nil
}
