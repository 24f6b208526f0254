package amazonclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

func testWindow() domain.DateRange {
	return domain.NewDateRange(
		time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 16, 0, 0, 0, 0, time.UTC),
	)
}

func TestAmazonClient_GetOrderRows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/reports/2021-06-30/reports", r.URL.Path)
		assert.Equal(t, "token-123", r.Header.Get("x-amz-access-token"))

		var req reportRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "GET_FLAT_FILE_ALL_ORDERS_DATA_BY_ORDER_DATE_GENERAL", req.ReportType)
		// As pontas da janela cobrem o dia inteiro, inclusivas
		assert.Equal(t, "2024-03-10T00:00:00Z", req.DataStartTime)
		assert.Equal(t, "2024-03-16T23:59:59Z", req.DataEndTime)
		assert.Equal(t, []string{"A1F83G8C2ARO7P"}, req.MarketplaceIDs)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"rows": [
				{"date": "2024-03-10", "order_id": "111-222", "product_name": "Standard", "asin": "B09VYXL17W", "quantity": 2, "price": 99.99, "total": 199.98}
			]
		}`))
	}))
	defer server.Close()

	cfg := &config.Config{}
	cfg.Amazon.BaseURL = server.URL
	cfg.Amazon.AccessToken = "token-123"
	cfg.Amazon.MarketplaceID = "A1F83G8C2ARO7P"

	client := NewClient(cfg)

	rows, err := client.GetOrderRows(testWindow())

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "111-222", rows[0].OrderID)
	assert.Equal(t, "Standard", rows[0].ProductName)
	assert.Equal(t, 2, rows[0].Quantity)
}

func TestAmazonClient_GetOrderRows_StatusDeErro(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	cfg := &config.Config{}
	cfg.Amazon.BaseURL = server.URL

	client := NewClient(cfg)

	_, err := client.GetOrderRows(testWindow())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}
