package shopifyclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"regexp"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/domain"

	shopifydomain "github.com/vfg2006/sales-report-api/infrastructure/integrator/shopify/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// pageLimit é o máximo de pedidos por página permitido pelo Shopify.
const pageLimit = 250

// nextLinkPattern extrai o cursor page_info do cabeçalho Link
// (<https://...page_info=xyz>; rel="next").
var nextLinkPattern = regexp.MustCompile(`<[^>]*[?&]page_info=([^&>]+)[^>]*>;\s*rel="next"`)

// GetOrders busca todos os pedidos da loja cuja data de criação cai dentro da
// janela (pontas inclusivas, UTC), seguindo a paginação por cursor até o fim.
func (c *ShopifyClient) GetOrders(shop config.Shopify, window domain.DateRange) ([]shopifydomain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	var orders []shopifydomain.Order
	pageInfo := ""

	for {
		pageOrders, next, err := c.getOrdersPage(ctx, shop, window, pageInfo)
		if err != nil {
			return nil, err
		}

		orders = append(orders, pageOrders...)

		if next == "" {
			break
		}
		pageInfo = next
	}

	return orders, nil
}

func (c *ShopifyClient) getOrdersPage(
	ctx context.Context,
	shop config.Shopify,
	window domain.DateRange,
	pageInfo string,
) ([]shopifydomain.Order, string, error) {
	endpoint := &url.URL{
		Scheme: "https",
		Host:   shop.ShopURL,
		// Credenciais embutidas no estilo basic-auth da Admin API
		User: url.UserPassword(shop.APIKey, shop.AccessToken),
	}
	endpoint.Path = path.Join("/admin/api", shop.APIVersion, "orders.json")

	query := endpoint.Query()
	query.Set("limit", fmt.Sprintf("%d", pageLimit))
	if pageInfo != "" {
		// Com cursor, o Shopify rejeita filtros repetidos na mesma requisição
		query.Set("page_info", pageInfo)
	} else {
		query.Set("status", "any")
		query.Set("created_at_min", window.Start.Format(time.DateOnly)+"T00:00:00Z")
		query.Set("created_at_max", window.End.Format(time.DateOnly)+"T23:59:59Z")
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, "", fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var response shopifydomain.OrdersResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, "", fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response.Orders, nextPageInfo(resp.Header.Get("Link")), nil
}

func nextPageInfo(linkHeader string) string {
	if linkHeader == "" {
		return ""
	}

	matches := nextLinkPattern.FindStringSubmatch(linkHeader)
	if len(matches) < 2 {
		return ""
	}

	return matches[1]
}
