package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	amazondomain "github.com/vfg2006/sales-report-api/infrastructure/integrator/amazon/domain"
	amazonmocks "github.com/vfg2006/sales-report-api/infrastructure/integrator/amazon/mocks"
	shopifydomain "github.com/vfg2006/sales-report-api/infrastructure/integrator/shopify/domain"
	shopifymocks "github.com/vfg2006/sales-report-api/infrastructure/integrator/shopify/mocks"
	sheetsmocks "github.com/vfg2006/sales-report-api/infrastructure/sheets/mocks"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-report-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	m.Run()
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Sheets.SkuMappingSheetID = "mapping-sheet"
	cfg.Sheets.SalesReportSheetID = "report-sheet"
	cfg.Shops = []config.Shopify{
		{ShopURL: "shop-1.myshopify.com"},
		{ShopURL: "shop-2.myshopify.com"},
	}
	return cfg
}

func testWindow() domain.DateRange {
	return domain.NewDateRange(
		time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 24, 0, 0, 0, 0, time.UTC),
	)
}

func newMocks(t *testing.T) (*amazonmocks.MockAmazonIntegrator, *shopifymocks.MockShopifyIntegrator, *sheetsmocks.MockMappingLoader, *sheetsmocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	return amazonmocks.NewMockAmazonIntegrator(ctrl),
		shopifymocks.NewMockShopifyIntegrator(ctrl),
		sheetsmocks.NewMockMappingLoader(ctrl),
		sheetsmocks.NewMockPublisher(ctrl)
}

func TestOrchestrator_Run(t *testing.T) {
	amazonService, shopifyService, mappingLoader, publisher := newMocks(t)
	cfg := testConfig()
	window := testWindow()

	mappingLoader.EXPECT().
		LoadMapping(gomock.Any(), "mapping-sheet").
		Return(domain.FallbackSkuMapping(), nil)

	amazonService.EXPECT().
		GetOrderRows(window).
		Return([]amazondomain.OrderRow{
			{Date: "2024-03-20", OrderID: "111", ProductName: "Standard", ASIN: "B09VYXL17W", Quantity: 1, Price: decimal.NewFromFloat(99.99)},
		}, nil)

	shopifyService.EXPECT().
		GetOrdersByShop(cfg.Shops[0], window).
		Return([]shopifydomain.Order{
			{
				ID:        1,
				CreatedAt: "2024-03-21T10:00:00Z",
				LineItems: []shopifydomain.LineItem{
					{Title: "Advanced Bundle", SKU: "ADV", Quantity: 1, Price: "149.99"},
				},
			},
		}, nil)
	shopifyService.EXPECT().
		GetOrdersByShop(cfg.Shops[1], window).
		Return(nil, nil)

	// Os três relatórios são publicados na mesma planilha de destino
	published := make([]string, 0, 3)
	publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any(), "report-sheet").
		DoAndReturn(func(_ context.Context, report *domain.Report, _ string) error {
			published = append(published, report.TabName)
			return nil
		}).
		Times(3)

	orchestrator := NewOrchestrator(cfg, amazonService, shopifyService, mappingLoader, publisher)

	summary, err := orchestrator.Run(context.Background(), window)

	require.NoError(t, err)
	assert.Equal(t, StageDone, summary.Stage)
	assert.NotEmpty(t, summary.RunID)
	assert.Equal(t, 1, summary.Records[domain.ChannelAmazon])
	assert.Equal(t, 1, summary.Records[domain.ChannelShopify1])
	assert.Equal(t, 0, summary.Records[domain.ChannelShopify2])
	assert.Equal(t, []string{
		reporting.TabRateOfSale,
		reporting.TabWeeklyTrend,
		reporting.TabDashboard,
	}, published)
	assert.Equal(t, published, summary.Published)
}

func TestOrchestrator_Run_FalhaNaBuscaAbortaAntesDePublicar(t *testing.T) {
	amazonService, shopifyService, mappingLoader, publisher := newMocks(t)
	cfg := testConfig()
	window := testWindow()

	mappingLoader.EXPECT().
		LoadMapping(gomock.Any(), gomock.Any()).
		Return(domain.FallbackSkuMapping(), nil)

	amazonService.EXPECT().
		GetOrderRows(window).
		Return(nil, errors.New("marketplace fora do ar"))

	// Nenhuma loja é consultada e nada é publicado
	shopifyService.EXPECT().GetOrdersByShop(gomock.Any(), gomock.Any()).Times(0)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	orchestrator := NewOrchestrator(cfg, amazonService, shopifyService, mappingLoader, publisher)

	summary, err := orchestrator.Run(context.Background(), window)

	require.Error(t, err)
	assert.ErrorContains(t, err, ErrFetchMarketplace.Error())
	assert.Equal(t, StageFailed, summary.Stage)
	assert.Empty(t, summary.Published)
}

func TestOrchestrator_Run_FalhaDeUmaLojaAbortaARodada(t *testing.T) {
	amazonService, shopifyService, mappingLoader, publisher := newMocks(t)
	cfg := testConfig()
	window := testWindow()

	mappingLoader.EXPECT().
		LoadMapping(gomock.Any(), gomock.Any()).
		Return(domain.FallbackSkuMapping(), nil)

	amazonService.EXPECT().
		GetOrderRows(window).
		Return(nil, nil)

	shopifyService.EXPECT().
		GetOrdersByShop(cfg.Shops[0], window).
		Return(nil, errors.New("loja rejeitou a credencial"))

	publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	orchestrator := NewOrchestrator(cfg, amazonService, shopifyService, mappingLoader, publisher)

	summary, err := orchestrator.Run(context.Background(), window)

	require.Error(t, err)
	assert.ErrorContains(t, err, ErrFetchStorefront.Error())
	assert.Equal(t, StageFailed, summary.Stage)
}

func TestOrchestrator_Run_FalhaDePublicacaoNaoInterrompeAsDemais(t *testing.T) {
	amazonService, shopifyService, mappingLoader, publisher := newMocks(t)
	cfg := testConfig()
	window := testWindow()

	mappingLoader.EXPECT().
		LoadMapping(gomock.Any(), gomock.Any()).
		Return(domain.FallbackSkuMapping(), nil)
	amazonService.EXPECT().GetOrderRows(window).Return(nil, nil)
	shopifyService.EXPECT().GetOrdersByShop(gomock.Any(), window).Return(nil, nil).Times(2)

	// A primeira publicação falha; as outras duas ainda acontecem
	published := make([]string, 0, 2)
	first := true
	publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any(), "report-sheet").
		DoAndReturn(func(_ context.Context, report *domain.Report, _ string) error {
			if first {
				first = false
				return errors.New("aba rejeitada")
			}
			published = append(published, report.TabName)
			return nil
		}).
		Times(3)

	orchestrator := NewOrchestrator(cfg, amazonService, shopifyService, mappingLoader, publisher)

	summary, err := orchestrator.Run(context.Background(), window)

	// Uma falha de publicação derruba o resultado geral mesmo com as
	// demais abas publicadas
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPublishFailed)
	assert.Equal(t, StageFailed, summary.Stage)
	assert.Equal(t, []string{reporting.TabWeeklyTrend, reporting.TabDashboard}, published)
	assert.Equal(t, published, summary.Published)
}

func TestOrchestrator_Run_MapeamentoIndisponivelDegradaParaListaFixa(t *testing.T) {
	amazonService, shopifyService, mappingLoader, publisher := newMocks(t)
	cfg := testConfig()
	window := testWindow()

	mappingLoader.EXPECT().
		LoadMapping(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("planilha de mapeamento inacessível"))

	amazonService.EXPECT().GetOrderRows(window).Return(nil, nil)
	shopifyService.EXPECT().GetOrdersByShop(gomock.Any(), window).Return(nil, nil).Times(2)

	var rateOfSale *domain.Report
	publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, report *domain.Report, _ string) error {
			if report.Type == domain.ReportRateOfSale {
				rateOfSale = report
			}
			return nil
		}).
		Times(3)

	orchestrator := NewOrchestrator(cfg, amazonService, shopifyService, mappingLoader, publisher)

	_, err := orchestrator.Run(context.Background(), window)

	require.NoError(t, err)
	require.NotNil(t, rateOfSale)
	assert.Len(t, rateOfSale.Rows, len(domain.DefaultProducts), "a lista fixa sustenta o relatório")
}

func TestOrchestrator_LastRun_EntregaCopiaEstavelDuranteExecucao(t *testing.T) {
	amazonService, shopifyService, mappingLoader, publisher := newMocks(t)
	cfg := testConfig()
	window := testWindow()

	started := make(chan struct{})
	release := make(chan struct{})

	mappingLoader.EXPECT().
		LoadMapping(gomock.Any(), gomock.Any()).
		Return(domain.FallbackSkuMapping(), nil)
	amazonService.EXPECT().
		GetOrderRows(window).
		DoAndReturn(func(domain.DateRange) ([]amazondomain.OrderRow, error) {
			close(started)
			<-release
			return []amazondomain.OrderRow{
				{Date: "2024-03-20", OrderID: "111", ProductName: "Standard", ASIN: "B09VYXL17W", Quantity: 1, Price: decimal.NewFromFloat(99.99)},
			}, nil
		})
	shopifyService.EXPECT().GetOrdersByShop(gomock.Any(), window).Return(nil, nil).Times(2)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)

	orchestrator := NewOrchestrator(cfg, amazonService, shopifyService, mappingLoader, publisher)

	done := make(chan error, 1)
	go func() {
		_, err := orchestrator.Run(context.Background(), window)
		done <- err
	}()

	<-started
	during := orchestrator.LastRun()
	require.NotNil(t, during)
	assert.Equal(t, StageFetchMarketplace, during.Stage)

	close(release)
	require.NoError(t, <-done)

	// O resumo entregue durante a execução é uma cópia: o andamento
	// posterior não vaza para quem já o leu
	assert.Equal(t, StageFetchMarketplace, during.Stage)
	assert.Empty(t, during.Records)
	assert.Empty(t, during.Published)

	after := orchestrator.LastRun()
	require.NotNil(t, after)
	assert.Equal(t, StageDone, after.Stage)
	assert.Equal(t, 1, after.Records[domain.ChannelAmazon])
	assert.Len(t, after.Published, 3)
}

func TestOrchestrator_Run_ExecucaoConcorrenteRejeitada(t *testing.T) {
	amazonService, shopifyService, mappingLoader, publisher := newMocks(t)
	cfg := testConfig()
	window := testWindow()

	started := make(chan struct{})
	release := make(chan struct{})

	mappingLoader.EXPECT().
		LoadMapping(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string) (*domain.SkuMapping, error) {
			close(started)
			<-release
			return domain.FallbackSkuMapping(), nil
		})
	amazonService.EXPECT().GetOrderRows(window).Return(nil, nil)
	shopifyService.EXPECT().GetOrdersByShop(gomock.Any(), window).Return(nil, nil).Times(2)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)

	orchestrator := NewOrchestrator(cfg, amazonService, shopifyService, mappingLoader, publisher)

	done := make(chan error, 1)
	go func() {
		_, err := orchestrator.Run(context.Background(), window)
		done <- err
	}()

	<-started
	_, err := orchestrator.Run(context.Background(), window)
	assert.ErrorIs(t, err, ErrRunInProgress)

	close(release)
	require.NoError(t, <-done)
}
