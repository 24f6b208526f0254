package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	amazonmocks "github.com/vfg2006/sales-report-api/infrastructure/integrator/amazon/mocks"
	shopifymocks "github.com/vfg2006/sales-report-api/infrastructure/integrator/shopify/mocks"
	sheetsmocks "github.com/vfg2006/sales-report-api/infrastructure/sheets/mocks"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/pipeline"
	"github.com/vfg2006/sales-report-api/internal/scheduler"
	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func syncServices() PipelineServices {
	cfg := &config.Config{}
	cfg.ReportSync.CronSchedule = "0 6 * * 1"
	cfg.ReportSync.LookbackDays = 30
	return PipelineServices{
		ReportSyncService: scheduler.NewReportSyncService(nil, cfg),
	}
}

func TestRunPipeline_ServicoIndisponivel(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/v1/pipeline/run", nil)

	RunPipeline(PipelineServices{}).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrInternalServer, apiErr.Code)
}

func TestRunPipeline_ParametrosInvalidos(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		expectedCode string
	}{
		{
			name:         "days não numérico",
			target:       "/v1/pipeline/run?days=muitos",
			expectedCode: apiErrors.ErrInvalidRequest,
		},
		{
			name:         "days negativo",
			target:       "/v1/pipeline/run?days=-3",
			expectedCode: apiErrors.ErrInvalidRequest,
		},
		{
			name:         "start malformado",
			target:       "/v1/pipeline/run?start=10/03/2024&end=2024-03-16",
			expectedCode: apiErrors.ErrInvalidRequest,
		},
		{
			name:         "start sem end",
			target:       "/v1/pipeline/run?start=2024-03-10",
			expectedCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:         "janela invertida",
			target:       "/v1/pipeline/run?start=2024-03-16&end=2024-03-10",
			expectedCode: apiErrors.ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodPost, tt.target, nil)

			RunPipeline(syncServices()).ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusBadRequest, recorder.Code)

			var apiErr apiErrors.APIError
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &apiErr))
			assert.Equal(t, tt.expectedCode, apiErr.Code)
		})
	}
}

func TestRunPipeline_ExecucaoEmAndamentoResponde409(t *testing.T) {
	ctrl := gomock.NewController(t)
	amazonService := amazonmocks.NewMockAmazonIntegrator(ctrl)
	shopifyService := shopifymocks.NewMockShopifyIntegrator(ctrl)
	mappingLoader := sheetsmocks.NewMockMappingLoader(ctrl)
	publisher := sheetsmocks.NewMockPublisher(ctrl)

	cfg := &config.Config{}
	cfg.ReportSync.CronSchedule = "0 6 * * 1"
	cfg.ReportSync.LookbackDays = 30
	cfg.Sheets.SkuMappingSheetID = "mapping-sheet"
	cfg.Sheets.SalesReportSheetID = "report-sheet"

	started := make(chan struct{})
	release := make(chan struct{})

	// O mapeamento segura a primeira execução até o segundo disparo ser
	// avaliado
	mappingLoader.EXPECT().
		LoadMapping(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string) (*domain.SkuMapping, error) {
			close(started)
			<-release
			return domain.FallbackSkuMapping(), nil
		})
	amazonService.EXPECT().GetOrderRows(gomock.Any()).Return(nil, nil)
	shopifyService.EXPECT().GetOrdersByShop(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)

	orchestrator := pipeline.NewOrchestrator(cfg, amazonService, shopifyService, mappingLoader, publisher)
	services := PipelineServices{
		ReportSyncService: scheduler.NewReportSyncService(orchestrator, cfg),
		Orchestrator:      orchestrator,
	}

	first := httptest.NewRecorder()
	RunPipeline(services).ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/v1/pipeline/run", nil))
	assert.Equal(t, http.StatusAccepted, first.Code)

	<-started

	second := httptest.NewRecorder()
	RunPipeline(services).ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/v1/pipeline/run", nil))

	assert.Equal(t, http.StatusConflict, second.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrRunInProgress, apiErr.Code)

	close(release)

	// A primeira execução segue até o fim antes de liberar os mocks
	require.Eventually(t, func() bool {
		last := orchestrator.LastRun()
		return last != nil && last.Stage == pipeline.StageDone
	}, 5*time.Second, 10*time.Millisecond)
}

func TestGetPipelineStatus(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/pipeline/status", nil)

	GetPipelineStatus(syncServices()).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var status map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &status))

	schedulerStatus, ok := status["scheduler"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "0 6 * * 1", schedulerStatus["sync_cron"])
}

func TestHealthcheckHandler(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)

	HealthcheckHandler().ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}
