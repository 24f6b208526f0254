package pipeline

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/vfg2006/sales-report-api/infrastructure/integrator/amazon"
	"github.com/vfg2006/sales-report-api/infrastructure/integrator/shopify"
	"github.com/vfg2006/sales-report-api/infrastructure/sheets"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/usecases/comparing"
	"github.com/vfg2006/sales-report-api/internal/usecases/normalizing"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-report-api/pkg/log"
	"github.com/vfg2006/sales-report-api/pkg/utils"
)

// Stage identifica um estágio da execução. Os estágios são estritamente
// sequenciais; qualquer falha antes da publicação leva direto a StageFailed
// e nada é publicado.
type Stage string

const (
	StageLoadMapping      Stage = "LoadMapping"
	StageFetchMarketplace Stage = "FetchMarketplace"
	StageFetchStorefronts Stage = "FetchStorefronts"
	StageBuildReports     Stage = "BuildReports"
	StagePublish          Stage = "Publish"
	StageDone             Stage = "Done"
	StageFailed           Stage = "Failed"
)

// RunContext carrega os resultados intermediários de uma execução. Os canais
// são coletados explicitamente aqui e repassados aos estágios seguintes —
// nada de acúmulo em estado global entre chamadas.
type RunContext struct {
	RunID    string
	Range    domain.DateRange
	Mapping  *domain.SkuMapping
	Channels []domain.ChannelSales
}

// RunSummary resume a última execução para o status da API de operação.
type RunSummary struct {
	RunID       string         `json:"run_id"`
	Stage       Stage          `json:"stage"`
	StartedAt   time.Time      `json:"started_at"`
	CompletedAt time.Time      `json:"completed_at,omitempty"`
	Records     map[string]int `json:"records_per_channel,omitempty"`
	Published   []string       `json:"published_tabs,omitempty"`
	Error       string         `json:"error,omitempty"`
}

// Orchestrator sequencia os estágios do pipeline para uma janela de datas.
type Orchestrator struct {
	cfg            *config.Config
	amazonService  amazon.AmazonIntegrator
	shopifyService shopify.ShopifyIntegrator
	mappingLoader  sheets.MappingLoader
	publisher      sheets.Publisher

	mu      sync.Mutex
	running bool
	lastRun *RunSummary
}

func NewOrchestrator(
	cfg *config.Config,
	amazonService amazon.AmazonIntegrator,
	shopifyService shopify.ShopifyIntegrator,
	mappingLoader sheets.MappingLoader,
	publisher sheets.Publisher,
) *Orchestrator {
	return &Orchestrator{
		cfg:            cfg,
		amazonService:  amazonService,
		shopifyService: shopifyService,
		mappingLoader:  mappingLoader,
		publisher:      publisher,
	}
}

// Run executa o pipeline completo para a janela informada. Uma única
// execução por vez; execuções concorrentes são rejeitadas.
func (o *Orchestrator) Run(ctx context.Context, dateRange domain.DateRange) (*RunSummary, error) {
	o.mu.Lock()
	if o.running {
		o.mu.Unlock()
		return nil, ErrRunInProgress
	}
	o.running = true
	o.mu.Unlock()

	defer func() {
		o.mu.Lock()
		o.running = false
		o.mu.Unlock()
	}()

	runID, err := utils.GenerateID()
	if err != nil {
		runID = "run"
	}

	summary := &RunSummary{
		RunID:     runID,
		StartedAt: time.Now(),
		Records:   map[string]int{},
	}

	o.storeSnapshot(summary)

	logger := log.L.WithFields(log.Fields{
		"run_id":     runID,
		"start_date": dateRange.Start.Format(time.DateOnly),
		"end_date":   dateRange.End.Format(time.DateOnly),
	})
	logger.Info("Iniciando execução do pipeline")

	run := &RunContext{RunID: runID, Range: dateRange}

	fail := func(stage Stage, err error) (*RunSummary, error) {
		summary.Stage = StageFailed
		summary.CompletedAt = time.Now()
		summary.Error = err.Error()
		o.storeSnapshot(summary)
		logger.WithField("stage", string(stage)).WithError(err).Error("Execução do pipeline falhou")
		return summary, err
	}

	// Estágio 1: carregar o mapeamento de SKUs (degrada para a lista fixa)
	summary.Stage = StageLoadMapping
	o.storeSnapshot(summary)
	run.Mapping = o.loadMapping(ctx, logger)

	// Estágio 2: buscar pedidos do marketplace
	summary.Stage = StageFetchMarketplace
	o.storeSnapshot(summary)
	if err := o.fetchMarketplace(run, logger); err != nil {
		return fail(StageFetchMarketplace, err)
	}
	summary.Records[domain.ChannelAmazon] = len(run.Channels[0].Records)

	// Estágio 3: buscar pedidos das lojas
	summary.Stage = StageFetchStorefronts
	o.storeSnapshot(summary)
	if err := o.fetchStorefronts(run, logger); err != nil {
		return fail(StageFetchStorefronts, err)
	}
	for _, channel := range run.Channels[1:] {
		summary.Records[channel.Channel] = len(channel.Records)
	}

	// Estágio 4: montar os três relatórios
	summary.Stage = StageBuildReports
	o.storeSnapshot(summary)
	reports := o.buildReports(run)

	// Estágio 5: publicar. Cada publicação é best-effort; uma falha não
	// interrompe as demais, mas qualquer falha derruba o resultado geral.
	summary.Stage = StagePublish
	o.storeSnapshot(summary)
	var publishErr error
	for _, report := range reports {
		if err := o.publisher.Publish(ctx, report, o.cfg.Sheets.SalesReportSheetID); err != nil {
			logger.WithField("report_tab", report.TabName).WithError(err).Error("Erro ao publicar relatório")
			publishErr = NewPipelineError(ErrPublishFailed, StagePublish, report.TabName)
			continue
		}
		summary.Published = append(summary.Published, report.TabName)
	}
	if publishErr != nil {
		return fail(StagePublish, publishErr)
	}

	summary.Stage = StageDone
	summary.CompletedAt = time.Now()
	o.storeSnapshot(summary)
	logger.WithField("duration_ms", time.Since(summary.StartedAt).Milliseconds()).
		Info("Execução do pipeline concluída com sucesso")

	return summary, nil
}

// storeSnapshot publica uma cópia do resumo para leitura concorrente pela
// API de status. O resumo vivo só é mutado pela goroutine da execução; os
// leitores nunca enxergam o ponteiro em mutação.
func (o *Orchestrator) storeSnapshot(summary *RunSummary) {
	snapshot := *summary
	snapshot.Records = maps.Clone(summary.Records)
	snapshot.Published = slices.Clone(summary.Published)

	o.mu.Lock()
	o.lastRun = &snapshot
	o.mu.Unlock()
}

// LastRun devolve o resumo da última execução (ou nil). O resumo devolvido
// é uma cópia estável; não reflete o andamento após a chamada.
func (o *Orchestrator) LastRun() *RunSummary {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.lastRun
}

// loadMapping tenta carregar a tabela de mapeamento; indisponibilidade
// degrada para a lista fixa de produtos em vez de falhar a execução.
func (o *Orchestrator) loadMapping(ctx context.Context, logger log.Logger) *domain.SkuMapping {
	mapping, err := o.mappingLoader.LoadMapping(ctx, o.cfg.Sheets.SkuMappingSheetID)
	if err != nil {
		logger.WithError(err).Warn("Mapeamento de SKUs indisponível; usando a lista fixa de produtos")
		return domain.FallbackSkuMapping()
	}

	return mapping
}

func (o *Orchestrator) fetchMarketplace(run *RunContext, logger log.Logger) error {
	rows, err := o.amazonService.GetOrderRows(run.Range)
	if err != nil {
		return errors.Wrap(err, ErrFetchMarketplace.Error())
	}

	records := normalizing.ApplyMapping(normalizing.AmazonOrderRows(rows), run.Mapping)
	logger.WithField("channel", domain.ChannelAmazon).
		Infof("Pedidos do marketplace normalizados: %d registros", len(records))

	run.Channels = append(run.Channels, domain.ChannelSales{
		Channel: domain.ChannelAmazon,
		Records: records,
	})

	return nil
}

func (o *Orchestrator) fetchStorefronts(run *RunContext, logger log.Logger) error {
	for i, shop := range o.cfg.Shops {
		channelName := fmt.Sprintf("SHOPIFY%d", i+1)

		orders, err := o.shopifyService.GetOrdersByShop(shop, run.Range)
		if err != nil {
			return errors.Wrapf(err, "%s (%s)", ErrFetchStorefront.Error(), channelName)
		}

		records := normalizing.ApplyMapping(normalizing.ShopifyOrders(channelName, orders), run.Mapping)
		logger.WithField("channel", channelName).
			Infof("Pedidos da loja normalizados: %d registros", len(records))

		run.Channels = append(run.Channels, domain.ChannelSales{
			Channel: channelName,
			Records: records,
		})
	}

	return nil
}

// buildReports monta os três relatórios a partir do contexto da execução.
// A âncora semanal são os últimos 7 dias da janela solicitada.
func (o *Orchestrator) buildReports(run *RunContext) []*domain.Report {
	anchor := domain.NewDateRange(run.Range.End.AddDate(0, 0, -6), run.Range.End)
	periods := comparing.DerivePeriods(anchor)

	return []*domain.Report{
		reporting.BuildRateOfSale(run.Mapping, run.Channels, run.Range),
		reporting.BuildWeeklyTrend(run.Channels, periods),
		reporting.BuildDashboardSnapshot(run.Channels, time.Now()),
	}
}
