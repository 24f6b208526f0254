package main

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-api/infrastructure/integrator/amazon"
	"github.com/vfg2006/sales-report-api/infrastructure/integrator/amazon/amazonclient"
	"github.com/vfg2006/sales-report-api/infrastructure/integrator/shopify"
	"github.com/vfg2006/sales-report-api/infrastructure/integrator/shopify/shopifyclient"
	"github.com/vfg2006/sales-report-api/infrastructure/sheets"
	"github.com/vfg2006/sales-report-api/internal/api"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/pipeline"
	"github.com/vfg2006/sales-report-api/internal/scheduler"
)

// Janela retroativa padrão da execução avulsa, em dias
const defaultLookbackDays = 30

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sheetsService, err := sheets.NewService(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar cliente do Google Sheets")
	}

	mappingLoader := sheets.NewMappingLoader(sheetsService)
	publisher := sheets.NewPublisher(sheetsService)

	// Em sandbox os canais de venda são substituídos por geradores de
	// pedidos determinísticos
	var amazonClient amazonclient.Client
	var shopifyClient shopifyclient.Client
	if cfg.App.Sandbox {
		logrus.Warn("Executando em modo sandbox: pedidos gerados localmente")
		seed := time.Now().UnixNano()
		amazonClient = amazonclient.NewSandboxClient(seed)
		shopifyClient = shopifyclient.NewSandboxClient(cfg, seed)
	} else {
		amazonClient = amazonclient.NewClient(cfg)
		shopifyClient = shopifyclient.NewClient(cfg)
	}

	amazonService := amazon.New(cfg, amazonClient)
	shopifyService := shopify.New(cfg, shopifyClient)

	orchestrator := pipeline.NewOrchestrator(
		cfg,
		amazonService,
		shopifyService,
		mappingLoader,
		publisher,
	)

	// Com o agendador habilitado o processo fica residente, expondo a API
	// de operação; caso contrário executa uma única vez e encerra
	if cfg.ReportSync.Enabled {
		runServer(ctx, cfg, orchestrator)
		return
	}

	runOnce(ctx, orchestrator)
}

// runOnce executa o pipeline para a janela retroativa padrão e encerra o
// processo com código de saída diferente de zero em caso de falha
func runOnce(ctx context.Context, orchestrator *pipeline.Orchestrator) {
	now := time.Now().UTC()
	window := domain.NewDateRange(now.AddDate(0, 0, -(defaultLookbackDays-1)), now)

	summary, err := orchestrator.Run(ctx, window)
	if err != nil {
		logrus.WithError(err).Error("Execução do pipeline de relatórios falhou")
		os.Exit(1)
	}

	logrus.WithFields(logrus.Fields{
		"run_id":         summary.RunID,
		"published_tabs": summary.Published,
	}).Info("Execução do pipeline de relatórios concluída com sucesso")
}

// runServer inicia o agendador e a API de operação
func runServer(ctx context.Context, cfg *config.Config, orchestrator *pipeline.Orchestrator) {
	reportSyncService := scheduler.NewReportSyncService(orchestrator, cfg)

	if err := reportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de relatórios de vendas")
	} else {
		logrus.Info("Agendador de sincronização de relatórios de vendas iniciado com sucesso")
	}

	server, err := api.New(cfg, orchestrator, reportSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
