package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/pipeline"
)

// ErrSyncInProgress indica que já existe uma sincronização em andamento
var ErrSyncInProgress = errors.New("sincronização de relatórios de vendas já em andamento")

// ReportSyncConfig representa a configuração do agendador de relatórios de vendas
type ReportSyncConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
}

// ReportSyncService gerencia o agendamento e execução da sincronização dos relatórios de vendas
type ReportSyncService struct {
	scheduler    *gocron.Scheduler
	config       ReportSyncConfig
	orchestrator *pipeline.Orchestrator

	// syncMutex protege o estado abaixo, escrito pela goroutine de
	// sincronização e lido pela API de status
	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

// NewReportSyncService cria uma nova instância do serviço de sincronização de relatórios de vendas
func NewReportSyncService(
	orchestrator *pipeline.Orchestrator,
	appConfig *config.Config,
) *ReportSyncService {
	// Criar a configuração com base na config global
	syncConfig := ReportSyncConfig{
		CronSchedule: appConfig.ReportSync.CronSchedule,
		LookbackDays: appConfig.ReportSync.LookbackDays,
		SyncEnabled:  appConfig.ReportSync.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de relatórios de vendas carregada")

	return &ReportSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		orchestrator: orchestrator,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *ReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de relatórios de vendas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de relatórios de vendas")

	// Agendar a execução do pipeline
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncSalesReports(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de relatórios de vendas: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de relatórios de vendas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncSalesReports executa o pipeline completo para a janela retroativa configurada
func (s *ReportSyncService) syncSalesReports(ctx context.Context) {
	s.runWindow(ctx, s.lookbackWindow(time.Now().UTC()))
}

// runWindow executa o pipeline para uma janela específica, garantindo uma
// única execução por vez
func (s *ReportSyncService) runWindow(ctx context.Context, window domain.DateRange) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de relatórios de vendas já em andamento, ignorando")
		return
	}
	startTime := time.Now()
	s.syncRunning = true
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.WithFields(logrus.Fields{
		"start_date": window.Start.Format(time.DateOnly),
		"end_date":   window.End.Format(time.DateOnly),
	}).Info("Período para sincronização de relatórios de vendas")

	summary, err := s.orchestrator.Run(ctx, window)
	if err != nil {
		s.syncMutex.Lock()
		s.lastSyncError = err.Error()
		s.syncMutex.Unlock()
		logrus.WithError(err).Error("Erro na sincronização de relatórios de vendas")
		return
	}

	s.syncMutex.Lock()
	s.lastSyncError = ""
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"run_id":   summary.RunID,
		"duration": duration.String(),
	}).Info("Sincronização de relatórios de vendas concluída")
}

// lookbackWindow monta a janela retroativa terminando no dia corrente
func (s *ReportSyncService) lookbackWindow(now time.Time) domain.DateRange {
	start := now.AddDate(0, 0, -(s.config.LookbackDays - 1))
	return domain.NewDateRange(start, now)
}

// TriggerManualSync inicia manualmente uma sincronização de relatórios de vendas
func (s *ReportSyncService) TriggerManualSync() error {
	if err := s.rejectIfRunning(); err != nil {
		return err
	}

	logrus.Info("Iniciando sincronização manual de relatórios de vendas")
	go s.syncSalesReports(context.Background())

	return nil
}

// TriggerManualSyncWindow inicia manualmente uma sincronização para uma
// janela de datas explícita
func (s *ReportSyncService) TriggerManualSyncWindow(window domain.DateRange) error {
	if err := s.rejectIfRunning(); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"start_date": window.Start.Format(time.DateOnly),
		"end_date":   window.End.Format(time.DateOnly),
	}).Info("Iniciando sincronização manual de relatórios de vendas")
	go s.runWindow(context.Background(), window)

	return nil
}

// TriggerManualSyncWithLookback inicia manualmente uma sincronização com uma
// janela retroativa diferente da configurada
func (s *ReportSyncService) TriggerManualSyncWithLookback(days int) error {
	if err := s.rejectIfRunning(); err != nil {
		return err
	}

	logrus.WithField("lookback_days", days).Info("Iniciando sincronização manual de relatórios de vendas")
	go func() {
		now := time.Now().UTC()
		window := domain.NewDateRange(now.AddDate(0, 0, -(days-1)), now)
		s.runWindow(context.Background(), window)
	}()

	return nil
}

// rejectIfRunning recusa um disparo manual quando já há sincronização em
// andamento
func (s *ReportSyncService) rejectIfRunning() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Info("Sincronização de relatórios de vendas já em andamento, ignorando solicitação manual")
		return ErrSyncInProgress
	}

	return nil
}

// GetStatus retorna o status atual do agendador
func (s *ReportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
