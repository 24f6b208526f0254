package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/pipeline"
	"github.com/vfg2006/sales-report-api/internal/scheduler"
	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
	"github.com/vfg2006/sales-report-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PipelineServices contém os serviços necessários para operar o pipeline via API
type PipelineServices struct {
	ReportSyncService *scheduler.ReportSyncService
	Orchestrator      *pipeline.Orchestrator
}

// RunPipeline dispara manualmente uma execução do pipeline de relatórios
func RunPipeline(services PipelineServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunPipeline")

		if services.ReportSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de relatórios não disponível", nil)
			return
		}

		// Janela explícita opcional (start e end em YYYY-MM-DD)
		startParam := r.URL.Query().Get("start")
		endParam := r.URL.Query().Get("end")
		if startParam != "" || endParam != "" {
			start, err := utils.ParseDate(startParam)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro 'start' deve estar no formato YYYY-MM-DD", nil)
				return
			}
			end, err := utils.ParseDate(endParam)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro 'end' deve estar no formato YYYY-MM-DD", nil)
				return
			}
			if startParam == "" || endParam == "" || end.Before(*start) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetros 'start' e 'end' devem formar uma janela válida", nil)
				return
			}

			if err := services.ReportSyncService.TriggerManualSyncWindow(domain.NewDateRange(*start, *end)); err != nil {
				respondRunInProgress(w)
				return
			}
			respondAccepted(w)
			return
		}

		// Janela retroativa opcional, em dias
		var triggerErr error
		if daysParam := r.URL.Query().Get("days"); daysParam != "" {
			days, err := strconv.Atoi(daysParam)
			if err != nil || days <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro 'days' deve ser um inteiro positivo", nil)
				return
			}
			triggerErr = services.ReportSyncService.TriggerManualSyncWithLookback(days)
		} else {
			triggerErr = services.ReportSyncService.TriggerManualSync()
		}
		if triggerErr != nil {
			respondRunInProgress(w)
			return
		}

		respondAccepted(w)
	}
}

func respondRunInProgress(w http.ResponseWriter) {
	apiErrors.WriteError(w, apiErrors.ErrRunInProgress, "Execução do pipeline já em andamento", nil)
}

func respondAccepted(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"message": "Execução do pipeline de relatórios iniciada",
	}); err != nil {
		logrus.WithError(err).Error("Erro ao serializar resposta de execução do pipeline")
	}
}

// GetPipelineStatus retorna o status do agendador e o resumo da última execução
func GetPipelineStatus(services PipelineServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetPipelineStatus")

		status := map[string]any{}
		if services.ReportSyncService != nil {
			status["scheduler"] = services.ReportSyncService.GetStatus()
		}
		if services.Orchestrator != nil {
			status["last_run"] = services.Orchestrator.LastRun()
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.WithError(err).Error("Erro ao serializar status do pipeline")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar status do pipeline", nil)
		}
	}
}
