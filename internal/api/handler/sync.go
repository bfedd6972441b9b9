package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-optimizer-api/internal/domain"
	"github.com/vfg2006/budget-optimizer-api/internal/scheduler"
	"github.com/vfg2006/budget-optimizer-api/pkg/apiErrors"
	"github.com/vfg2006/budget-optimizer-api/pkg/middleware"
	"github.com/vfg2006/budget-optimizer-api/pkg/utils"
)

// SyncJobType define o tipo de sincronização disparada manualmente
const (
	SyncJobTypeSpend = "spend"
	SyncJobTypeAll   = "all"
)

// CronJobServices contém os serviços de cron necessários para execução manual
type CronJobServices struct {
	SpendSyncService *scheduler.SpendSyncService
}

// RunSyncJob dispara manualmente uma sincronização
func RunSyncJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunSyncJob")

		// Apenas administradores podem disparar sincronizações
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar sincronizações", nil)
			return
		}

		syncType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if syncType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de sincronização não especificado", nil)
			return
		}

		// data opcional para refazer dias antigos; vazio sincroniza a data corrente
		targetDate, err := utils.ParseDate(r.URL.Query().Get("date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro date inválido. Formato esperado: AAAA-MM-DD", nil)
			return
		}

		switch syncType {
		case SyncJobTypeSpend, SyncJobTypeAll:
			if services.SpendSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de gastos não disponível", nil)
				return
			}
			services.SpendSyncService.TriggerManualSync(*targetDate)

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de sincronização inválido. Valores aceitos: spend, all", nil)
			return
		}

		response := map[string]any{
			"message": "Sincronização iniciada com sucesso",
			"type":    syncType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetSyncStatus retorna o status do agendador de sincronização
func GetSyncStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetSyncStatus")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar o status da sincronização", nil)
			return
		}

		status := map[string]any{
			"spend": services.SpendSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
