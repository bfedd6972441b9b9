package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/budget-optimizer-api/internal/domain"
	"github.com/vfg2006/budget-optimizer-api/internal/usecases/auditing"
	"github.com/vfg2006/budget-optimizer-api/pkg/apiErrors"
	"github.com/vfg2006/budget-optimizer-api/pkg/log"
)

const defaultModificationsLimit = 50

// ListModifications retorna a trilha de auditoria de orçamento de um alvo,
// da modificação mais recente para a mais antiga
func ListModifications(service auditing.Auditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		params := httprouter.ParamsFromContext(r.Context())

		kind, err := domain.ParseTargetKind(params.ByName("kind"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		id := params.ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador do alvo não especificado", nil)
			return
		}

		limit := uint64(defaultModificationsLimit)
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		entries, err := service.ListByTarget(domain.BudgetTarget{Kind: kind, ID: id}, limit)
		if err != nil {
			logger.WithFields(log.Fields{
				"target_kind": kind,
				"target_id":   id,
				"error":       err.Error(),
			}).Error("Erro ao consultar modificações de orçamento")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar modificações de orçamento", nil)
			return
		}

		logger.WithFields(log.Fields{
			"target_kind": kind,
			"target_id":   id,
			"entries":     len(entries),
		}).Info("Modificações de orçamento consultadas")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"modifications": entries,
		})
	}
}
