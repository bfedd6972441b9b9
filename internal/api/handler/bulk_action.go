package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-optimizer-api/internal/domain"
	"github.com/vfg2006/budget-optimizer-api/internal/usecases/ruling"
	"github.com/vfg2006/budget-optimizer-api/pkg/apiErrors"
	"github.com/vfg2006/budget-optimizer-api/pkg/middleware"
)

type BulkActionRequest struct {
	Entities []*domain.BudgetEntity `json:"entities"`
	Rule     domain.CompoundRule    `json:"rule"`
	Reason   string                 `json:"reason"`
}

// ExecuteBulkAction aplica uma regra de orçamento sobre um conjunto de entidades
func ExecuteBulkAction(service ruling.Ruler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req BulkActionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if len(req.Entities) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nenhuma entidade informada", nil)
			return
		}

		if err := req.Rule.Validate(); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		result, err := service.ExecuteBulk(r.Context(), req.Entities, &req.Rule, userClaims.UserEmail, req.Reason)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao executar ação de orçamento em massa", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}
