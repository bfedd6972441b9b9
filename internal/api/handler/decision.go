package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/budget-optimizer-api/internal/domain"
	"github.com/vfg2006/budget-optimizer-api/internal/usecases/deciding"
	"github.com/vfg2006/budget-optimizer-api/pkg/apiErrors"
)

type EvaluateDecisionRequest struct {
	Target        TargetRequest `json:"target"`
	Budget        float64       `json:"budget"`
	ROAS          float64       `json:"roas"`
	ParentManaged bool          `json:"parent_managed"`
}

type TargetRequest struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

type EvaluateDecisionResponse struct {
	Status domain.DecisionStatus `json:"status"`
}

// EvaluateDecision retorna a recomendação automática de orçamento para um alvo
func EvaluateDecision(service deciding.Decider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EvaluateDecisionRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		kind, err := domain.ParseTargetKind(req.Target.Kind)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		if req.Target.ID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador do alvo não especificado", nil)
			return
		}

		status := service.Evaluate(deciding.EvaluateInput{
			Target:        domain.BudgetTarget{Kind: kind, ID: req.Target.ID},
			Budget:        req.Budget,
			ROAS:          req.ROAS,
			ParentManaged: req.ParentManaged,
		})

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(EvaluateDecisionResponse{Status: status})
	}
}
