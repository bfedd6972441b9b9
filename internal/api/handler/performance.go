package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/budget-optimizer-api/internal/usecases/reconciling"
	"github.com/vfg2006/budget-optimizer-api/pkg/apiErrors"
	"github.com/vfg2006/budget-optimizer-api/pkg/log"
	"github.com/vfg2006/budget-optimizer-api/pkg/utils"
)

// ListPerformance retorna a performance por anúncio de um vínculo de produto
// em uma data. Sem data, retorna a data corrente.
func ListPerformance(service reconciling.Reconciler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		linkID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if linkID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador do vínculo não especificado", nil)
			return
		}

		date, err := utils.ParseDate(r.URL.Query().Get("date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro date inválido. Formato esperado: AAAA-MM-DD", nil)
			return
		}
		if date.IsZero() {
			now := time.Now()
			date = &now
		}

		records, err := service.ListPerformance(linkID, *date)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar performance de anúncios", nil)
			return
		}

		logger.WithFields(log.Fields{
			"link_id": linkID,
			"date":    date.Format(time.DateOnly),
			"records": len(records),
		}).Info("Performance de anúncios consultada")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"performance": records,
		})
	}
}
