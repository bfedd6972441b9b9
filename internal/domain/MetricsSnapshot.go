package domain

// MetricsSnapshot é o conjunto imutável de métricas capturado no momento
// de uma alteração de orçamento. É derivado e efêmero: só persiste embutido
// nas entradas de auditoria.
type MetricsSnapshot struct {
	Budget float64 `json:"budget"`
	Spend  float64 `json:"spend"`
	ROAS   float64 `json:"roas"`
	Sales  float64 `json:"sales"`
	Profit float64 `json:"profit"`
}
