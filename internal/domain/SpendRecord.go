package domain

import "time"

// SpendRecord representa o gasto agregado de um produto em uma data.
// Invariante: no máximo um registro por (product_id, date).
type SpendRecord struct {
	ID         int64     `json:"id"`
	ProductID  string    `json:"product_id"`
	Date       time.Time `json:"date"`
	Amount     float64   `json:"amount"`
	Currency   string    `json:"currency"`
	CapturedAt time.Time `json:"captured_at"`
}

// AccountSpend é o gasto agregado de uma conta reportado pela plataforma
// externa, antes da atribuição a produtos
type AccountSpend struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// SyncResult agrega os contadores de uma execução de sincronização
type SyncResult struct {
	Processed int `json:"processed"`
	Synced    int `json:"synced"`
	Skipped   int `json:"skipped"`
	Errors    int `json:"errors"`
}

// Add soma os contadores de outro resultado (usado na agregação entre contas)
func (r *SyncResult) Add(other SyncResult) {
	r.Processed += other.Processed
	r.Synced += other.Synced
	r.Skipped += other.Skipped
	r.Errors += other.Errors
}
