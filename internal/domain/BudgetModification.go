package domain

import (
	"fmt"
	"strings"
	"time"
)

// BudgetTargetKind distingue o nível do alvo de uma alteração de orçamento
type BudgetTargetKind string

const (
	TargetKindAdSet    BudgetTargetKind = "adset"
	TargetKindCampaign BudgetTargetKind = "campaign"
)

// legacyCampaignPrefix é o marcador usado nas linhas antigas da tabela de
// auditoria para distinguir campanhas de conjuntos de anúncios. O domínio
// usa o par (Kind, ID); a tradução acontece apenas na borda de persistência.
const legacyCampaignPrefix = "campaign_"

// BudgetTarget identifica o alvo de uma alteração de orçamento
type BudgetTarget struct {
	Kind BudgetTargetKind `json:"kind"`
	ID   string           `json:"id"`
}

// StorageID serializa o alvo no formato legado da tabela de auditoria
func (t BudgetTarget) StorageID() string {
	if t.Kind == TargetKindCampaign {
		return legacyCampaignPrefix + t.ID
	}
	return t.ID
}

// ParseTargetStorageID reconstrói o alvo a partir do formato legado
func ParseTargetStorageID(storageID string) BudgetTarget {
	if id, ok := strings.CutPrefix(storageID, legacyCampaignPrefix); ok {
		return BudgetTarget{Kind: TargetKindCampaign, ID: id}
	}
	return BudgetTarget{Kind: TargetKindAdSet, ID: storageID}
}

// ParseTargetKind valida o kind recebido pela API
func ParseTargetKind(kind string) (BudgetTargetKind, error) {
	switch BudgetTargetKind(kind) {
	case TargetKindAdSet, TargetKindCampaign:
		return BudgetTargetKind(kind), nil
	}
	return "", fmt.Errorf("tipo de alvo inválido: %s", kind)
}

// BudgetModification é uma entrada imutável do log de auditoria de orçamento.
// Criada exatamente uma vez por alteração aceita; nunca alterada ou removida.
type BudgetModification struct {
	ID             string          `json:"id"`
	Target         BudgetTarget    `json:"target"`
	PreviousBudget float64         `json:"previous_budget"`
	NewBudget      float64         `json:"new_budget"`
	Reason         string          `json:"reason"`
	Actor          string          `json:"actor"`
	ModifiedAt     time.Time       `json:"modified_at"`
	Snapshot       MetricsSnapshot `json:"snapshot"`
}
