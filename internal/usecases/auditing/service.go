package auditing

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/budget-optimizer-api/internal/domain"
	"github.com/vfg2006/budget-optimizer-api/pkg/utils"
)

// Auditor grava o log imutável de modificações de orçamento. Uma entrada por
// alteração aceita, com o snapshot de métricas do momento da alteração; nunca
// alterada ou removida pelo serviço.
type Auditor interface {
	Append(entry *domain.BudgetModification) error
	AppendBatch(entries []*domain.BudgetModification) error
	ListByTarget(target domain.BudgetTarget, limit uint64) ([]*domain.BudgetModification, error)
}

type Service struct {
	modificationRepo repository.BudgetModificationRepository
}

func NewService(modificationRepo repository.BudgetModificationRepository) Auditor {
	return &Service{
		modificationRepo: modificationRepo,
	}
}

// NewEntry monta uma entrada de auditoria a partir da entidade alterada,
// capturando o snapshot de métricas imediatamente anterior à alteração
func NewEntry(entity *domain.BudgetEntity, newBudget float64, reason, actor string, at time.Time) (*domain.BudgetModification, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id da entrada de auditoria: %w", err)
	}

	return &domain.BudgetModification{
		ID:             id,
		Target:         entity.Target,
		PreviousBudget: entity.Budget,
		NewBudget:      newBudget,
		Reason:         reason,
		Actor:          actor,
		ModifiedAt:     at,
		Snapshot:       entity.Snapshot(),
	}, nil
}

func (s *Service) Append(entry *domain.BudgetModification) error {
	if err := s.modificationRepo.Insert(entry); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"entry_id":    entry.ID,
		"target_kind": entry.Target.Kind,
		"target_id":   entry.Target.ID,
		"new_budget":  entry.NewBudget,
	}).Info("Entrada de auditoria de orçamento registrada")

	return nil
}

// AppendBatch grava todas as entradas em um único statement
func (s *Service) AppendBatch(entries []*domain.BudgetModification) error {
	if len(entries) == 0 {
		return nil
	}

	if err := s.modificationRepo.InsertBatch(entries); err != nil {
		return err
	}

	logrus.WithField("entries", len(entries)).Info("Lote de entradas de auditoria de orçamento registrado")
	return nil
}

func (s *Service) ListByTarget(target domain.BudgetTarget, limit uint64) ([]*domain.BudgetModification, error) {
	return s.modificationRepo.ListByTarget(target, limit)
}
