package ruling

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-optimizer-api/infrastructure/integrator/platform"
	"github.com/vfg2006/budget-optimizer-api/internal/domain"
	"github.com/vfg2006/budget-optimizer-api/internal/usecases/auditing"
)

// Ruler executa ações de orçamento em massa guiadas por uma regra composta.
// As ações simples de ROAS/percentual/fixo expostas aos usuários são regras
// com exatamente uma condição, no mesmo caminho de código.
type Ruler interface {
	ExecuteBulk(ctx context.Context, entities []*domain.BudgetEntity, rule *domain.CompoundRule, actor, reason string) (*domain.BulkActionResult, error)
}

type Service struct {
	platformService platform.PlatformIntegrator
	auditor         auditing.Auditor

	now func() time.Time
}

func NewService(platformService platform.PlatformIntegrator, auditor auditing.Auditor) *Service {
	return &Service{
		platformService: platformService,
		auditor:         auditor,
		now:             time.Now,
	}
}

// WithClock substitui a fonte de tempo do serviço. Usado em testes.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

type pendingChange struct {
	entity    *domain.BudgetEntity
	newBudget float64
}

// ExecuteBulk calcula o novo orçamento de cada entidade, aplica as alterações
// na plataforma de forma concorrente e, depois que todas as chamadas assentam,
// grava o lote de auditoria das que tiveram sucesso. Falhas por entidade são
// isoladas; a falha do lote de auditoria é registrada e nunca invalida as
// alterações já aplicadas na plataforma.
func (s *Service) ExecuteBulk(
	ctx context.Context,
	entities []*domain.BudgetEntity,
	rule *domain.CompoundRule,
	actor, reason string,
) (*domain.BulkActionResult, error) {
	if err := rule.Validate(); err != nil {
		return nil, err
	}

	changes := make([]pendingChange, 0, len(entities))
	for _, entity := range entities {
		newBudget := Apply(entity, rule)
		if newBudget == entity.Budget {
			continue
		}
		changes = append(changes, pendingChange{entity: entity, newBudget: newBudget})
	}

	result := &domain.BulkActionResult{Modified: make([]domain.ModifiedEntity, 0, len(changes))}
	if len(changes) == 0 {
		logrus.WithField("entities", len(entities)).Info("Nenhuma entidade alterada pela regra de orçamento")
		return result, nil
	}

	applied := make([]pendingChange, 0, len(changes))
	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, change := range changes {
		wg.Add(1)

		go func(ch pendingChange) {
			defer wg.Done()

			err := s.platformService.UpdateBudget(ctx, ch.entity.Target, ch.newBudget)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				logrus.WithFields(logrus.Fields{
					"target_kind": ch.entity.Target.Kind,
					"target_id":   ch.entity.Target.ID,
					"entity_name": ch.entity.Name,
					"error":       err.Error(),
				}).Error("Erro ao aplicar alteração de orçamento na plataforma")
				result.Failed++
				return
			}

			result.Success++
			result.Modified = append(result.Modified, domain.ModifiedEntity{
				Name:      ch.entity.Name,
				OldBudget: ch.entity.Budget,
				NewBudget: ch.newBudget,
			})
			applied = append(applied, ch)
		}(change)
	}

	wg.Wait()

	s.appendAuditEntries(applied, actor, reason)

	logrus.WithFields(logrus.Fields{
		"entities": len(entities),
		"changed":  len(changes),
		"success":  result.Success,
		"failed":   result.Failed,
	}).Info("Execução de ação de orçamento em massa concluída")

	return result, nil
}

// appendAuditEntries grava o lote de auditoria das alterações aplicadas, com o
// snapshot de métricas imediatamente anterior a cada alteração
func (s *Service) appendAuditEntries(applied []pendingChange, actor, reason string) {
	if len(applied) == 0 {
		return
	}

	entries := make([]*domain.BudgetModification, 0, len(applied))
	modifiedAt := s.now()

	for _, change := range applied {
		entry, err := auditing.NewEntry(change.entity, change.newBudget, reason, actor, modifiedAt)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"target_id": change.entity.Target.ID,
				"error":     err.Error(),
			}).Error("Erro ao montar entrada de auditoria de orçamento")
			continue
		}
		entries = append(entries, entry)
	}

	if err := s.auditor.AppendBatch(entries); err != nil {
		// as alterações já foram aplicadas na plataforma; o log registra a
		// perda da trilha, sem reverter nem falhar a ação
		logrus.WithFields(logrus.Fields{
			"entries": len(entries),
			"error":   err.Error(),
		}).Error("Erro ao gravar lote de auditoria de orçamento")
	}
}
