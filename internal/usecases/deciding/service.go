package deciding

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/budget-optimizer-api/internal/config"
	"github.com/vfg2006/budget-optimizer-api/internal/domain"
)

// EvaluateInput carrega as métricas correntes de um alvo para avaliação
type EvaluateInput struct {
	Target        domain.BudgetTarget `json:"target"`
	Budget        float64             `json:"budget"`
	ROAS          float64             `json:"roas"`
	ParentManaged bool                `json:"parent_managed"`
}

// Decider produz a recomendação automática de orçamento para um alvo.
// Reavaliada a cada leitura; nunca persistida.
type Decider interface {
	Evaluate(input EvaluateInput) domain.DecisionStatus
}

type Service struct {
	modificationRepo repository.BudgetModificationRepository
	cfg              *config.Config

	// relógio injetável para os testes da janela de carência
	now func() time.Time
}

func NewService(modificationRepo repository.BudgetModificationRepository, cfg *config.Config) *Service {
	return &Service{
		modificationRepo: modificationRepo,
		cfg:              cfg,
		now:              time.Now,
	}
}

// WithClock substitui a fonte de tempo do serviço. Usado em testes.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Evaluate classifica o alvo em keep, warning ou decision-needed.
// Alvo com orçamento gerenciado pela campanha pai retorna keep: o próprio
// número de orçamento do conjunto não é significativo nesse modo.
func (s *Service) Evaluate(input EvaluateInput) domain.DecisionStatus {
	if input.ParentManaged {
		return domain.DecisionKeep
	}

	if input.Budget == 0 {
		return domain.DecisionKeep
	}

	if s.withinGracePeriod(input.Target) {
		return domain.DecisionKeep
	}

	return classify(input.Budget, input.ROAS)
}

// withinGracePeriod verifica se houve modificação de orçamento recente para o
// alvo. A janela de carência evita oscilação logo após uma alteração humana
// ou automática.
func (s *Service) withinGracePeriod(target domain.BudgetTarget) bool {
	latest, err := s.modificationRepo.GetLatestByTarget(target)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"target_kind": target.Kind,
			"target_id":   target.ID,
			"error":       err.Error(),
		}).Error("Erro ao consultar última modificação de orçamento. Avaliando sem carência.")
		return false
	}

	if latest == nil {
		return false
	}

	// a borda é inclusiva: uma modificação exatamente no limite ainda suprime
	gracePeriod := time.Duration(s.cfg.Decision.GracePeriodMinutes) * time.Minute
	return !latest.ModifiedAt.Before(s.now().Add(-gracePeriod))
}

// classify é a tabela de política (faixa de orçamento × faixa de ROAS).
// Tabela de negócio reproduzida como está, incluindo a assimetria da faixa
// acima de 20: não derivar de fórmula nem "corrigir" sem decisão de produto.
func classify(budget, roas float64) domain.DecisionStatus {
	switch {
	case budget <= 4:
		switch {
		case roas >= 1.2:
			return domain.DecisionKeep
		case roas >= 1.0:
			return domain.DecisionWarning
		case roas < 1.0:
			return domain.DecisionNeeded
		}
	case budget <= 10:
		switch {
		case roas >= 1.3:
			return domain.DecisionKeep
		case roas >= 1.0:
			return domain.DecisionWarning
		case roas < 1.0:
			return domain.DecisionNeeded
		}
	case budget <= 20:
		switch {
		case roas >= 1.6:
			return domain.DecisionKeep
		case roas >= 1.2:
			return domain.DecisionWarning
		case roas < 1.2:
			return domain.DecisionNeeded
		}
	default:
		switch {
		case roas >= 1.8:
			return domain.DecisionKeep
		case roas >= 1.6:
			return domain.DecisionWarning
		case roas < 1.6:
			return domain.DecisionNeeded
		}
	}

	// combinação não coberta explicitamente pela tabela
	return domain.DecisionWarning
}
