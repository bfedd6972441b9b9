package deciding

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/budget-optimizer-api/infrastructure/repository/mocks"
	"github.com/vfg2006/budget-optimizer-api/internal/config"
	"github.com/vfg2006/budget-optimizer-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newDecisionService(ctrl *gomock.Controller, now time.Time) (*Service, *mocks.MockBudgetModificationRepository) {
	repo := mocks.NewMockBudgetModificationRepository(ctrl)
	cfg := &config.Config{
		Decision: config.Decision{GracePeriodMinutes: 60},
	}

	service := NewService(repo, cfg).WithClock(func() time.Time { return now })
	return service, repo
}

func adsetTarget(id string) domain.BudgetTarget {
	return domain.BudgetTarget{Kind: domain.TargetKindAdSet, ID: id}
}

func TestEvaluate_TabelaDePolitica(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		budget   float64
		roas     float64
		expected domain.DecisionStatus
	}{
		{"Orçamento baixo com ROAS bom mantém", 4, 1.2, domain.DecisionKeep},
		{"Orçamento baixo com ROAS no limite emite alerta", 4, 1.0, domain.DecisionWarning},
		{"Orçamento baixo com ROAS abaixo de 1 exige decisão", 4, 0.99, domain.DecisionNeeded},
		{"Orçamento médio com ROAS bom mantém", 10, 1.3, domain.DecisionKeep},
		{"Orçamento médio com ROAS mediano emite alerta", 10, 1.1, domain.DecisionWarning},
		{"Orçamento médio com ROAS ruim exige decisão", 10, 0.5, domain.DecisionNeeded},
		{"Orçamento alto com ROAS bom mantém", 20, 1.6, domain.DecisionKeep},
		{"Orçamento alto com ROAS mediano emite alerta", 20, 1.3, domain.DecisionWarning},
		{"Orçamento alto com ROAS ruim exige decisão", 20, 1.1, domain.DecisionNeeded},
		{"Orçamento muito alto com ROAS bom mantém", 25, 1.8, domain.DecisionKeep},
		{"Orçamento muito alto com ROAS mediano emite alerta", 25, 1.7, domain.DecisionWarning},
		{"Orçamento muito alto com ROAS ruim exige decisão", 25, 1.5, domain.DecisionNeeded},
		{"Fronteira entre faixas usa a faixa de cima", 20.01, 1.7, domain.DecisionWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newDecisionService(ctrl, now)
			repo.EXPECT().GetLatestByTarget(gomock.Any()).Return(nil, nil)

			status := service.Evaluate(EvaluateInput{
				Target: adsetTarget("adset-1"),
				Budget: tt.budget,
				ROAS:   tt.roas,
			})

			assert.Equal(t, tt.expected, status)
		})
	}
}

func TestEvaluate_OrcamentoGerenciadoPelaCampanhaPaiSempreMantem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newDecisionService(ctrl, time.Now())

	// nenhuma consulta ao repositório deve acontecer nesse modo
	status := service.Evaluate(EvaluateInput{
		Target:        adsetTarget("adset-1"),
		Budget:        3,
		ROAS:          0.1,
		ParentManaged: true,
	})

	assert.Equal(t, domain.DecisionKeep, status)
}

func TestEvaluate_OrcamentoZeroMantem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newDecisionService(ctrl, time.Now())

	status := service.Evaluate(EvaluateInput{
		Target: adsetTarget("adset-1"),
		Budget: 0,
		ROAS:   0.1,
	})

	assert.Equal(t, domain.DecisionKeep, status)
}

func TestEvaluate_JanelaDeCarencia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		modifiedAt time.Time
		expected   domain.DecisionStatus
	}{
		{
			name:       "Modificação há 30 minutos suprime a recomendação",
			modifiedAt: now.Add(-30 * time.Minute),
			expected:   domain.DecisionKeep,
		},
		{
			name:       "Modificação exatamente no limite da janela ainda suprime",
			modifiedAt: now.Add(-60 * time.Minute),
			expected:   domain.DecisionKeep,
		},
		{
			name:       "Modificação há 90 minutos libera a tabela",
			modifiedAt: now.Add(-90 * time.Minute),
			expected:   domain.DecisionNeeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newDecisionService(ctrl, now)
			repo.EXPECT().GetLatestByTarget(gomock.Any()).Return(&domain.BudgetModification{
				ID:         "abc123",
				Target:     adsetTarget("adset-1"),
				ModifiedAt: tt.modifiedAt,
			}, nil)

			status := service.Evaluate(EvaluateInput{
				Target: adsetTarget("adset-1"),
				Budget: 4,
				ROAS:   0.5,
			})

			assert.Equal(t, tt.expected, status)
		})
	}
}

func TestEvaluate_ErroNaConsultaDeCarenciaAvaliaSemCarencia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	service, repo := newDecisionService(ctrl, now)

	repo.EXPECT().GetLatestByTarget(gomock.Any()).Return(nil, errors.New("conexão recusada"))

	status := service.Evaluate(EvaluateInput{
		Target: adsetTarget("adset-1"),
		Budget: 4,
		ROAS:   0.5,
	})

	assert.Equal(t, domain.DecisionNeeded, status)
}

func TestClassify_SempreRetornaUmStatusConhecido(t *testing.T) {
	budgets := []float64{0.5, 4, 4.01, 10, 10.01, 20, 20.01, 100}
	roasValues := []float64{0, 0.99, 1.0, 1.19, 1.2, 1.29, 1.3, 1.59, 1.6, 1.79, 1.8, 5}

	known := map[domain.DecisionStatus]bool{
		domain.DecisionKeep:    true,
		domain.DecisionWarning: true,
		domain.DecisionNeeded:  true,
	}

	for _, budget := range budgets {
		for _, roas := range roasValues {
			status := classify(budget, roas)
			assert.Truef(t, known[status], "classify(%v, %v) retornou status desconhecido %q", budget, roas, status)
		}
	}
}
