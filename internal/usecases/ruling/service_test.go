package ruling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	platformmocks "github.com/vfg2006/budget-optimizer-api/infrastructure/integrator/platform/mocks"
	"github.com/vfg2006/budget-optimizer-api/infrastructure/repository/mocks"
	"github.com/vfg2006/budget-optimizer-api/internal/domain"
	"github.com/vfg2006/budget-optimizer-api/internal/usecases/auditing"
	"go.uber.org/mock/gomock"
)

func increaseROASRule(percent float64) *domain.CompoundRule {
	return &domain.CompoundRule{
		Conditions: []domain.Condition{
			{Metric: domain.MetricROAS, Operator: domain.OperatorGreaterEqual, Value: 1.5},
		},
		Operator: domain.LogicalAnd,
		Action: domain.BudgetAction{
			Type:      domain.ActionPercentage,
			Direction: domain.DirectionIncrease,
			Value:     percent,
		},
	}
}

func namedEntity(id, name string, budget, roas float64) *domain.BudgetEntity {
	return &domain.BudgetEntity{
		Target: domain.BudgetTarget{Kind: domain.TargetKindAdSet, ID: id},
		Name:   name,
		Budget: budget,
		ROAS:   roas,
	}
}

func TestExecuteBulk_FalhaPorEntidadeEhIsolada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	platformService := platformmocks.NewMockPlatformIntegrator(ctrl)
	modificationRepo := mocks.NewMockBudgetModificationRepository(ctrl)
	auditor := auditing.NewService(modificationRepo)

	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	service := NewService(platformService, auditor).WithClock(func() time.Time { return now })

	entityA := namedEntity("adset-a", "Conjunto A", 50, 2.0)
	entityB := namedEntity("adset-b", "Conjunto B", 80, 2.0)

	platformService.EXPECT().
		UpdateBudget(gomock.Any(), entityA.Target, 60.0).
		Return(nil)
	platformService.EXPECT().
		UpdateBudget(gomock.Any(), entityB.Target, 96.0).
		Return(errors.New("limite de requisições excedido"))

	// só a alteração aplicada com sucesso vai para o lote de auditoria
	modificationRepo.EXPECT().InsertBatch(gomock.Any()).DoAndReturn(func(entries []*domain.BudgetModification) error {
		require.Len(t, entries, 1)
		entry := entries[0]
		assert.Equal(t, entityA.Target, entry.Target)
		assert.Equal(t, 50.0, entry.PreviousBudget)
		assert.Equal(t, 60.0, entry.NewBudget)
		assert.Equal(t, "regra de ROAS", entry.Reason)
		assert.Equal(t, "analista@empresa.com", entry.Actor)
		assert.Equal(t, now, entry.ModifiedAt)
		assert.Equal(t, 2.0, entry.Snapshot.ROAS)
		return nil
	})

	result, err := service.ExecuteBulk(
		context.Background(),
		[]*domain.BudgetEntity{entityA, entityB},
		increaseROASRule(20),
		"analista@empresa.com",
		"regra de ROAS",
	)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Success)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Modified, 1)
	assert.Equal(t, "Conjunto A", result.Modified[0].Name)
	assert.Equal(t, 50.0, result.Modified[0].OldBudget)
	assert.Equal(t, 60.0, result.Modified[0].NewBudget)
}

func TestExecuteBulk_EntidadesSemAlteracaoSaoPuladas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	platformService := platformmocks.NewMockPlatformIntegrator(ctrl)
	modificationRepo := mocks.NewMockBudgetModificationRepository(ctrl)
	auditor := auditing.NewService(modificationRepo)

	service := NewService(platformService, auditor)

	// ROAS abaixo da condição: a regra não casa e nada é chamado na plataforma
	entity := namedEntity("adset-a", "Conjunto A", 50, 1.0)

	result, err := service.ExecuteBulk(
		context.Background(),
		[]*domain.BudgetEntity{entity},
		increaseROASRule(20),
		"analista@empresa.com",
		"regra de ROAS",
	)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Success)
	assert.Equal(t, 0, result.Failed)
	assert.Empty(t, result.Modified)
}

func TestExecuteBulk_RegraInvalidaEhRejeitadaAntesDeExecutar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	platformService := platformmocks.NewMockPlatformIntegrator(ctrl)
	modificationRepo := mocks.NewMockBudgetModificationRepository(ctrl)
	auditor := auditing.NewService(modificationRepo)

	service := NewService(platformService, auditor)

	rule := &domain.CompoundRule{
		Operator: "XOR",
		Action:   domain.BudgetAction{Type: domain.ActionFixed, Value: 10},
	}

	result, err := service.ExecuteBulk(
		context.Background(),
		[]*domain.BudgetEntity{namedEntity("adset-a", "Conjunto A", 50, 2.0)},
		rule,
		"analista@empresa.com",
		"regra inválida",
	)

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestExecuteBulk_FalhaNoLoteDeAuditoriaNaoInvalidaAAcao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	platformService := platformmocks.NewMockPlatformIntegrator(ctrl)
	modificationRepo := mocks.NewMockBudgetModificationRepository(ctrl)
	auditor := auditing.NewService(modificationRepo)

	service := NewService(platformService, auditor)

	entity := namedEntity("adset-a", "Conjunto A", 50, 2.0)

	platformService.EXPECT().UpdateBudget(gomock.Any(), entity.Target, 60.0).Return(nil)
	modificationRepo.EXPECT().InsertBatch(gomock.Any()).Return(errors.New("tabela indisponível"))

	result, err := service.ExecuteBulk(
		context.Background(),
		[]*domain.BudgetEntity{entity},
		increaseROASRule(20),
		"analista@empresa.com",
		"regra de ROAS",
	)

	// a alteração já assentou na plataforma; a perda da trilha não falha a ação
	require.NoError(t, err)
	assert.Equal(t, 1, result.Success)
	assert.Equal(t, 0, result.Failed)
}
