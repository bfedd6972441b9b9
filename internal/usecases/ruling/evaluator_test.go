package ruling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/budget-optimizer-api/internal/domain"
)

func floatPtr(v float64) *float64 {
	return &v
}

func entityWith(budget, roas float64) *domain.BudgetEntity {
	return &domain.BudgetEntity{
		Target: domain.BudgetTarget{Kind: domain.TargetKindAdSet, ID: "adset-1"},
		Name:   "Conjunto Teste",
		Budget: budget,
		ROAS:   roas,
	}
}

func TestMatches_OperadoresLogicos(t *testing.T) {
	// entidade satisfaz só a condição de ROAS, não a de orçamento
	entity := entityWith(5, 2.0)

	conditions := []domain.Condition{
		{Metric: domain.MetricROAS, Operator: domain.OperatorGreaterEqual, Value: 1.5},
		{Metric: domain.MetricBudget, Operator: domain.OperatorGreaterThan, Value: 10},
	}

	tests := []struct {
		name     string
		operator domain.LogicalOperator
		expected bool
	}{
		{"AND exige todas as condições", domain.LogicalAnd, false},
		{"OR aceita uma condição satisfeita", domain.LogicalOr, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := &domain.CompoundRule{Conditions: conditions, Operator: tt.operator}
			assert.Equal(t, tt.expected, Matches(entity, rule))
		})
	}
}

func TestMatches_RegraSemCondicoesNuncaCasa(t *testing.T) {
	rule := &domain.CompoundRule{
		Operator: domain.LogicalAnd,
		Action:   domain.BudgetAction{Type: domain.ActionFixed, Value: 10},
	}

	assert.False(t, Matches(entityWith(5, 2.0), rule))
}

func TestMatches_MetricaIndefinidaTornaACondicaoFalsa(t *testing.T) {
	entity := entityWith(5, 2.0) // sem spend, profit ou sales

	tests := []struct {
		name      string
		condition domain.Condition
		expected  bool
	}{
		{
			name:      "Spend ausente não casa nem com lte",
			condition: domain.Condition{Metric: domain.MetricSpend, Operator: domain.OperatorLessEqual, Value: 1000},
			expected:  false,
		},
		{
			name:      "ROI sem profit não casa",
			condition: domain.Condition{Metric: domain.MetricROI, Operator: domain.OperatorGreaterThan, Value: 0},
			expected:  false,
		},
		{
			name:      "Budget sempre definido casa normalmente",
			condition: domain.Condition{Metric: domain.MetricBudget, Operator: domain.OperatorEqual, Value: 5},
			expected:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := &domain.CompoundRule{
				Conditions: []domain.Condition{tt.condition},
				Operator:   domain.LogicalAnd,
			}
			assert.Equal(t, tt.expected, Matches(entity, rule))
		})
	}
}

func TestMatches_OperadorBetween(t *testing.T) {
	entity := entityWith(5, 1.5)

	tests := []struct {
		name     string
		value    float64
		value2   *float64
		expected bool
	}{
		{"ROAS dentro do intervalo", 1.0, floatPtr(2.0), true},
		{"ROAS no limite inferior", 1.5, floatPtr(2.0), true},
		{"ROAS no limite superior", 1.0, floatPtr(1.5), true},
		{"ROAS fora do intervalo", 1.6, floatPtr(2.0), false},
		{"Between sem value2 não casa", 1.0, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := &domain.CompoundRule{
				Conditions: []domain.Condition{
					{Metric: domain.MetricROAS, Operator: domain.OperatorBetween, Value: tt.value, Value2: tt.value2},
				},
				Operator: domain.LogicalAnd,
			}
			assert.Equal(t, tt.expected, Matches(entity, rule))
		})
	}
}

func TestMatches_ROIDerivadoDeProfitEBudget(t *testing.T) {
	entity := entityWith(10, 2.0)
	entity.Profit = floatPtr(5) // ROI = 5/10*100 = 50

	rule := &domain.CompoundRule{
		Conditions: []domain.Condition{
			{Metric: domain.MetricROI, Operator: domain.OperatorGreaterEqual, Value: 50},
		},
		Operator: domain.LogicalAnd,
	}

	assert.True(t, Matches(entity, rule))
}

func TestApply_AcoesPercentuaisEFixas(t *testing.T) {
	matchAll := []domain.Condition{
		{Metric: domain.MetricBudget, Operator: domain.OperatorGreaterThan, Value: 0},
	}

	tests := []struct {
		name     string
		budget   float64
		action   domain.BudgetAction
		expected float64
	}{
		{
			name:     "Aumento percentual de 20%",
			budget:   50,
			action:   domain.BudgetAction{Type: domain.ActionPercentage, Direction: domain.DirectionIncrease, Value: 20},
			expected: 60,
		},
		{
			name:     "Redução percentual de 50%",
			budget:   50,
			action:   domain.BudgetAction{Type: domain.ActionPercentage, Direction: domain.DirectionDecrease, Value: 50},
			expected: 25,
		},
		{
			name:     "Redução de 100% para no piso, não em zero",
			budget:   50,
			action:   domain.BudgetAction{Type: domain.ActionPercentage, Direction: domain.DirectionDecrease, Value: 100},
			expected: 1.0,
		},
		{
			name:     "Valor fixo substitui o orçamento",
			budget:   50,
			action:   domain.BudgetAction{Type: domain.ActionFixed, Value: 12.5},
			expected: 12.5,
		},
		{
			name:     "Valor fixo abaixo do piso é elevado ao piso",
			budget:   50,
			action:   domain.BudgetAction{Type: domain.ActionFixed, Value: 0.10},
			expected: 1.0,
		},
		{
			name:     "Resultado arredondado para duas casas",
			budget:   10.99,
			action:   domain.BudgetAction{Type: domain.ActionPercentage, Direction: domain.DirectionIncrease, Value: 33},
			expected: 14.62,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := &domain.CompoundRule{
				Conditions: matchAll,
				Operator:   domain.LogicalAnd,
				Action:     tt.action,
			}
			assert.Equal(t, tt.expected, Apply(entityWith(tt.budget, 2.0), rule))
		})
	}
}

func TestApply_RegraQueNaoCasaMantemOrcamento(t *testing.T) {
	rule := &domain.CompoundRule{
		Conditions: []domain.Condition{
			{Metric: domain.MetricROAS, Operator: domain.OperatorLessThan, Value: 1.0},
		},
		Operator: domain.LogicalAnd,
		Action:   domain.BudgetAction{Type: domain.ActionFixed, Value: 100},
	}

	entity := entityWith(50, 2.0)
	assert.Equal(t, 50.0, Apply(entity, rule))
}
