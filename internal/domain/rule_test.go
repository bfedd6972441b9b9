package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompoundRule_Validate(t *testing.T) {
	two := 2.0

	tests := []struct {
		name    string
		rule    CompoundRule
		wantErr bool
	}{
		{
			name: "Regra percentual válida",
			rule: CompoundRule{
				Conditions: []Condition{{Metric: MetricROAS, Operator: OperatorGreaterEqual, Value: 1.5}},
				Operator:   LogicalAnd,
				Action:     BudgetAction{Type: ActionPercentage, Direction: DirectionIncrease, Value: 20},
			},
		},
		{
			name: "Regra fixa não exige direção",
			rule: CompoundRule{
				Conditions: []Condition{{Metric: MetricBudget, Operator: OperatorLessThan, Value: 10}},
				Operator:   LogicalOr,
				Action:     BudgetAction{Type: ActionFixed, Value: 15},
			},
		},
		{
			name: "Operador lógico desconhecido",
			rule: CompoundRule{
				Operator: "XOR",
				Action:   BudgetAction{Type: ActionFixed, Value: 15},
			},
			wantErr: true,
		},
		{
			name: "Ação percentual sem direção",
			rule: CompoundRule{
				Operator: LogicalAnd,
				Action:   BudgetAction{Type: ActionPercentage, Value: 20},
			},
			wantErr: true,
		},
		{
			name: "Métrica desconhecida",
			rule: CompoundRule{
				Conditions: []Condition{{Metric: "cpc", Operator: OperatorGreaterThan, Value: 1}},
				Operator:   LogicalAnd,
				Action:     BudgetAction{Type: ActionFixed, Value: 15},
			},
			wantErr: true,
		},
		{
			name: "Between sem value2",
			rule: CompoundRule{
				Conditions: []Condition{{Metric: MetricROAS, Operator: OperatorBetween, Value: 1}},
				Operator:   LogicalAnd,
				Action:     BudgetAction{Type: ActionFixed, Value: 15},
			},
			wantErr: true,
		},
		{
			name: "Between com value2 é válido",
			rule: CompoundRule{
				Conditions: []Condition{{Metric: MetricROAS, Operator: OperatorBetween, Value: 1, Value2: &two}},
				Operator:   LogicalAnd,
				Action:     BudgetAction{Type: ActionFixed, Value: 15},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBudgetEntity_Snapshot(t *testing.T) {
	spend := 120.5
	profit := 30.0

	entity := BudgetEntity{
		Target: BudgetTarget{Kind: TargetKindAdSet, ID: "adset-1"},
		Budget: 50,
		ROAS:   1.8,
		Spend:  &spend,
		Profit: &profit,
	}

	snapshot := entity.Snapshot()
	assert.Equal(t, 50.0, snapshot.Budget)
	assert.Equal(t, 1.8, snapshot.ROAS)
	assert.Equal(t, 120.5, snapshot.Spend)
	assert.Equal(t, 30.0, snapshot.Profit)
	assert.Equal(t, 0.0, snapshot.Sales)
}
