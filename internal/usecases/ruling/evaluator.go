package ruling

import (
	"github.com/vfg2006/budget-optimizer-api/internal/domain"
	"github.com/vfg2006/budget-optimizer-api/pkg/utils"
)

// minimumBudget é o piso de orçamento em unidades da moeda. Um orçamento
// calculado ou fixo nunca chega a zero ou negativo.
const minimumBudget = 1.0

// Matches decide se o conjunto de condições da regra vale para a entidade.
// Uma métrica indefinida para a entidade torna aquela condição falsa
// (budget e roas estão sempre definidos). Regra sem condições nunca casa.
func Matches(entity *domain.BudgetEntity, rule *domain.CompoundRule) bool {
	if len(rule.Conditions) == 0 {
		return false
	}

	switch rule.Operator {
	case domain.LogicalAnd:
		for _, condition := range rule.Conditions {
			if !conditionHolds(entity, condition) {
				return false
			}
		}
		return true
	case domain.LogicalOr:
		for _, condition := range rule.Conditions {
			if conditionHolds(entity, condition) {
				return true
			}
		}
		return false
	}

	return false
}

// Apply calcula o novo orçamento da entidade. Se a regra não casa, retorna o
// orçamento corrente inalterado. O resultado é sempre limitado ao piso mínimo.
func Apply(entity *domain.BudgetEntity, rule *domain.CompoundRule) float64 {
	if !Matches(entity, rule) {
		return entity.Budget
	}

	newBudget := entity.Budget

	switch rule.Action.Type {
	case domain.ActionPercentage:
		factor := rule.Action.Value / 100
		if rule.Action.Direction == domain.DirectionDecrease {
			newBudget = entity.Budget * (1 - factor)
		} else {
			newBudget = entity.Budget * (1 + factor)
		}
	case domain.ActionFixed:
		newBudget = rule.Action.Value
	}

	newBudget = utils.RoundWithTwoDecimalPlace(newBudget)

	if newBudget < minimumBudget {
		newBudget = minimumBudget
	}

	return newBudget
}

func conditionHolds(entity *domain.BudgetEntity, condition domain.Condition) bool {
	value, defined := metricValue(entity, condition.Metric)
	if !defined {
		return false
	}

	switch condition.Operator {
	case domain.OperatorGreaterThan:
		return value > condition.Value
	case domain.OperatorLessThan:
		return value < condition.Value
	case domain.OperatorEqual:
		return value == condition.Value
	case domain.OperatorGreaterEqual:
		return value >= condition.Value
	case domain.OperatorLessEqual:
		return value <= condition.Value
	case domain.OperatorBetween:
		if condition.Value2 == nil {
			return false
		}
		return *condition.Value2 >= value && value >= condition.Value
	}

	return false
}

// metricValue resolve o valor corrente da métrica para a entidade.
// ROI é derivado: profit / budget × 100.
func metricValue(entity *domain.BudgetEntity, metric domain.MetricType) (float64, bool) {
	switch metric {
	case domain.MetricBudget:
		return entity.Budget, true
	case domain.MetricROAS:
		return entity.ROAS, true
	case domain.MetricSpend:
		if entity.Spend != nil {
			return *entity.Spend, true
		}
	case domain.MetricProfit:
		if entity.Profit != nil {
			return *entity.Profit, true
		}
	case domain.MetricSales:
		if entity.Sales != nil {
			return *entity.Sales, true
		}
	case domain.MetricROI:
		if entity.Profit != nil && entity.Budget != 0 {
			return *entity.Profit / entity.Budget * 100, true
		}
	}

	return 0, false
}
