package domain

import "fmt"

// MetricType identifica a métrica usada em uma condição de regra
type MetricType string

const (
	MetricROAS   MetricType = "roas"
	MetricSpend  MetricType = "spend"
	MetricProfit MetricType = "profit"
	MetricBudget MetricType = "budget"
	MetricSales  MetricType = "sales"
	MetricROI    MetricType = "roi"
)

// ConditionOperator é o operador de comparação de uma condição
type ConditionOperator string

const (
	OperatorGreaterThan  ConditionOperator = "gt"
	OperatorLessThan     ConditionOperator = "lt"
	OperatorEqual        ConditionOperator = "eq"
	OperatorGreaterEqual ConditionOperator = "gte"
	OperatorLessEqual    ConditionOperator = "lte"
	OperatorBetween      ConditionOperator = "between"
)

// Condition é uma condição tipada avaliada contra as métricas de uma entidade.
// Value2 só é usado pelo operador between (satisfeito quando value2 >= métrica >= value).
type Condition struct {
	Metric   MetricType        `json:"metric"`
	Operator ConditionOperator `json:"operator"`
	Value    float64           `json:"value"`
	Value2   *float64          `json:"value2,omitempty"`
}

// LogicalOperator combina os resultados das condições de uma regra
type LogicalOperator string

const (
	LogicalAnd LogicalOperator = "AND"
	LogicalOr  LogicalOperator = "OR"
)

// ActionType define como o novo orçamento é calculado
type ActionType string

const (
	ActionPercentage ActionType = "percentage"
	ActionFixed      ActionType = "fixed"
)

// ActionDirection define o sentido de uma ação percentual
type ActionDirection string

const (
	DirectionIncrease ActionDirection = "increase"
	DirectionDecrease ActionDirection = "decrease"
)

// BudgetAction é a ação aplicada quando a regra é satisfeita
type BudgetAction struct {
	Type      ActionType      `json:"type"`
	Direction ActionDirection `json:"direction"`
	Value     float64         `json:"value"`
}

// CompoundRule é um conjunto ordenado de condições combinadas com AND/OR
// mais uma ação de orçamento. Uma regra sem condições nunca é satisfeita.
type CompoundRule struct {
	Conditions []Condition     `json:"conditions"`
	Operator   LogicalOperator `json:"operator"`
	Action     BudgetAction    `json:"action"`
}

// Validate rejeita regras malformadas na carga (campos desconhecidos são
// ignorados pela deserialização; valores desconhecidos são rejeitados aqui)
func (r *CompoundRule) Validate() error {
	switch r.Operator {
	case LogicalAnd, LogicalOr:
	default:
		return fmt.Errorf("operador lógico inválido: %s", r.Operator)
	}

	switch r.Action.Type {
	case ActionPercentage:
		switch r.Action.Direction {
		case DirectionIncrease, DirectionDecrease:
		default:
			return fmt.Errorf("direção de ação inválida: %s", r.Action.Direction)
		}
	case ActionFixed:
	default:
		return fmt.Errorf("tipo de ação inválido: %s", r.Action.Type)
	}

	for i, cond := range r.Conditions {
		switch cond.Metric {
		case MetricROAS, MetricSpend, MetricProfit, MetricBudget, MetricSales, MetricROI:
		default:
			return fmt.Errorf("condição %d: métrica inválida: %s", i, cond.Metric)
		}

		switch cond.Operator {
		case OperatorGreaterThan, OperatorLessThan, OperatorEqual,
			OperatorGreaterEqual, OperatorLessEqual:
		case OperatorBetween:
			if cond.Value2 == nil {
				return fmt.Errorf("condição %d: operador between exige value2", i)
			}
		default:
			return fmt.Errorf("condição %d: operador inválido: %s", i, cond.Operator)
		}
	}

	return nil
}

// BudgetEntity é uma entidade (conjunto de anúncios ou campanha) com as métricas
// correntes usadas na avaliação de regras. Budget e ROAS estão sempre definidos;
// as demais métricas podem estar ausentes para a entidade.
type BudgetEntity struct {
	Target BudgetTarget `json:"target"`
	Name   string       `json:"name"`
	Budget float64      `json:"budget"`
	ROAS   float64      `json:"roas"`
	Spend  *float64     `json:"spend,omitempty"`
	Profit *float64     `json:"profit,omitempty"`
	Sales  *float64     `json:"sales,omitempty"`
}

// Snapshot captura as métricas da entidade no formato do log de auditoria
func (e *BudgetEntity) Snapshot() MetricsSnapshot {
	snapshot := MetricsSnapshot{
		Budget: e.Budget,
		ROAS:   e.ROAS,
	}

	if e.Spend != nil {
		snapshot.Spend = *e.Spend
	}
	if e.Profit != nil {
		snapshot.Profit = *e.Profit
	}
	if e.Sales != nil {
		snapshot.Sales = *e.Sales
	}

	return snapshot
}

// ModifiedEntity descreve uma entidade efetivamente alterada por uma ação em massa
type ModifiedEntity struct {
	Name      string  `json:"name"`
	OldBudget float64 `json:"oldBudget"`
	NewBudget float64 `json:"newBudget"`
}

// BulkActionResult agrega o resultado de uma ação de orçamento em massa
type BulkActionResult struct {
	Success  int              `json:"success"`
	Failed   int              `json:"failed"`
	Modified []ModifiedEntity `json:"modified"`
}
