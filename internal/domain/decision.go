package domain

// DecisionStatus é o estado de recomendação de orçamento para uma entidade.
// O avaliador automático só produz keep, warning e decision-needed;
// increase e decrease são registrados apenas por ação explícita do usuário.
type DecisionStatus string

const (
	DecisionKeep     DecisionStatus = "keep"
	DecisionWarning  DecisionStatus = "warning"
	DecisionNeeded   DecisionStatus = "decision-needed"
	DecisionIncrease DecisionStatus = "increase"
	DecisionDecrease DecisionStatus = "decrease"
)
