package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/budget-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/budget-optimizer-api/internal/domain"
)

const (
	budgetModificationsTable = "budget_modifications bm"
)

type BudgetModificationRepository interface {
	Insert(entry *domain.BudgetModification) error
	// InsertBatch grava todas as entradas em um único statement
	InsertBatch(entries []*domain.BudgetModification) error
	GetLatestByTarget(target domain.BudgetTarget) (*domain.BudgetModification, error)
	ListByTarget(target domain.BudgetTarget, limit uint64) ([]*domain.BudgetModification, error)
}

type budgetModificationRepository struct {
	conn *postgres.Connection
}

func NewBudgetModificationRepository(conn *postgres.Connection) BudgetModificationRepository {
	return &budgetModificationRepository{
		conn: conn,
	}
}

func (r *budgetModificationRepository) Insert(entry *domain.BudgetModification) error {
	return r.InsertBatch([]*domain.BudgetModification{entry})
}

func (r *budgetModificationRepository) InsertBatch(entries []*domain.BudgetModification) error {
	if len(entries) == 0 {
		return nil
	}

	builder := squirrel.StatementBuilder.
		Insert("budget_modifications").
		Columns("id", "target_id", "previous_budget", "new_budget", "reason", "actor", "modified_at", "snapshot").
		PlaceholderFormat(squirrel.Dollar)

	for _, entry := range entries {
		snapshot, err := json.Marshal(entry.Snapshot)
		if err != nil {
			return fmt.Errorf("erro ao serializar o snapshot de métricas: %w", err)
		}

		builder = builder.Values(
			entry.ID,
			entry.Target.StorageID(),
			entry.PreviousBudget,
			entry.NewBudget,
			entry.Reason,
			entry.Actor,
			entry.ModifiedAt,
			snapshot,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *budgetModificationRepository) GetLatestByTarget(target domain.BudgetTarget) (*domain.BudgetModification, error) {
	entries, err := r.ListByTarget(target, 1)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, nil
	}

	return entries[0], nil
}

func (r *budgetModificationRepository) ListByTarget(target domain.BudgetTarget, limit uint64) ([]*domain.BudgetModification, error) {
	builder := squirrel.
		Select("bm.id, bm.target_id, bm.previous_budget, bm.new_budget, bm.reason, bm.actor, bm.modified_at, bm.snapshot").
		From(budgetModificationsTable).
		Where(squirrel.Eq{"bm.target_id": target.StorageID()}).
		OrderBy("bm.modified_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.BudgetModification, 0)
	for rows.Next() {
		entry := &domain.BudgetModification{}
		var storageID string
		var snapshot []byte

		err := rows.Scan(
			&entry.ID,
			&storageID,
			&entry.PreviousBudget,
			&entry.NewBudget,
			&entry.Reason,
			&entry.Actor,
			&entry.ModifiedAt,
			&snapshot,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear modificação de orçamento: %w", err)
		}

		entry.Target = domain.ParseTargetStorageID(storageID)

		if len(snapshot) > 0 {
			if err := json.Unmarshal(snapshot, &entry.Snapshot); err != nil {
				return nil, fmt.Errorf("erro ao desserializar o snapshot de métricas: %w", err)
			}
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}
