package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/budget-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/budget-optimizer-api/internal/domain"
)

const (
	spendRecordsTable = "spend_records sr"
)

type SpendRecordRepository interface {
	GetByProductAndDate(productID string, date time.Time) (*domain.SpendRecord, error)
	ExistsByProductAndDate(productID string, date time.Time) (bool, error)
	// Insert grava o registro apenas se a chave (product_id, date) ainda não
	// existir; retorna se a linha foi de fato inserida
	Insert(record *domain.SpendRecord) (bool, error)
	Upsert(record *domain.SpendRecord) error
}

type spendRecordRepository struct {
	conn *postgres.Connection
}

func NewSpendRecordRepository(conn *postgres.Connection) SpendRecordRepository {
	return &spendRecordRepository{
		conn: conn,
	}
}

func (r *spendRecordRepository) GetByProductAndDate(productID string, date time.Time) (*domain.SpendRecord, error) {
	query, args, err := squirrel.
		Select("sr.id, sr.product_id, sr.date, sr.amount, sr.currency, sr.captured_at").
		From(spendRecordsTable).
		Where(squirrel.Eq{"sr.product_id": productID, "sr.date": date.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	record := &domain.SpendRecord{}
	var dateStr string

	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&record.ID,
		&record.ProductID,
		&dateStr,
		&record.Amount,
		&record.Currency,
		&record.CapturedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear registro de gasto: %w", err)
	}

	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, fmt.Errorf("erro ao converter data: %w", err)
	}
	record.Date = parsed

	return record, nil
}

func (r *spendRecordRepository) ExistsByProductAndDate(productID string, date time.Time) (bool, error) {
	query, args, err := squirrel.
		Select("1").
		From(spendRecordsTable).
		Where(squirrel.Eq{"sr.product_id": productID, "sr.date": date.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var one int
	err = r.conn.QueryRow(query, args...).Scan(&one)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("erro ao verificar existência de registro de gasto: %w", err)
	}

	return true, nil
}

func (r *spendRecordRepository) Insert(record *domain.SpendRecord) (bool, error) {
	// ON CONFLICT DO NOTHING fecha a corrida do verifica-então-insere:
	// a restrição de unicidade decide, não o processo
	query, args, err := squirrel.StatementBuilder.
		Insert("spend_records").
		Columns("product_id", "date", "amount", "currency", "captured_at").
		Values(
			record.ProductID,
			record.Date.Format("2006-01-02"),
			record.Amount,
			record.Currency,
			record.CapturedAt,
		).
		Suffix("ON CONFLICT (product_id, date) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return false, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return inserted > 0, nil
}

func (r *spendRecordRepository) Upsert(record *domain.SpendRecord) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("spend_records").
		Columns("product_id", "date", "amount", "currency", "captured_at").
		Values(
			record.ProductID,
			record.Date.Format("2006-01-02"),
			record.Amount,
			record.Currency,
			record.CapturedAt,
		).
		Suffix(`
			ON CONFLICT (product_id, date) DO UPDATE SET
				amount = EXCLUDED.amount,
				currency = EXCLUDED.currency,
				captured_at = EXCLUDED.captured_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
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
