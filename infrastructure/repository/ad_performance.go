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
	adPerformanceTable = "ad_performance_records apr"
)

type AdPerformanceRepository interface {
	ListByLinkAndDate(linkID string, date time.Time) ([]*domain.AdPerformanceRecord, error)
	// Insert grava o registro apenas se a chave (link_id, ad_id, date) ainda
	// não existir; retorna se a linha foi de fato inserida
	Insert(record *domain.AdPerformanceRecord) (bool, error)
	Upsert(record *domain.AdPerformanceRecord) error
}

type adPerformanceRepository struct {
	conn *postgres.Connection
}

func NewAdPerformanceRepository(conn *postgres.Connection) AdPerformanceRepository {
	return &adPerformanceRepository{
		conn: conn,
	}
}

func (r *adPerformanceRepository) ListByLinkAndDate(linkID string, date time.Time) ([]*domain.AdPerformanceRecord, error) {
	query, args, err := squirrel.
		Select(`apr.id, apr.link_id, apr.ad_id, apr.date, apr.ad_name, apr.adset_id, apr.adset_name,
			apr.campaign_id, apr.campaign_name, apr.spend, apr.impressions, apr.clicks, apr.cpc, apr.cpm, apr.ctr`).
		From(adPerformanceTable).
		Where(squirrel.Eq{"apr.link_id": linkID, "apr.date": date.Format("2006-01-02")}).
		OrderBy("apr.spend DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
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

	records := make([]*domain.AdPerformanceRecord, 0)
	for rows.Next() {
		record := &domain.AdPerformanceRecord{}
		var dateStr string

		err := rows.Scan(
			&record.ID,
			&record.LinkID,
			&record.AdID,
			&dateStr,
			&record.AdName,
			&record.AdSetID,
			&record.AdSetName,
			&record.CampaignID,
			&record.CampaignName,
			&record.Spend,
			&record.Impressions,
			&record.Clicks,
			&record.CPC,
			&record.CPM,
			&record.CTR,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de performance: %w", err)
		}

		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, fmt.Errorf("erro ao converter data: %w", err)
		}
		record.Date = parsed

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *adPerformanceRepository) Insert(record *domain.AdPerformanceRecord) (bool, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert("ad_performance_records").
		Columns(
			"link_id", "ad_id", "date", "ad_name", "adset_id", "adset_name",
			"campaign_id", "campaign_name", "spend", "impressions", "clicks", "cpc", "cpm", "ctr",
		).
		Values(
			record.LinkID,
			record.AdID,
			record.Date.Format("2006-01-02"),
			record.AdName,
			record.AdSetID,
			record.AdSetName,
			record.CampaignID,
			record.CampaignName,
			record.Spend,
			record.Impressions,
			record.Clicks,
			record.CPC,
			record.CPM,
			record.CTR,
		).
		Suffix("ON CONFLICT (link_id, ad_id, date) DO NOTHING").
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

func (r *adPerformanceRepository) Upsert(record *domain.AdPerformanceRecord) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("ad_performance_records").
		Columns(
			"link_id", "ad_id", "date", "ad_name", "adset_id", "adset_name",
			"campaign_id", "campaign_name", "spend", "impressions", "clicks", "cpc", "cpm", "ctr",
		).
		Values(
			record.LinkID,
			record.AdID,
			record.Date.Format("2006-01-02"),
			record.AdName,
			record.AdSetID,
			record.AdSetName,
			record.CampaignID,
			record.CampaignName,
			record.Spend,
			record.Impressions,
			record.Clicks,
			record.CPC,
			record.CPM,
			record.CTR,
		).
		Suffix(`
			ON CONFLICT (link_id, ad_id, date) DO UPDATE SET
				ad_name = EXCLUDED.ad_name,
				adset_id = EXCLUDED.adset_id,
				adset_name = EXCLUDED.adset_name,
				campaign_id = EXCLUDED.campaign_id,
				campaign_name = EXCLUDED.campaign_name,
				spend = EXCLUDED.spend,
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				cpc = EXCLUDED.cpc,
				cpm = EXCLUDED.cpm,
				ctr = EXCLUDED.ctr
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
