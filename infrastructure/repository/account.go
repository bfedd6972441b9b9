package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/budget-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/budget-optimizer-api/internal/domain"
)

const (
	adAccountsTable   = "ad_accounts aa"
	productLinksTable = "product_ad_accounts pa"
)

type AccountRepository interface {
	ListAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccount, error)
	GetAccountByID(id string) (*domain.AdAccount, error)
	ListProductLinksByAccountID(accountID string) ([]*domain.ProductAccountLink, error)
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (r *accountRepository) ListAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccount, error) {
	builder := squirrel.
		Select("aa.id, aa.external_id, aa.name, aa.nickname, aa.status, aa.owner_user_id, aa.currency").
		From(adAccountsTable).
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		builder = builder.Where(squirrel.Eq{"aa.status": availableStatus})
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

	accounts := make([]*domain.AdAccount, 0)
	for rows.Next() {
		account := &domain.AdAccount{}
		err := rows.Scan(
			&account.ID,
			&account.ExternalID,
			&account.Name,
			&account.Nickname,
			&account.Status,
			&account.OwnerUserID,
			&account.Currency,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear conta: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}

func (r *accountRepository) GetAccountByID(id string) (*domain.AdAccount, error) {
	query, args, err := squirrel.
		Select("aa.id, aa.external_id, aa.name, aa.nickname, aa.status, aa.owner_user_id, aa.currency").
		From(adAccountsTable).
		Where(squirrel.Eq{"aa.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	account := &domain.AdAccount{}
	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&account.ID,
		&account.ExternalID,
		&account.Name,
		&account.Nickname,
		&account.Status,
		&account.OwnerUserID,
		&account.Currency,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear conta: %w", err)
	}

	return account, nil
}

func (r *accountRepository) ListProductLinksByAccountID(accountID string) ([]*domain.ProductAccountLink, error) {
	query, args, err := squirrel.
		Select("pa.id, pa.product_id, pa.account_id").
		From(productLinksTable).
		Where(squirrel.Eq{"pa.account_id": accountID}).
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

	links := make([]*domain.ProductAccountLink, 0)
	for rows.Next() {
		link := &domain.ProductAccountLink{}
		if err := rows.Scan(&link.ID, &link.ProductID, &link.AccountID); err != nil {
			return nil, fmt.Errorf("erro ao escanear vínculo de produto: %w", err)
		}
		links = append(links, link)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return links, nil
}
