// Package balances provides PostgreSQL and in-memory repositories for
// account balances and allowances.
package balances

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/stakemarket/internal/common"
	"github.com/dmitrijs2005/stakemarket/internal/dbx"
	"github.com/dmitrijs2005/stakemarket/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Balance(ctx context.Context, account string) (models.Amount, error) {
	query := `SELECT balance FROM accounts WHERE id = $1`

	var balance models.Amount
	err := r.db.QueryRowContext(ctx, query, account).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return balance, nil
}

func (r *PostgresRepository) Credit(ctx context.Context, account string, amount models.Amount) error {
	query :=
		`INSERT INTO accounts (id, balance)
		 VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET balance = accounts.balance + EXCLUDED.balance
		 `

	if _, err := r.db.ExecContext(ctx, query, account, amount); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Debit only updates the row when the balance covers amount, so a concurrent
// writer slipping past the engine still cannot drive a balance negative.
func (r *PostgresRepository) Debit(ctx context.Context, account string, amount models.Amount) error {
	query :=
		`UPDATE accounts SET balance = balance - $2
		 WHERE id = $1 AND balance >= $2
		 `

	res, err := r.db.ExecContext(ctx, query, account, amount)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		if amount == 0 {
			return nil
		}
		return common.ErrInsufficientBalance
	}
	return nil
}

func (r *PostgresRepository) Allowance(ctx context.Context, owner, spender string) (models.Amount, error) {
	query := `SELECT amount FROM allowances WHERE owner = $1 AND spender = $2`

	var amount models.Amount
	err := r.db.QueryRowContext(ctx, query, owner, spender).Scan(&amount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return amount, nil
}

func (r *PostgresRepository) SetAllowance(ctx context.Context, owner, spender string, amount models.Amount) error {
	query :=
		`INSERT INTO allowances (owner, spender, amount)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (owner, spender) DO UPDATE SET amount = EXCLUDED.amount
		 `

	if _, err := r.db.ExecContext(ctx, query, owner, spender, amount); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) TotalSupply(ctx context.Context) (models.Amount, error) {
	query := `SELECT COALESCE(SUM(balance), 0) FROM accounts`

	var total models.Amount
	if err := r.db.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return total, nil
}

func (r *PostgresRepository) Accounts(ctx context.Context) ([]models.Account, error) {
	query := `SELECT id, balance FROM accounts ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Account
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.ID, &a.Balance); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
