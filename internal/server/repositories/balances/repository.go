package balances

import (
	"context"

	"github.com/dmitrijs2005/stakemarket/internal/server/models"
)

// Repository stores account balances and spender allowances.
//
// Reads of unknown accounts or allowances yield zero rather than an error:
// every identity implicitly holds an empty account.
type Repository interface {
	Balance(ctx context.Context, account string) (models.Amount, error)
	Credit(ctx context.Context, account string, amount models.Amount) error
	// Debit returns common.ErrInsufficientBalance if the balance would go negative.
	Debit(ctx context.Context, account string, amount models.Amount) error
	Allowance(ctx context.Context, owner, spender string) (models.Amount, error)
	SetAllowance(ctx context.Context, owner, spender string, amount models.Amount) error
	TotalSupply(ctx context.Context) (models.Amount, error)
	Accounts(ctx context.Context) ([]models.Account, error)
}
