// Package ledger implements ERC20-style token accounting on top of a
// balances repository. A Ledger carries no state of its own: it is bound to
// the repository of the current unit of work, and atomicity comes from that
// unit.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/stakemarket/internal/common"
	"github.com/dmitrijs2005/stakemarket/internal/server/models"
	"github.com/dmitrijs2005/stakemarket/internal/server/repositories/balances"
)

type Ledger struct {
	repo balances.Repository
}

func New(repo balances.Repository) *Ledger {
	return &Ledger{repo: repo}
}

func checkAmount(amount models.Amount) error {
	if amount < 0 {
		return common.ErrInvalidAmount
	}
	return nil
}

// Transfer moves amount from one account to another.
func (l *Ledger) Transfer(ctx context.Context, from, to string, amount models.Amount) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	if err := l.repo.Debit(ctx, from, amount); err != nil {
		if errors.Is(err, common.ErrInsufficientBalance) {
			return err
		}
		return fmt.Errorf("debit %s: %w", from, err)
	}
	if err := l.repo.Credit(ctx, to, amount); err != nil {
		return fmt.Errorf("credit %s: %w", to, err)
	}
	return nil
}

// Approve overwrites the allowance of spender over owner's balance.
func (l *Ledger) Approve(ctx context.Context, owner, spender string, amount models.Amount) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	if err := l.repo.SetAllowance(ctx, owner, spender, amount); err != nil {
		return fmt.Errorf("set allowance: %w", err)
	}
	return nil
}

// TransferFrom moves amount out of owner's balance on behalf of spender and
// consumes the same amount of allowance.
func (l *Ledger) TransferFrom(ctx context.Context, spender, owner, to string, amount models.Amount) error {
	if err := checkAmount(amount); err != nil {
		return err
	}

	allowance, err := l.repo.Allowance(ctx, owner, spender)
	if err != nil {
		return fmt.Errorf("get allowance: %w", err)
	}
	if allowance < amount {
		return common.ErrInsufficientAllowance
	}

	if err := l.Transfer(ctx, owner, to, amount); err != nil {
		return err
	}

	if err := l.repo.SetAllowance(ctx, owner, spender, allowance-amount); err != nil {
		return fmt.Errorf("set allowance: %w", err)
	}
	return nil
}

// Mint creates new supply. It is only reachable from genesis.
func (l *Ledger) Mint(ctx context.Context, to string, amount models.Amount) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	if err := l.repo.Credit(ctx, to, amount); err != nil {
		return fmt.Errorf("credit %s: %w", to, err)
	}
	return nil
}

func (l *Ledger) BalanceOf(ctx context.Context, account string) (models.Amount, error) {
	return l.repo.Balance(ctx, account)
}

func (l *Ledger) Allowance(ctx context.Context, owner, spender string) (models.Amount, error) {
	return l.repo.Allowance(ctx, owner, spender)
}

func (l *Ledger) TotalSupply(ctx context.Context) (models.Amount, error) {
	return l.repo.TotalSupply(ctx)
}
