// Package models defines server-side data models persisted by the ledger
// storage backends.
package models

// Amount is a token quantity in base units. Ledger values are never negative.
type Amount = int64

// Account is a ledger identity together with its current balance.
type Account struct {
	ID      string
	Balance Amount
}

// Allowance is the amount Spender may still move out of Owner's balance.
type Allowance struct {
	Owner   string
	Spender string
	Amount  Amount
}
