package models

import "github.com/shopspring/decimal"

// AccountType distinguishes bank accounts from cash drawers.
type AccountType string

const (
	AccountBank AccountType = "bank"
	AccountCash AccountType = "cash"
)

// Account is a financial account whose balance is maintained by the
// backend's double-entry posting; the client never mutates Balance
// directly.
type Account struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"account_type"`
	Balance     decimal.Decimal `json:"balance"`
	Store       int64           `json:"store"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   string          `json:"created_at"`
}

func (a Account) EntityID() int64 { return a.ID }

// AccountTransaction is one ledger line of an account's history, as
// returned by GET accounts/{id}/transactions/.
type AccountTransaction struct {
	ID                int64           `json:"id"`
	TransactionNumber string          `json:"transaction_number"`
	TransactionType   TransactionType `json:"transaction_type"`
	Amount            decimal.Decimal `json:"amount"`
	Description       string          `json:"description,omitempty"`
	CreatedAt         string          `json:"created_at"`
}

func (t AccountTransaction) EntityID() int64 { return t.ID }
