package models

import "github.com/shopspring/decimal"

// TransactionType enumerates the kinds of financial transactions the
// backend posts against accounts.
type TransactionType string

const (
	TransactionPurchase   TransactionType = "purchase"
	TransactionSale       TransactionType = "sale"
	TransactionTransfer   TransactionType = "transfer"
	TransactionAdjustment TransactionType = "adjustment"
)

// FinancialTransaction is one entry of the store's ledger. Posting and
// balance updates happen server-side; the client only records intent.
type FinancialTransaction struct {
	ID                int64           `json:"id"`
	TransactionNumber string          `json:"transaction_number"`
	TransactionType   TransactionType `json:"transaction_type"`
	Amount            decimal.Decimal `json:"amount"`
	FromAccount       *Account        `json:"from_account,omitempty"`
	ToAccount         *Account        `json:"to_account,omitempty"`
	StockEntry        int64           `json:"stock_entry,omitempty"`
	StockExit         int64           `json:"stock_exit,omitempty"`
	Description       string          `json:"description,omitempty"`
	CreatedAt         string          `json:"created_at"`
}

func (t FinancialTransaction) EntityID() int64 { return t.ID }

// TransactionFilter narrows ledger listings.
type TransactionFilter struct {
	StartDate       string
	EndDate         string
	TransactionType TransactionType
	Account         int64
}
