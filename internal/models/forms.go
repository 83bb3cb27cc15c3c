package models

import "github.com/shopspring/decimal"

// DefaultVATRate is the tax rate applied when deriving invoice totals
// client-side. The backend remains authoritative for persisted amounts.
var DefaultVATRate = decimal.NewFromFloat(0.18)

// ProductForm is the create/update payload for a product.
type ProductForm struct {
	Reference     string `json:"reference"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Unit          string `json:"unit"`
	MinStockAlert int64  `json:"min_stock_alert"`
}

// PartyForm is the shared create/update payload for customers and
// suppliers; both expose the same contact fields.
type PartyForm struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// WarehouseForm is the create/update payload for a warehouse.
type WarehouseForm struct {
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
	IsActive bool   `json:"is_active"`
}

// AccountForm is the create/update payload for a financial account.
type AccountForm struct {
	Name        string          `json:"name"`
	AccountType AccountType     `json:"account_type"`
	Balance     decimal.Decimal `json:"balance"`
	IsActive    bool            `json:"is_active"`
}

// StockEntryItemForm is one line of a goods-received note draft.
type StockEntryItemForm struct {
	Product       int64           `json:"product"`
	Quantity      int64           `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
}

// LineTotal derives quantity × purchase price.
func (f StockEntryItemForm) LineTotal() decimal.Decimal {
	return f.PurchasePrice.Mul(decimal.NewFromInt(f.Quantity))
}

// StockEntryForm is the create payload for a goods-received note.
type StockEntryForm struct {
	Supplier  int64                `json:"supplier"`
	Warehouse int64                `json:"warehouse"`
	Notes     string               `json:"notes,omitempty"`
	Items     []StockEntryItemForm `json:"items"`
}

// GrandTotal sums the line totals of the draft.
func (f StockEntryForm) GrandTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range f.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// StockExitItemForm is one line of a goods-issued note draft.
type StockExitItemForm struct {
	Product   int64           `json:"product"`
	Quantity  int64           `json:"quantity"`
	SalePrice decimal.Decimal `json:"sale_price"`
}

// LineTotal derives quantity × sale price.
func (f StockExitItemForm) LineTotal() decimal.Decimal {
	return f.SalePrice.Mul(decimal.NewFromInt(f.Quantity))
}

// StockExitForm is the create payload for a goods-issued note. Either a
// registered customer ID or a free-form customer name may be given.
type StockExitForm struct {
	Customer     int64               `json:"customer,omitempty"`
	CustomerName string              `json:"customer_name,omitempty"`
	Warehouse    int64               `json:"warehouse"`
	Notes        string              `json:"notes,omitempty"`
	Items        []StockExitItemForm `json:"items"`
}

// GrandTotal sums the line totals of the draft.
func (f StockExitForm) GrandTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range f.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// InvoiceForm is the create payload for an invoice built from a stock exit.
type InvoiceForm struct {
	StockExit    int64  `json:"stock_exit"`
	Customer     int64  `json:"customer,omitempty"`
	CustomerName string `json:"customer_name,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// TransactionForm is the create payload for a ledger entry.
type TransactionForm struct {
	TransactionType TransactionType `json:"transaction_type"`
	Amount          decimal.Decimal `json:"amount"`
	FromAccount     int64           `json:"from_account,omitempty"`
	ToAccount       int64           `json:"to_account,omitempty"`
	Description     string          `json:"description,omitempty"`
}

// InvoiceTotals derives subtotal, tax and total from a draft amount at
// the given VAT rate. Amounts are rounded to two decimal places.
func InvoiceTotals(subtotal, rate decimal.Decimal) (sub, tax, total decimal.Decimal) {
	sub = subtotal.Round(2)
	tax = subtotal.Mul(rate).Round(2)
	total = sub.Add(tax)
	return sub, tax, total
}
