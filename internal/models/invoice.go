package models

import "github.com/shopspring/decimal"

// InvoiceStatus tracks the payment lifecycle of an invoice.
type InvoiceStatus string

const (
	InvoicePending   InvoiceStatus = "pending"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// Invoice is a billing document generated from a stock exit. Numbering
// is assigned by the backend.
type Invoice struct {
	ID            int64           `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	StockExit     StockExit       `json:"stock_exit"`
	Customer      *Customer       `json:"customer,omitempty"`
	CustomerName  string          `json:"customer_name,omitempty"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        InvoiceStatus   `json:"status,omitempty"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
}

func (i Invoice) EntityID() int64 { return i.ID }

// InvoicePrintData is the render-ready payload returned by
// GET invoices/{id}/print_data/.
type InvoicePrintData struct {
	Invoice struct {
		InvoiceNumber string `json:"invoice_number"`
		Date          string `json:"date"`
		Time          string `json:"time"`
		TotalAmount   string `json:"total_amount"`
		Warehouse     string `json:"warehouse"`
		CreatedBy     string `json:"created_by"`
		Notes         string `json:"notes,omitempty"`
	} `json:"invoice"`
	Store struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	} `json:"store"`
	Customer struct {
		Name    string `json:"name"`
		Phone   string `json:"phone,omitempty"`
		Email   string `json:"email,omitempty"`
		Address string `json:"address,omitempty"`
	} `json:"customer"`
	Items []struct {
		ProductReference string `json:"product_reference"`
		ProductName      string `json:"product_name"`
		Quantity         int64  `json:"quantity"`
		UnitPrice        string `json:"unit_price"`
		TotalPrice       string `json:"total_price"`
	} `json:"items"`
	FormattedTotals struct {
		Subtotal    string `json:"subtotal"`
		TaxAmount   string `json:"tax_amount"`
		TotalAmount string `json:"total_amount"`
	} `json:"formatted_totals"`
}
