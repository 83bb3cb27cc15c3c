package models

import "github.com/shopspring/decimal"

// StockEntry is a goods-received note. The entry number is assigned by
// the backend; items may be omitted in list payloads.
type StockEntry struct {
	ID            int64            `json:"id"`
	EntryNumber   string           `json:"entry_number"`
	Supplier      int64            `json:"supplier"`
	SupplierName  string           `json:"supplier_name"`
	Warehouse     int64            `json:"warehouse"`
	WarehouseName string           `json:"warehouse_name"`
	TotalAmount   decimal.Decimal  `json:"total_amount"`
	Notes         string           `json:"notes,omitempty"`
	CreatedBy     int64            `json:"created_by"`
	CreatedByName string           `json:"created_by_name"`
	CreatedAt     string           `json:"created_at"`
	Items         []StockEntryItem `json:"items,omitempty"`
}

func (e StockEntry) EntityID() int64 { return e.ID }

// StockEntryItem is one received line: product, quantity, purchase price.
type StockEntryItem struct {
	ID            int64           `json:"id"`
	StockEntry    int64           `json:"stock_entry"`
	Product       Product         `json:"product"`
	Quantity      int64           `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	TotalPrice    decimal.Decimal `json:"total_price"`
}

// StockExit is a goods-issued note (a sale or internal issue).
type StockExit struct {
	ID            int64           `json:"id"`
	ExitNumber    string          `json:"exit_number"`
	Customer      int64           `json:"customer,omitempty"`
	CustomerName  string          `json:"customer_name,omitempty"`
	Warehouse     int64           `json:"warehouse"`
	WarehouseName string          `json:"warehouse_name"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Notes         string          `json:"notes,omitempty"`
	CreatedBy     int64           `json:"created_by"`
	CreatedByName string          `json:"created_by_name"`
	CreatedAt     string          `json:"created_at"`
	Items         []StockExitItem `json:"items,omitempty"`
}

func (e StockExit) EntityID() int64 { return e.ID }

// StockExitItem is one issued line: product, quantity, sale price.
type StockExitItem struct {
	ID         int64           `json:"id"`
	StockExit  int64           `json:"stock_exit"`
	Product    Product         `json:"product"`
	Quantity   int64           `json:"quantity"`
	SalePrice  decimal.Decimal `json:"sale_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// StockStats is the dashboard aggregate returned by GET stock/stats/.
type StockStats struct {
	TotalProducts int64           `json:"total_products"`
	TotalStock    int64           `json:"total_stock"`
	LowStockCount int64           `json:"low_stock_count"`
	TotalValue    decimal.Decimal `json:"total_value"`
}
