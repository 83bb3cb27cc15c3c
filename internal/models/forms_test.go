package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestStockEntryForm_GrandTotal(t *testing.T) {
	form := StockEntryForm{
		Supplier:  1,
		Warehouse: 2,
		Items: []StockEntryItemForm{
			{Product: 10, Quantity: 3, PurchasePrice: dec("1500.50")},
			{Product: 11, Quantity: 2, PurchasePrice: dec("0.99")},
		},
	}

	assert.True(t, form.GrandTotal().Equal(dec("4503.48")),
		"got %s", form.GrandTotal())
}

func TestStockExitForm_GrandTotal_Empty(t *testing.T) {
	form := StockExitForm{Warehouse: 1}
	assert.True(t, form.GrandTotal().IsZero())
}

func TestStockExitItemForm_LineTotal(t *testing.T) {
	item := StockExitItemForm{Product: 1, Quantity: 7, SalePrice: dec("250")}
	assert.True(t, item.LineTotal().Equal(dec("1750")))
}

func TestInvoiceTotals(t *testing.T) {
	sub, tax, total := InvoiceTotals(dec("1000"), DefaultVATRate)
	assert.True(t, sub.Equal(dec("1000")))
	assert.True(t, tax.Equal(dec("180")))
	assert.True(t, total.Equal(dec("1180")))
}

func TestInvoiceTotals_Rounding(t *testing.T) {
	sub, tax, total := InvoiceTotals(dec("33.335"), dec("0.18"))
	assert.True(t, sub.Equal(dec("33.34")), "sub=%s", sub)
	assert.True(t, tax.Equal(dec("6.00")), "tax=%s", tax)
	assert.True(t, total.Equal(dec("39.34")), "total=%s", total)
}

func TestProduct_LowOnStock(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		want    bool
	}{
		{name: "below threshold", product: Product{TotalStock: 2, MinStockAlert: 5}, want: true},
		{name: "at threshold", product: Product{TotalStock: 5, MinStockAlert: 5}, want: true},
		{name: "above threshold", product: Product{TotalStock: 6, MinStockAlert: 5}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.product.LowOnStock())
		})
	}
}

func TestAccount_BalanceDecodesFromString(t *testing.T) {
	// The backend serializes money as strings.
	payload := `{"id":1,"name":"Caisse","account_type":"cash","balance":"1250.75","store":1,"is_active":true}`
	var a Account
	require.NoError(t, json.Unmarshal([]byte(payload), &a))
	assert.True(t, a.Balance.Equal(dec("1250.75")))
	assert.Equal(t, AccountCash, a.AccountType)
}
