package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/yameogo/gestock/internal/api"
	"github.com/yameogo/gestock/internal/models"
)

// Dashboard aggregates the home screen figures: stock statistics,
// products under their alert threshold and the cash position across
// active accounts.
type Dashboard struct {
	Stats       models.StockStats
	LowStock    []models.Product
	CashOnHand  decimal.Decimal
	BankBalance decimal.Decimal
}

// DashboardService composes the other services into one overview call.
type DashboardService struct {
	stock    *StockService
	products *ProductService
	accounts *AccountService
	deps     Deps
}

func NewDashboardService(deps Deps, stock *StockService, products *ProductService, accounts *AccountService) *DashboardService {
	return &DashboardService{stock: stock, products: products, accounts: accounts, deps: deps}
}

// Overview fetches the dashboard in sequence. A failed section aborts
// the whole call so the caller never renders a partial board.
func (s *DashboardService) Overview(ctx context.Context) (Dashboard, error) {
	var d Dashboard

	stats, err := s.stock.Stats(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	d.Stats = stats

	low, err := s.products.LowStock(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	d.LowStock = low

	page, err := s.accounts.List(ctx, api.ListParams{PageSize: 100})
	if err != nil {
		return Dashboard{}, err
	}
	for _, a := range page.Results {
		if !a.IsActive {
			continue
		}
		switch a.AccountType {
		case models.AccountCash:
			d.CashOnHand = d.CashOnHand.Add(a.Balance)
		case models.AccountBank:
			d.BankBalance = d.BankBalance.Add(a.Balance)
		}
	}
	return d, nil
}
