package services

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/yameogo/gestock/internal/api"
	"github.com/yameogo/gestock/internal/cache"
	"github.com/yameogo/gestock/internal/common"
	"github.com/yameogo/gestock/internal/models"
)

// TransactionService records manual ledger entries (transfers and
// adjustments). Purchase and sale transactions are posted by the
// backend when stock moves.
type TransactionService struct {
	res  *resource[models.FinancialTransaction, models.TransactionForm]
	deps Deps
}

func NewTransactionService(deps Deps) *TransactionService {
	placeholder := func(f models.TransactionForm, id int64) models.FinancialTransaction {
		t := models.FinancialTransaction{
			ID:                id,
			TransactionNumber: common.PlaceholderLabel,
			TransactionType:   f.TransactionType,
			Amount:            f.Amount,
			Description:       f.Description,
			CreatedAt:         time.Now().Format(time.RFC3339),
		}
		if f.FromAccount != 0 {
			t.FromAccount = &models.Account{ID: f.FromAccount, Name: common.PlaceholderLabel}
		}
		if f.ToAccount != 0 {
			t.ToAccount = &models.Account{ID: f.ToAccount, Name: common.PlaceholderLabel}
		}
		return t
	}
	return &TransactionService{res: newResource(deps, "transactions/", placeholder), deps: deps}
}

func filterValues(f models.TransactionFilter) url.Values {
	v := url.Values{}
	if f.StartDate != "" {
		v.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		v.Set("end_date", f.EndDate)
	}
	if f.TransactionType != "" {
		v.Set("transaction_type", string(f.TransactionType))
	}
	if f.Account != 0 {
		v.Set("account", strconv.FormatInt(f.Account, 10))
	}
	return v
}

func (s *TransactionService) List(ctx context.Context, p api.ListParams, f models.TransactionFilter) (cache.Page[models.FinancialTransaction], error) {
	p.Extra = filterValues(f)
	return s.res.List(ctx, p)
}

func (s *TransactionService) Get(ctx context.Context, id int64) (models.FinancialTransaction, error) {
	return s.res.Get(ctx, id)
}

func (s *TransactionService) Create(ctx context.Context, form models.TransactionForm) (models.FinancialTransaction, error) {
	created, err := s.res.Create(ctx, form)
	if err != nil {
		return created, err
	}
	s.deps.notifier().Success("Transaction enregistrée avec succès")
	return created, nil
}

func (s *TransactionService) Delete(ctx context.Context, id int64) error {
	if err := s.res.Delete(ctx, id); err != nil {
		return err
	}
	s.deps.notifier().Success("Transaction supprimée avec succès")
	return nil
}
