package services

import (
	"context"
	"fmt"
	"time"

	"github.com/yameogo/gestock/internal/api"
	"github.com/yameogo/gestock/internal/cache"
	"github.com/yameogo/gestock/internal/models"
)

// AccountService manages financial accounts. Balances are maintained by
// the backend's double-entry posting; the optimistic insert only shows
// the opening balance from the draft.
type AccountService struct {
	res  *resource[models.Account, models.AccountForm]
	deps Deps
}

func NewAccountService(deps Deps) *AccountService {
	placeholder := func(f models.AccountForm, id int64) models.Account {
		return models.Account{
			ID:          id,
			Name:        f.Name,
			AccountType: f.AccountType,
			Balance:     f.Balance,
			IsActive:    f.IsActive,
			CreatedAt:   time.Now().Format(time.RFC3339),
		}
	}
	return &AccountService{res: newResource(deps, "accounts/", placeholder), deps: deps}
}

func (s *AccountService) List(ctx context.Context, p api.ListParams) (cache.Page[models.Account], error) {
	return s.res.List(ctx, p)
}

func (s *AccountService) Get(ctx context.Context, id int64) (models.Account, error) {
	return s.res.Get(ctx, id)
}

func (s *AccountService) Create(ctx context.Context, form models.AccountForm) (models.Account, error) {
	created, err := s.res.Create(ctx, form)
	if err != nil {
		return created, err
	}
	s.deps.notifier().Success(fmt.Sprintf("Compte %q créé avec succès", created.Name))
	return created, nil
}

func (s *AccountService) Update(ctx context.Context, id int64, patch any) (models.Account, error) {
	updated, err := s.res.Update(ctx, id, patch)
	if err != nil {
		return updated, err
	}
	s.deps.notifier().Success(fmt.Sprintf("Compte %q mis à jour avec succès", updated.Name))
	return updated, nil
}

func (s *AccountService) Delete(ctx context.Context, id int64) error {
	if err := s.res.Delete(ctx, id); err != nil {
		return err
	}
	s.deps.notifier().Success("Compte supprimé avec succès")
	return nil
}

func (s *AccountService) Search(ctx context.Context, query string) ([]models.Account, error) {
	return s.res.Search(ctx, query, 10)
}

// Transactions pages through one account's ledger history.
func (s *AccountService) Transactions(ctx context.Context, accountID int64, p api.ListParams) (cache.Page[models.AccountTransaction], error) {
	var page cache.Page[models.AccountTransaction]
	path := fmt.Sprintf("accounts/%d/transactions/", accountID)
	if err := s.deps.Client.Get(ctx, path, p.Values(), &page); err != nil {
		return cache.Page[models.AccountTransaction]{}, err
	}
	return page, nil
}
