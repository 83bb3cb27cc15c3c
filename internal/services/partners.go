package services

import (
	"context"
	"time"

	"github.com/yameogo/gestock/internal/api"
	"github.com/yameogo/gestock/internal/cache"
	"github.com/yameogo/gestock/internal/models"
)

// CustomerService manages the customer directory.
type CustomerService struct {
	res  *resource[models.Customer, models.PartyForm]
	deps Deps
}

func NewCustomerService(deps Deps) *CustomerService {
	placeholder := func(f models.PartyForm, id int64) models.Customer {
		return models.Customer{
			ID:        id,
			Name:      f.Name,
			Phone:     f.Phone,
			Email:     f.Email,
			Address:   f.Address,
			IsActive:  true,
			CreatedAt: time.Now().Format(time.RFC3339),
		}
	}
	return &CustomerService{res: newResource(deps, "customers/", placeholder), deps: deps}
}

func (s *CustomerService) List(ctx context.Context, p api.ListParams) (cache.Page[models.Customer], error) {
	return s.res.List(ctx, p)
}

func (s *CustomerService) Get(ctx context.Context, id int64) (models.Customer, error) {
	return s.res.Get(ctx, id)
}

func (s *CustomerService) Create(ctx context.Context, form models.PartyForm) (models.Customer, error) {
	created, err := s.res.Create(ctx, form)
	if err != nil {
		return created, err
	}
	s.deps.notifier().Success("Client créé avec succès")
	return created, nil
}

func (s *CustomerService) Update(ctx context.Context, id int64, patch any) (models.Customer, error) {
	return s.res.Update(ctx, id, patch)
}

func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	if err := s.res.Delete(ctx, id); err != nil {
		return err
	}
	s.deps.notifier().Success("Client supprimé avec succès")
	return nil
}

func (s *CustomerService) Search(ctx context.Context, query string) ([]models.Customer, error) {
	return s.res.Search(ctx, query, 10)
}

// SupplierService manages the supplier directory. Suppliers share the
// customer contact shape but live in their own collection.
type SupplierService struct {
	res  *resource[models.Supplier, models.PartyForm]
	deps Deps
}

func NewSupplierService(deps Deps) *SupplierService {
	placeholder := func(f models.PartyForm, id int64) models.Supplier {
		return models.Supplier{
			ID:        id,
			Name:      f.Name,
			Phone:     f.Phone,
			Email:     f.Email,
			Address:   f.Address,
			IsActive:  true,
			CreatedAt: time.Now().Format(time.RFC3339),
		}
	}
	return &SupplierService{res: newResource(deps, "suppliers/", placeholder), deps: deps}
}

func (s *SupplierService) List(ctx context.Context, p api.ListParams) (cache.Page[models.Supplier], error) {
	return s.res.List(ctx, p)
}

func (s *SupplierService) Get(ctx context.Context, id int64) (models.Supplier, error) {
	return s.res.Get(ctx, id)
}

func (s *SupplierService) Create(ctx context.Context, form models.PartyForm) (models.Supplier, error) {
	created, err := s.res.Create(ctx, form)
	if err != nil {
		return created, err
	}
	s.deps.notifier().Success("Fournisseur créé avec succès")
	return created, nil
}

func (s *SupplierService) Update(ctx context.Context, id int64, patch any) (models.Supplier, error) {
	return s.res.Update(ctx, id, patch)
}

func (s *SupplierService) Delete(ctx context.Context, id int64) error {
	if err := s.res.Delete(ctx, id); err != nil {
		return err
	}
	s.deps.notifier().Success("Fournisseur supprimé avec succès")
	return nil
}

func (s *SupplierService) Search(ctx context.Context, query string) ([]models.Supplier, error) {
	return s.res.Search(ctx, query, 10)
}
