package services

import (
	"context"
	"time"

	"github.com/yameogo/gestock/internal/api"
	"github.com/yameogo/gestock/internal/cache"
	"github.com/yameogo/gestock/internal/models"
)

// WarehouseService manages the store's warehouses.
type WarehouseService struct {
	res *resource[models.Warehouse, models.WarehouseForm]
}

func NewWarehouseService(deps Deps) *WarehouseService {
	placeholder := func(f models.WarehouseForm, id int64) models.Warehouse {
		return models.Warehouse{
			ID:        id,
			Name:      f.Name,
			Address:   f.Address,
			IsActive:  f.IsActive,
			CreatedAt: time.Now().Format(time.RFC3339),
		}
	}
	return &WarehouseService{res: newResource(deps, "warehouses/", placeholder)}
}

func (s *WarehouseService) List(ctx context.Context, p api.ListParams) (cache.Page[models.Warehouse], error) {
	return s.res.List(ctx, p)
}

// All returns every warehouse; the collection is small enough that the
// UI always loads it whole for pickers.
func (s *WarehouseService) All(ctx context.Context) ([]models.Warehouse, error) {
	return s.res.rows(ctx, "warehouses/", nil)
}

func (s *WarehouseService) Get(ctx context.Context, id int64) (models.Warehouse, error) {
	return s.res.Get(ctx, id)
}

func (s *WarehouseService) Create(ctx context.Context, form models.WarehouseForm) (models.Warehouse, error) {
	return s.res.Create(ctx, form)
}

func (s *WarehouseService) Update(ctx context.Context, id int64, patch any) (models.Warehouse, error) {
	return s.res.Update(ctx, id, patch)
}

func (s *WarehouseService) Delete(ctx context.Context, id int64) error {
	return s.res.Delete(ctx, id)
}

// EmployeeService manages store staff records.
type EmployeeService struct {
	res *resource[models.Employee, models.Employee]
}

func NewEmployeeService(deps Deps) *EmployeeService {
	placeholder := func(f models.Employee, id int64) models.Employee {
		f.ID = id
		return f
	}
	return &EmployeeService{res: newResource(deps, "employees/", placeholder)}
}

func (s *EmployeeService) List(ctx context.Context, p api.ListParams) (cache.Page[models.Employee], error) {
	return s.res.List(ctx, p)
}

func (s *EmployeeService) Get(ctx context.Context, id int64) (models.Employee, error) {
	return s.res.Get(ctx, id)
}

func (s *EmployeeService) Create(ctx context.Context, form models.Employee) (models.Employee, error) {
	return s.res.Create(ctx, form)
}

func (s *EmployeeService) Update(ctx context.Context, id int64, patch any) (models.Employee, error) {
	return s.res.Update(ctx, id, patch)
}

func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	return s.res.Delete(ctx, id)
}
