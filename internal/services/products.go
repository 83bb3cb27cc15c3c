package services

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"github.com/yameogo/gestock/internal/api"
	"github.com/yameogo/gestock/internal/cache"
	"github.com/yameogo/gestock/internal/models"
)

// StockFilter narrows product-stock listings.
type StockFilter struct {
	Search    string
	Warehouse int64
	Product   int64
	LowStock  bool
}

func (f StockFilter) values() url.Values {
	v := url.Values{}
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	if f.Warehouse > 0 {
		v.Set("warehouse", strconv.FormatInt(f.Warehouse, 10))
	}
	if f.Product > 0 {
		v.Set("product", strconv.FormatInt(f.Product, 10))
	}
	if f.LowStock {
		v.Set("low_stock", "true")
	}
	return v
}

// ProductService manages the product catalog and its per-warehouse
// stock levels.
type ProductService struct {
	res  *resource[models.Product, models.ProductForm]
	deps Deps
}

// NewProductService constructs a ProductService with its own collection
// cache.
func NewProductService(deps Deps) *ProductService {
	placeholder := func(f models.ProductForm, id int64) models.Product {
		return models.Product{
			ID:            id,
			Reference:     f.Reference,
			Name:          f.Name,
			Description:   f.Description,
			Unit:          f.Unit,
			MinStockAlert: f.MinStockAlert,
			IsActive:      true,
			CreatedAt:     time.Now().Format(time.RFC3339),
		}
	}
	return &ProductService{res: newResource(deps, "products/", placeholder), deps: deps}
}

// List returns one page of products.
func (s *ProductService) List(ctx context.Context, p api.ListParams) (cache.Page[models.Product], error) {
	return s.res.List(ctx, p)
}

// Get returns one product.
func (s *ProductService) Get(ctx context.Context, id int64) (models.Product, error) {
	return s.res.Get(ctx, id)
}

// Create adds a product, optimistically.
func (s *ProductService) Create(ctx context.Context, form models.ProductForm) (models.Product, error) {
	created, err := s.res.Create(ctx, form)
	if err != nil {
		return created, err
	}
	s.deps.notifier().Success("Produit créé avec succès")
	return created, nil
}

// Update patches a product.
func (s *ProductService) Update(ctx context.Context, id int64, patch any) (models.Product, error) {
	updated, err := s.res.Update(ctx, id, patch)
	if err != nil {
		return updated, err
	}
	s.deps.notifier().Success("Produit mis à jour avec succès")
	return updated, nil
}

// Delete removes a product, optimistically.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if err := s.res.Delete(ctx, id); err != nil {
		return err
	}
	s.deps.notifier().Success("Produit supprimé avec succès")
	return nil
}

// Search is the autocomplete lookup (min two characters server-side).
func (s *ProductService) Search(ctx context.Context, query string) ([]models.Product, error) {
	return s.res.Search(ctx, query, 20)
}

// LowStock lists products at or below their alert threshold.
func (s *ProductService) LowStock(ctx context.Context) ([]models.Product, error) {
	return s.res.rows(ctx, "products/low-stock/", nil)
}

// Stock lists per-warehouse quantities, optionally filtered.
func (s *ProductService) Stock(ctx context.Context, filter StockFilter) ([]models.ProductStock, error) {
	return fetchRows[models.ProductStock](ctx, s.deps, "product-stocks/", filter.values())
}

// fetchRows is the envelope-or-array fetch for collections that have no
// dedicated resource cache.
func fetchRows[T any](ctx context.Context, deps Deps, path string, query url.Values) ([]T, error) {
	var raw json.RawMessage
	if err := deps.Client.Get(ctx, path, query, &raw); err != nil {
		return nil, err
	}
	return decodeRows[T](raw)
}
