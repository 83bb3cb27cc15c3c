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

// MovementFilter narrows goods-received and goods-issued listings.
type MovementFilter struct {
	Search    string
	Warehouse int64
	Supplier  int64
	Customer  int64
	DateFrom  string
	DateTo    string
}

func (f MovementFilter) values() url.Values {
	v := url.Values{}
	if f.Warehouse != 0 {
		v.Set("warehouse", strconv.FormatInt(f.Warehouse, 10))
	}
	if f.Supplier != 0 {
		v.Set("supplier", strconv.FormatInt(f.Supplier, 10))
	}
	if f.Customer != 0 {
		v.Set("customer", strconv.FormatInt(f.Customer, 10))
	}
	if f.DateFrom != "" {
		v.Set("date_from", f.DateFrom)
	}
	if f.DateTo != "" {
		v.Set("date_to", f.DateTo)
	}
	return v
}

// StockService records goods-received and goods-issued notes. Entry and
// exit numbers are backend-assigned, so optimistic rows carry a loading
// placeholder until the server responds.
type StockService struct {
	entries *resource[models.StockEntry, models.StockEntryForm]
	exits   *resource[models.StockExit, models.StockExitForm]
	deps    Deps
}

func NewStockService(deps Deps) *StockService {
	entryPlaceholder := func(f models.StockEntryForm, id int64) models.StockEntry {
		return models.StockEntry{
			ID:            id,
			EntryNumber:   common.PlaceholderLabel,
			Supplier:      f.Supplier,
			SupplierName:  common.PlaceholderLabel,
			Warehouse:     f.Warehouse,
			WarehouseName: common.PlaceholderLabel,
			TotalAmount:   f.GrandTotal(),
			Notes:         f.Notes,
			CreatedAt:     time.Now().Format(time.RFC3339),
		}
	}
	exitPlaceholder := func(f models.StockExitForm, id int64) models.StockExit {
		name := f.CustomerName
		if name == "" {
			name = common.PlaceholderLabel
		}
		return models.StockExit{
			ID:            id,
			ExitNumber:    common.PlaceholderLabel,
			Customer:      f.Customer,
			CustomerName:  name,
			Warehouse:     f.Warehouse,
			WarehouseName: common.PlaceholderLabel,
			TotalAmount:   f.GrandTotal(),
			Notes:         f.Notes,
			CreatedAt:     time.Now().Format(time.RFC3339),
		}
	}
	return &StockService{
		entries: newResource(deps, "stock-entries/", entryPlaceholder),
		exits:   newResource(deps, "stock-exits/", exitPlaceholder),
		deps:    deps,
	}
}

func (s *StockService) ListEntries(ctx context.Context, p api.ListParams, f MovementFilter) (cache.Page[models.StockEntry], error) {
	p.Search = f.Search
	p.Extra = f.values()
	return s.entries.List(ctx, p)
}

func (s *StockService) GetEntry(ctx context.Context, id int64) (models.StockEntry, error) {
	return s.entries.Get(ctx, id)
}

func (s *StockService) CreateEntry(ctx context.Context, form models.StockEntryForm) (models.StockEntry, error) {
	created, err := s.entries.Create(ctx, form)
	if err != nil {
		return created, err
	}
	s.deps.notifier().Success("Entrée de stock enregistrée avec succès")
	return created, nil
}

func (s *StockService) DeleteEntry(ctx context.Context, id int64) error {
	if err := s.entries.Delete(ctx, id); err != nil {
		return err
	}
	s.deps.notifier().Success("Entrée de stock supprimée avec succès")
	return nil
}

func (s *StockService) ListExits(ctx context.Context, p api.ListParams, f MovementFilter) (cache.Page[models.StockExit], error) {
	p.Search = f.Search
	p.Extra = f.values()
	return s.exits.List(ctx, p)
}

func (s *StockService) GetExit(ctx context.Context, id int64) (models.StockExit, error) {
	return s.exits.Get(ctx, id)
}

func (s *StockService) CreateExit(ctx context.Context, form models.StockExitForm) (models.StockExit, error) {
	created, err := s.exits.Create(ctx, form)
	if err != nil {
		return created, err
	}
	s.deps.notifier().Success("Sortie de stock enregistrée avec succès")
	return created, nil
}

func (s *StockService) DeleteExit(ctx context.Context, id int64) error {
	if err := s.exits.Delete(ctx, id); err != nil {
		return err
	}
	s.deps.notifier().Success("Sortie de stock supprimée avec succès")
	return nil
}

// Stats fetches the stock dashboard aggregate.
func (s *StockService) Stats(ctx context.Context) (models.StockStats, error) {
	var stats models.StockStats
	if err := s.deps.Client.Get(ctx, "stock/stats/", nil, &stats); err != nil {
		return models.StockStats{}, err
	}
	return stats, nil
}
