package services

import (
	"context"
	"fmt"
	"time"

	"github.com/yameogo/gestock/internal/api"
	"github.com/yameogo/gestock/internal/cache"
	"github.com/yameogo/gestock/internal/common"
	"github.com/yameogo/gestock/internal/models"
)

// InvoiceService issues billing documents from stock exits and exposes
// the backend's print and PDF renditions.
type InvoiceService struct {
	res  *resource[models.Invoice, models.InvoiceForm]
	deps Deps
}

func NewInvoiceService(deps Deps) *InvoiceService {
	placeholder := func(f models.InvoiceForm, id int64) models.Invoice {
		name := f.CustomerName
		if name == "" {
			name = common.PlaceholderLabel
		}
		return models.Invoice{
			ID:            id,
			InvoiceNumber: common.PlaceholderLabel,
			StockExit:     models.StockExit{ID: f.StockExit},
			CustomerName:  name,
			Status:        models.InvoicePending,
			CreatedAt:     time.Now().Format(time.RFC3339),
		}
	}
	return &InvoiceService{res: newResource(deps, "invoices/", placeholder), deps: deps}
}

func (s *InvoiceService) List(ctx context.Context, p api.ListParams) (cache.Page[models.Invoice], error) {
	return s.res.List(ctx, p)
}

func (s *InvoiceService) Get(ctx context.Context, id int64) (models.Invoice, error) {
	return s.res.Get(ctx, id)
}

func (s *InvoiceService) Create(ctx context.Context, form models.InvoiceForm) (models.Invoice, error) {
	created, err := s.res.Create(ctx, form)
	if err != nil {
		return created, err
	}
	s.deps.notifier().Success(fmt.Sprintf("Facture %s créée avec succès", created.InvoiceNumber))
	return created, nil
}

func (s *InvoiceService) Delete(ctx context.Context, id int64) error {
	if err := s.res.Delete(ctx, id); err != nil {
		return err
	}
	s.deps.notifier().Success("Facture supprimée avec succès")
	return nil
}

// PrintData fetches the render-ready receipt payload for an invoice.
func (s *InvoiceService) PrintData(ctx context.Context, id int64) (models.InvoicePrintData, error) {
	var data models.InvoicePrintData
	path := fmt.Sprintf("invoices/%d/print_data/", id)
	if err := s.deps.Client.Get(ctx, path, nil, &data); err != nil {
		return models.InvoicePrintData{}, err
	}
	return data, nil
}

// DownloadPDF fetches the invoice's PDF rendition as raw bytes.
func (s *InvoiceService) DownloadPDF(ctx context.Context, id int64) ([]byte, error) {
	path := fmt.Sprintf("invoices/%d/download-pdf/", id)
	return s.deps.Client.Download(ctx, path)
}
