package service

import (
	"context"
	"fmt"
	"time"

	"github.com/controlhs/datacore/internal/core/domain"
	"github.com/controlhs/datacore/internal/port"
)

type ReportService struct {
	catalog  port.CatalogRepository
	renderer port.DocumentRenderer
}

func NewReportService(catalog port.CatalogRepository, renderer port.DocumentRenderer) *ReportService {
	return &ReportService{
		catalog:  catalog,
		renderer: renderer,
	}
}

// Build assembles a report document from the current selections and the
// catalog. Selections with quantity 0 are dropped; a selection whose
// product is missing from the catalog degrades to a blank name and zero
// balance rather than aborting. Row order follows selection insertion
// order, not catalog order.
func (s *ReportService) Build(selections []domain.SelectionEntry, catalog []domain.Product, requesterName string, asOf time.Time) domain.ReportDocument {
	byID := make(map[string]domain.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	rows := make([]domain.ReportRow, 0, len(selections))
	for _, sel := range selections {
		if sel.Quantity <= 0 {
			continue
		}
		row := domain.ReportRow{RequestedQuantity: sel.Quantity}
		if p, ok := byID[sel.ProductID]; ok {
			row.ProductName = p.Name
			row.CurrentBalance = p.Balance
		}
		rows = append(rows, row)
	}

	return domain.ReportDocument{
		GeneratedOn:   asOf,
		RequesterName: requesterName,
		Rows:          rows,
	}
}

// Generate builds the document against the live catalog and renders it
// into a downloadable artifact.
func (s *ReportService) Generate(ctx context.Context, selections []domain.SelectionEntry, requesterName string, asOf time.Time) (domain.ReportDocument, []byte, error) {
	catalog, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return domain.ReportDocument{}, nil, fmt.Errorf("list products: %w", err)
	}

	doc := s.Build(selections, catalog, requesterName, asOf)

	artifact, err := s.renderer.Render(doc)
	if err != nil {
		return domain.ReportDocument{}, nil, fmt.Errorf("render report: %w", err)
	}

	return doc, artifact, nil
}
