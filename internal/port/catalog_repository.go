package port

import (
	"context"

	"github.com/controlhs/datacore/internal/core/domain"
)

type CatalogRepository interface {
	// ListProducts returns the full catalog in its stored order
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// GetProduct retrieves a product by ID, nil when absent
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
}
