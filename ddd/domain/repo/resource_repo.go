package repo

import (
	"context"

	"biblioteca-service/ddd/domain/entity"
)

// ResourceFilter narrows resource listings.
type ResourceFilter struct {
	Search   string // matches title or author
	Category string
}

// ResourceStockSummary aggregates catalog counters for reporting.
type ResourceStockSummary struct {
	TotalResources int64
	TotalCopies    int64
	Available      int64
}

// ResourceRepository hides resource persistence from the application layer.
type ResourceRepository interface {
	Create(ctx context.Context, r *entity.Resource) error
	GetByID(ctx context.Context, id string) (*entity.Resource, error)
	List(ctx context.Context, filter ResourceFilter, offset, limit int) ([]*entity.Resource, int64, error)
	Update(ctx context.Context, r *entity.Resource) error
	Delete(ctx context.Context, id string) error
	StockSummary(ctx context.Context) (*ResourceStockSummary, error)
}
