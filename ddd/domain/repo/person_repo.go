package repo

import (
	"context"

	"biblioteca-service/ddd/domain/entity"
)

// PersonFilter narrows person listings.
type PersonFilter struct {
	Search string // matches full name or document number
	Type   string
}

// PersonRepository hides person persistence from the application layer.
type PersonRepository interface {
	Create(ctx context.Context, p *entity.Person) error
	GetByID(ctx context.Context, id string) (*entity.Person, error)
	List(ctx context.Context, filter PersonFilter, offset, limit int) ([]*entity.Person, int64, error)
	Update(ctx context.Context, p *entity.Person) error
	Delete(ctx context.Context, id string) error
	CountByType(ctx context.Context) (map[string]int64, error)
}
