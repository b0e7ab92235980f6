package persistence

import (
	"context"

	"biblioteca-service/ddd/domain/entity"
	drepo "biblioteca-service/ddd/domain/repo"
	"biblioteca-service/ddd/infrastructure/database/dao"
	"biblioteca-service/ddd/infrastructure/database/po"
)

type resourceRepositoryImpl struct {
	dao *dao.ResourceDao
}

func NewResourceRepository() drepo.ResourceRepository {
	return &resourceRepositoryImpl{dao: dao.NewResourceDao()}
}

func (r *resourceRepositoryImpl) Create(ctx context.Context, e *entity.Resource) error {
	return r.dao.Create(ctx, resourceToPo(e))
}

func (r *resourceRepositoryImpl) GetByID(ctx context.Context, id string) (*entity.Resource, error) {
	p, err := r.dao.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return resourceToEntity(p), nil
}

func (r *resourceRepositoryImpl) List(ctx context.Context, filter drepo.ResourceFilter, offset, limit int) ([]*entity.Resource, int64, error) {
	pos, total, err := r.dao.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	res := make([]*entity.Resource, 0, len(pos))
	for i := range pos {
		res = append(res, resourceToEntity(&pos[i]))
	}
	return res, total, nil
}

func (r *resourceRepositoryImpl) Update(ctx context.Context, e *entity.Resource) error {
	return r.dao.Update(ctx, resourceToPo(e))
}

func (r *resourceRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.dao.Delete(ctx, id)
}

func (r *resourceRepositoryImpl) StockSummary(ctx context.Context) (*drepo.ResourceStockSummary, error) {
	return r.dao.StockSummary(ctx)
}

func resourceToPo(e *entity.Resource) *po.Resource {
	return &po.Resource{
		ID:          e.ID,
		Title:       e.Title,
		Author:      e.Author,
		Category:    e.Category,
		ISBN:        e.ISBN,
		TotalCopies: e.TotalCopies,
		Available:   e.Available,
		State:       e.State,
		Active:      e.Active,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func resourceToEntity(p *po.Resource) *entity.Resource {
	return &entity.Resource{
		ID:          p.ID,
		Title:       p.Title,
		Author:      p.Author,
		Category:    p.Category,
		ISBN:        p.ISBN,
		TotalCopies: p.TotalCopies,
		Available:   p.Available,
		State:       p.State,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
