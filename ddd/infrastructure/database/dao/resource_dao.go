package dao

import (
	"context"

	"gorm.io/gorm"

	"biblioteca-service/ddd/domain/repo"
	"biblioteca-service/ddd/infrastructure/database/po"
	"biblioteca-service/internal/resource"
)

type ResourceDao struct {
	db *gorm.DB
}

func NewResourceDao() *ResourceDao {
	return &ResourceDao{db: resource.MainDB()}
}

func (d *ResourceDao) Create(ctx context.Context, p *po.Resource) error {
	return d.db.WithContext(ctx).Create(p).Error
}

func (d *ResourceDao) GetByID(ctx context.Context, id string) (*po.Resource, error) {
	var p po.Resource
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (d *ResourceDao) List(ctx context.Context, filter repo.ResourceFilter, offset, limit int) ([]po.Resource, int64, error) {
	q := d.db.WithContext(ctx).Model(&po.Resource{})
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("title LIKE ? OR author LIKE ?", like, like)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var pos []po.Resource
	err := q.Order("title ASC").Offset(offset).Limit(limit).Find(&pos).Error
	if err != nil {
		return nil, 0, err
	}
	return pos, total, nil
}

func (d *ResourceDao) Update(ctx context.Context, p *po.Resource) error {
	return d.db.WithContext(ctx).Save(p).Error
}

func (d *ResourceDao) Delete(ctx context.Context, id string) error {
	return d.db.WithContext(ctx).Where("id = ?", id).Delete(&po.Resource{}).Error
}

func (d *ResourceDao) StockSummary(ctx context.Context) (*repo.ResourceStockSummary, error) {
	var out repo.ResourceStockSummary
	err := d.db.WithContext(ctx).
		Model(&po.Resource{}).
		Select("COUNT(*) AS total_resources, COALESCE(SUM(total_copies),0) AS total_copies, COALESCE(SUM(available),0) AS available").
		Where("active = ?", true).
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}
