package dao

import (
	"context"

	"gorm.io/gorm"

	"biblioteca-service/ddd/domain/repo"
	"biblioteca-service/ddd/infrastructure/database/po"
	"biblioteca-service/internal/resource"
)

type PersonDao struct {
	db *gorm.DB
}

func NewPersonDao() *PersonDao {
	return &PersonDao{db: resource.MainDB()}
}

func (d *PersonDao) Create(ctx context.Context, p *po.Person) error {
	return d.db.WithContext(ctx).Create(p).Error
}

func (d *PersonDao) GetByID(ctx context.Context, id string) (*po.Person, error) {
	var p po.Person
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (d *PersonDao) List(ctx context.Context, filter repo.PersonFilter, offset, limit int) ([]po.Person, int64, error) {
	q := d.db.WithContext(ctx).Model(&po.Person{})
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("full_name LIKE ? OR document_number LIKE ?", like, like)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var pos []po.Person
	err := q.Order("full_name ASC").Offset(offset).Limit(limit).Find(&pos).Error
	if err != nil {
		return nil, 0, err
	}
	return pos, total, nil
}

func (d *PersonDao) Update(ctx context.Context, p *po.Person) error {
	return d.db.WithContext(ctx).Save(p).Error
}

func (d *PersonDao) Delete(ctx context.Context, id string) error {
	return d.db.WithContext(ctx).Where("id = ?", id).Delete(&po.Person{}).Error
}

func (d *PersonDao) CountByType(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Type  string
		Count int64
	}
	var rows []row
	err := d.db.WithContext(ctx).
		Model(&po.Person{}).
		Select("type, COUNT(*) AS count").
		Where("active = ?", true).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Type] = r.Count
	}
	return out, nil
}
