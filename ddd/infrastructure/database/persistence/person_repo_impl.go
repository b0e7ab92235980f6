package persistence

import (
	"context"

	"biblioteca-service/ddd/domain/entity"
	drepo "biblioteca-service/ddd/domain/repo"
	"biblioteca-service/ddd/infrastructure/database/dao"
	"biblioteca-service/ddd/infrastructure/database/po"
)

type personRepositoryImpl struct {
	dao *dao.PersonDao
}

func NewPersonRepository() drepo.PersonRepository {
	return &personRepositoryImpl{dao: dao.NewPersonDao()}
}

func (r *personRepositoryImpl) Create(ctx context.Context, p *entity.Person) error {
	return r.dao.Create(ctx, personToPo(p))
}

func (r *personRepositoryImpl) GetByID(ctx context.Context, id string) (*entity.Person, error) {
	p, err := r.dao.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return personToEntity(p), nil
}

func (r *personRepositoryImpl) List(ctx context.Context, filter drepo.PersonFilter, offset, limit int) ([]*entity.Person, int64, error) {
	pos, total, err := r.dao.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	res := make([]*entity.Person, 0, len(pos))
	for i := range pos {
		res = append(res, personToEntity(&pos[i]))
	}
	return res, total, nil
}

func (r *personRepositoryImpl) Update(ctx context.Context, p *entity.Person) error {
	return r.dao.Update(ctx, personToPo(p))
}

func (r *personRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.dao.Delete(ctx, id)
}

func (r *personRepositoryImpl) CountByType(ctx context.Context) (map[string]int64, error) {
	return r.dao.CountByType(ctx)
}

func personToPo(p *entity.Person) *po.Person {
	return &po.Person{
		ID:             p.ID,
		FullName:       p.FullName,
		DocumentNumber: p.DocumentNumber,
		Type:           p.Type,
		Grade:          p.Grade,
		Active:         p.Active,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func personToEntity(p *po.Person) *entity.Person {
	return &entity.Person{
		ID:             p.ID,
		FullName:       p.FullName,
		DocumentNumber: p.DocumentNumber,
		Type:           p.Type,
		Grade:          p.Grade,
		Active:         p.Active,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
