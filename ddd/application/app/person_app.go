package app

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"biblioteca-service/ddd/application/cqe"
	"biblioteca-service/ddd/application/dto"
	"biblioteca-service/ddd/domain/entity"
	drepo "biblioteca-service/ddd/domain/repo"
	"biblioteca-service/ddd/infrastructure/database/persistence"
	"biblioteca-service/pkg/errno"
)

// PersonApp orchestrates the library member use cases.
type PersonApp interface {
	Create(ctx context.Context, req *cqe.CreatePersonReq) (*dto.PersonDto, error)
	Get(ctx context.Context, id string) (*dto.PersonDto, error)
	List(ctx context.Context, req *cqe.ListPersonsReq) (*dto.ListPersonsResponse, error)
	Update(ctx context.Context, id string, req *cqe.UpdatePersonReq) (*dto.PersonDto, error)
	Deactivate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type personAppImpl struct {
	repo drepo.PersonRepository
}

// DefaultPersonApp returns the default application service.
func DefaultPersonApp() PersonApp {
	return &personAppImpl{repo: persistence.NewPersonRepository()}
}

func (a *personAppImpl) Create(ctx context.Context, req *cqe.CreatePersonReq) (*dto.PersonDto, error) {
	if !req.Validate() {
		return nil, errno.ErrParameterInvalid
	}
	p := entity.NewPerson(uuid.NewString(), req.FullName, req.DocumentNumber, req.Type, req.Grade)
	if err := a.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	d := dto.NewPersonDto(p)
	return &d, nil
}

func (a *personAppImpl) Get(ctx context.Context, id string) (*dto.PersonDto, error) {
	p, err := a.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	d := dto.NewPersonDto(p)
	return &d, nil
}

func (a *personAppImpl) List(ctx context.Context, req *cqe.ListPersonsReq) (*dto.ListPersonsResponse, error) {
	req.Normalize()
	offset := (req.Page - 1) * req.PageSize

	filter := drepo.PersonFilter{Search: req.Search, Type: req.Type}
	persons, total, err := a.repo.List(ctx, filter, offset, req.PageSize)
	if err != nil {
		return nil, err
	}

	items := make([]dto.PersonDto, 0, len(persons))
	for _, p := range persons {
		items = append(items, dto.NewPersonDto(p))
	}
	return &dto.ListPersonsResponse{Persons: items, Total: total}, nil
}

func (a *personAppImpl) Update(ctx context.Context, id string, req *cqe.UpdatePersonReq) (*dto.PersonDto, error) {
	if req == nil {
		return nil, errno.ErrParameterInvalid
	}
	p, err := a.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	if req.FullName != nil {
		if *req.FullName == "" {
			return nil, errno.ErrParameterInvalid
		}
		p.FullName = *req.FullName
	}
	if req.Grade != nil {
		p.Grade = *req.Grade
	}
	if req.Active != nil {
		p.Active = *req.Active
	}

	if err := a.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	d := dto.NewPersonDto(p)
	return &d, nil
}

func (a *personAppImpl) Deactivate(ctx context.Context, id string) error {
	p, err := a.repo.GetByID(ctx, id)
	if err != nil {
		return mapNotFound(err)
	}
	p.Active = false
	return a.repo.Update(ctx, p)
}

func (a *personAppImpl) Delete(ctx context.Context, id string) error {
	return a.repo.Delete(ctx, id)
}

// mapNotFound converts gorm's record-not-found into the business code.
func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errno.ErrNotFound
	}
	return err
}
