package app

import (
	"context"

	"github.com/google/uuid"

	"biblioteca-service/ddd/application/cqe"
	"biblioteca-service/ddd/application/dto"
	"biblioteca-service/ddd/domain/entity"
	drepo "biblioteca-service/ddd/domain/repo"
	"biblioteca-service/ddd/infrastructure/database/persistence"
	"biblioteca-service/pkg/errno"
)

// ResourceApp orchestrates the catalog use cases.
type ResourceApp interface {
	Create(ctx context.Context, req *cqe.CreateResourceReq) (*dto.ResourceDto, error)
	Get(ctx context.Context, id string) (*dto.ResourceDto, error)
	List(ctx context.Context, req *cqe.ListResourcesReq) (*dto.ListResourcesResponse, error)
	Update(ctx context.Context, id string, req *cqe.UpdateResourceReq) (*dto.ResourceDto, error)
	Delete(ctx context.Context, id string) error
}

type resourceAppImpl struct {
	repo drepo.ResourceRepository
}

// DefaultResourceApp returns the default application service.
func DefaultResourceApp() ResourceApp {
	return &resourceAppImpl{repo: persistence.NewResourceRepository()}
}

func (a *resourceAppImpl) Create(ctx context.Context, req *cqe.CreateResourceReq) (*dto.ResourceDto, error) {
	if !req.Validate() {
		return nil, errno.ErrParameterInvalid
	}
	r := entity.NewResource(uuid.NewString(), req.Title, req.Author, req.Category, req.ISBN, req.TotalCopies)
	if err := a.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	d := dto.NewResourceDto(r)
	return &d, nil
}

func (a *resourceAppImpl) Get(ctx context.Context, id string) (*dto.ResourceDto, error) {
	r, err := a.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	d := dto.NewResourceDto(r)
	return &d, nil
}

func (a *resourceAppImpl) List(ctx context.Context, req *cqe.ListResourcesReq) (*dto.ListResourcesResponse, error) {
	req.Normalize()
	offset := (req.Page - 1) * req.PageSize

	filter := drepo.ResourceFilter{Search: req.Search, Category: req.Category}
	resources, total, err := a.repo.List(ctx, filter, offset, req.PageSize)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ResourceDto, 0, len(resources))
	for _, r := range resources {
		items = append(items, dto.NewResourceDto(r))
	}
	return &dto.ListResourcesResponse{Resources: items, Total: total}, nil
}

func (a *resourceAppImpl) Update(ctx context.Context, id string, req *cqe.UpdateResourceReq) (*dto.ResourceDto, error) {
	if req == nil {
		return nil, errno.ErrParameterInvalid
	}
	r, err := a.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, errno.ErrParameterInvalid
		}
		r.Title = *req.Title
	}
	if req.Author != nil {
		r.Author = *req.Author
	}
	if req.Category != nil {
		r.Category = *req.Category
	}
	if req.ISBN != nil {
		r.ISBN = *req.ISBN
	}
	if req.TotalCopies != nil && *req.TotalCopies > 0 {
		// Shrinking the total never leaves more available than exist.
		r.TotalCopies = *req.TotalCopies
		r.AdjustAvailable(0)
	}
	if req.State != nil {
		r.State = *req.State
	}
	if req.Active != nil {
		r.Active = *req.Active
	}

	if err := a.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	d := dto.NewResourceDto(r)
	return &d, nil
}

func (a *resourceAppImpl) Delete(ctx context.Context, id string) error {
	return a.repo.Delete(ctx, id)
}
