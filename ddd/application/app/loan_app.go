package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"biblioteca-service/ddd/application/cqe"
	"biblioteca-service/ddd/application/dto"
	"biblioteca-service/ddd/domain/entity"
	drepo "biblioteca-service/ddd/domain/repo"
	"biblioteca-service/ddd/infrastructure/database/persistence"
	"biblioteca-service/pkg/config"
	"biblioteca-service/pkg/errno"
	"biblioteca-service/pkg/logger"
)

// LoanApp orchestrates the loan use cases.
type LoanApp interface {
	Create(ctx context.Context, req *cqe.CreateLoanReq) (*dto.LoanDto, error)
	Get(ctx context.Context, id string) (*dto.LoanDto, error)
	List(ctx context.Context, req *cqe.ListLoansReq) (*dto.ListLoansResponse, error)
	Update(ctx context.Context, id string, req *cqe.UpdateLoanReq) (*dto.LoanDto, error)
	Return(ctx context.Context, id string, req *cqe.ReturnLoanReq) (*dto.LoanDto, error)
	MarkLost(ctx context.Context, id string, req *cqe.MarkLostReq) (*dto.LoanDto, error)
	Delete(ctx context.Context, id string) error
}

type loanAppImpl struct {
	loans     drepo.LoanRepository
	persons   drepo.PersonRepository
	resources drepo.ResourceRepository
	now       func() time.Time
}

// DefaultLoanApp returns the default application service.
func DefaultLoanApp() LoanApp {
	return &loanAppImpl{
		loans:     persistence.NewLoanRepository(),
		persons:   persistence.NewPersonRepository(),
		resources: persistence.NewResourceRepository(),
		now:       time.Now,
	}
}

func (a *loanAppImpl) Create(ctx context.Context, req *cqe.CreateLoanReq) (*dto.LoanDto, error) {
	if !req.Validate() {
		return nil, errno.ErrParameterInvalid
	}

	person, err := a.persons.GetByID(ctx, req.PersonID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if !person.Active {
		return nil, errno.ErrPersonInactive
	}

	res, err := a.resources.GetByID(ctx, req.ResourceID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if res.Available < 1 {
		return nil, errno.ErrResourceUnavailable
	}

	loanDate := a.now()
	dueDate := req.DueDate
	if dueDate == nil {
		d := loanDate.AddDate(0, 0, config.GetGlobalConfig().Loan.DefaultPeriodDays)
		dueDate = &d
	}

	l := entity.NewLoan(uuid.NewString(), person.ID, res.ID, person.FullName, res.Title,
		loanDate, dueDate, req.Observations)
	if err := a.loans.Create(ctx, l); err != nil {
		return nil, err
	}

	res.AdjustAvailable(-1)
	if err := a.resources.Update(ctx, res); err != nil {
		// Loan exists but the counter update failed; log and carry on,
		// the sweep or the next return will reconcile the counter.
		logger.WithContext(ctx).Errorf("loan: availability decrement failed resource_id=%s error=%v", res.ID, err)
	}

	d := dto.NewLoanDto(l)
	return &d, nil
}

func (a *loanAppImpl) Get(ctx context.Context, id string) (*dto.LoanDto, error) {
	l, err := a.loans.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	d := dto.NewLoanDto(l)
	return &d, nil
}

func (a *loanAppImpl) List(ctx context.Context, req *cqe.ListLoansReq) (*dto.ListLoansResponse, error) {
	req.Normalize()
	offset := (req.Page - 1) * req.PageSize

	filter := drepo.LoanFilter{
		Status:     req.Status,
		PersonID:   req.PersonID,
		ResourceID: req.ResourceID,
	}
	loans, total, err := a.loans.List(ctx, filter, offset, req.PageSize)
	if err != nil {
		return nil, err
	}

	items := make([]dto.LoanDto, 0, len(loans))
	for _, l := range loans {
		items = append(items, dto.NewLoanDto(l))
	}
	return &dto.ListLoansResponse{Loans: items, Total: total}, nil
}

func (a *loanAppImpl) Update(ctx context.Context, id string, req *cqe.UpdateLoanReq) (*dto.LoanDto, error) {
	if req == nil {
		return nil, errno.ErrParameterInvalid
	}

	l, err := a.loans.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	// Closed loans are immutable history.
	if !l.Returnable() {
		return nil, errno.ErrLoanNotReturnable
	}

	if req.DueDate != nil {
		l.DueDate = req.DueDate
	}
	if req.Observations != nil {
		l.Observations = *req.Observations
	}
	if err := a.loans.Update(ctx, l); err != nil {
		return nil, err
	}

	d := dto.NewLoanDto(l)
	return &d, nil
}

func (a *loanAppImpl) Return(ctx context.Context, id string, req *cqe.ReturnLoanReq) (*dto.LoanDto, error) {
	l, err := a.loans.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if !l.Returnable() {
		return nil, errno.ErrLoanNotReturnable
	}

	now := a.now()
	l.ReturnedAt = &now
	l.Status = entity.LoanStatusReturned
	if req != nil && req.Observations != "" {
		l.Observations = req.Observations
	}
	if err := a.loans.Update(ctx, l); err != nil {
		return nil, err
	}

	a.restoreAvailability(ctx, l.ResourceID)

	d := dto.NewLoanDto(l)
	return &d, nil
}

func (a *loanAppImpl) MarkLost(ctx context.Context, id string, req *cqe.MarkLostReq) (*dto.LoanDto, error) {
	l, err := a.loans.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if !l.Returnable() {
		return nil, errno.ErrLoanNotReturnable
	}

	l.Status = entity.LoanStatusLost
	if req != nil && req.Observations != "" {
		l.Observations = req.Observations
	}
	if err := a.loans.Update(ctx, l); err != nil {
		return nil, err
	}

	// A lost copy no longer counts toward the catalog total.
	if res, err := a.resources.GetByID(ctx, l.ResourceID); err == nil {
		if res.TotalCopies > 1 {
			res.TotalCopies--
		}
		res.AdjustAvailable(0)
		if err := a.resources.Update(ctx, res); err != nil {
			logger.WithContext(ctx).Errorf("loan: total copies decrement failed resource_id=%s error=%v", res.ID, err)
		}
	}

	d := dto.NewLoanDto(l)
	return &d, nil
}

func (a *loanAppImpl) Delete(ctx context.Context, id string) error {
	return a.loans.Delete(ctx, id)
}

func (a *loanAppImpl) restoreAvailability(ctx context.Context, resourceID string) {
	res, err := a.resources.GetByID(ctx, resourceID)
	if err != nil {
		logger.WithContext(ctx).Warnf("loan: resource lookup for availability restore failed resource_id=%s error=%v", resourceID, err)
		return
	}
	res.AdjustAvailable(1)
	if err := a.resources.Update(ctx, res); err != nil {
		logger.WithContext(ctx).Errorf("loan: availability increment failed resource_id=%s error=%v", res.ID, err)
	}
}
