package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"biblioteca-service/ddd/application/cqe"
	"biblioteca-service/ddd/domain/entity"
	drepo "biblioteca-service/ddd/domain/repo"
	"biblioteca-service/pkg/errno"
)

// fakeLoanStore keeps loans in memory keyed by id.
type fakeLoanStore struct {
	loans map[string]*entity.Loan
}

func newFakeLoanStore(loans ...*entity.Loan) *fakeLoanStore {
	s := &fakeLoanStore{loans: make(map[string]*entity.Loan)}
	for _, l := range loans {
		cp := *l
		s.loans[l.ID] = &cp
	}
	return s
}

func (s *fakeLoanStore) Create(_ context.Context, l *entity.Loan) error {
	cp := *l
	s.loans[l.ID] = &cp
	return nil
}

func (s *fakeLoanStore) GetByID(_ context.Context, id string) (*entity.Loan, error) {
	l, ok := s.loans[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *l
	return &cp, nil
}

func (s *fakeLoanStore) List(_ context.Context, _ drepo.LoanFilter, _, _ int) ([]*entity.Loan, int64, error) {
	out := make([]*entity.Loan, 0, len(s.loans))
	for _, l := range s.loans {
		cp := *l
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (s *fakeLoanStore) ListRelevant(_ context.Context) ([]*entity.Loan, error) {
	var out []*entity.Loan
	for _, l := range s.loans {
		if l.Status == entity.LoanStatusActive || l.Status == entity.LoanStatusOverdue {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *fakeLoanStore) Update(_ context.Context, l *entity.Loan) error {
	cp := *l
	s.loans[l.ID] = &cp
	return nil
}

func (s *fakeLoanStore) MarkOverdue(_ context.Context, ids []string) error {
	for _, id := range ids {
		if l, ok := s.loans[id]; ok && l.Status == entity.LoanStatusActive {
			l.Status = entity.LoanStatusOverdue
		}
	}
	return nil
}

func (s *fakeLoanStore) Delete(_ context.Context, id string) error {
	delete(s.loans, id)
	return nil
}

func (s *fakeLoanStore) CountByStatus(_ context.Context) (map[string]int64, error) {
	out := make(map[string]int64)
	for _, l := range s.loans {
		out[l.Status]++
	}
	return out, nil
}

func (s *fakeLoanStore) ListForReport(_ context.Context, _ string, _, _ *time.Time) ([]*entity.Loan, error) {
	return nil, nil
}

func loanAppFixture(loans ...*entity.Loan) (*loanAppImpl, *fakeLoanStore) {
	store := newFakeLoanStore(loans...)
	return &loanAppImpl{loans: store, now: time.Now}, store
}

func TestLoanUpdateChangesDueDateAndObservations(t *testing.T) {
	due := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)
	a, store := loanAppFixture(
		entity.NewLoan("loan-1", "p-1", "r-1", "Ana", "Atlas", due.AddDate(0, 0, -14), &due, ""))

	newDue := due.AddDate(0, 0, 7)
	obs := "extended one week"
	d, err := a.Update(context.Background(), "loan-1", &cqe.UpdateLoanReq{
		DueDate:      &newDue,
		Observations: &obs,
	})

	require.NoError(t, err)
	require.NotNil(t, d.DueDate)
	assert.Equal(t, newDue, *d.DueDate)
	assert.Equal(t, obs, d.Observations)

	stored := store.loans["loan-1"]
	require.NotNil(t, stored.DueDate)
	assert.Equal(t, newDue, *stored.DueDate)
	assert.Equal(t, obs, stored.Observations)
}

func TestLoanUpdateLeavesOmittedFieldsUnchanged(t *testing.T) {
	due := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)
	a, store := loanAppFixture(
		entity.NewLoan("loan-1", "p-1", "r-1", "Ana", "Atlas", due.AddDate(0, 0, -14), &due, "fragile copy"))

	_, err := a.Update(context.Background(), "loan-1", &cqe.UpdateLoanReq{})

	require.NoError(t, err)
	stored := store.loans["loan-1"]
	require.NotNil(t, stored.DueDate)
	assert.Equal(t, due, *stored.DueDate)
	assert.Equal(t, "fragile copy", stored.Observations)
}

func TestLoanUpdateRejectsClosedLoans(t *testing.T) {
	due := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)
	closed := entity.NewLoan("loan-1", "p-1", "r-1", "Ana", "Atlas", due.AddDate(0, 0, -14), &due, "")
	closed.Status = entity.LoanStatusReturned
	a, _ := loanAppFixture(closed)

	newDue := due.AddDate(0, 0, 7)
	_, err := a.Update(context.Background(), "loan-1", &cqe.UpdateLoanReq{DueDate: &newDue})

	assert.ErrorIs(t, err, errno.ErrLoanNotReturnable)
}

func TestLoanUpdateUnknownLoan(t *testing.T) {
	a, _ := loanAppFixture()

	_, err := a.Update(context.Background(), "missing", &cqe.UpdateLoanReq{})

	assert.Error(t, err)
}
