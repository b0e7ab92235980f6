package job

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biblioteca-service/ddd/application/dto"
	"biblioteca-service/ddd/domain/entity"
	drepo "biblioteca-service/ddd/domain/repo"
	"biblioteca-service/pkg/config"
)

type stubLoanRepo struct {
	relevant    []*entity.Loan
	markedIDs   []string
	markedCalls int
}

func (s *stubLoanRepo) Create(ctx context.Context, l *entity.Loan) error { return nil }
func (s *stubLoanRepo) GetByID(ctx context.Context, id string) (*entity.Loan, error) {
	return nil, nil
}
func (s *stubLoanRepo) List(ctx context.Context, filter drepo.LoanFilter, offset, limit int) ([]*entity.Loan, int64, error) {
	return nil, 0, nil
}
func (s *stubLoanRepo) ListRelevant(ctx context.Context) ([]*entity.Loan, error) {
	return s.relevant, nil
}
func (s *stubLoanRepo) Update(ctx context.Context, l *entity.Loan) error { return nil }
func (s *stubLoanRepo) MarkOverdue(ctx context.Context, ids []string) error {
	s.markedCalls++
	s.markedIDs = append(s.markedIDs, ids...)
	return nil
}
func (s *stubLoanRepo) Delete(ctx context.Context, id string) error { return nil }
func (s *stubLoanRepo) CountByStatus(ctx context.Context) (map[string]int64, error) {
	return nil, nil
}
func (s *stubLoanRepo) ListForReport(ctx context.Context, status string, from, to *time.Time) ([]*entity.Loan, error) {
	return nil, nil
}

type stubNotificationApp struct {
	refreshes int
}

func (s *stubNotificationApp) List(ctx context.Context) (*dto.NotificationsResponse, error) {
	return &dto.NotificationsResponse{}, nil
}

func (s *stubNotificationApp) Refresh(ctx context.Context) (*dto.NotificationsResponse, error) {
	s.refreshes++
	return &dto.NotificationsResponse{}, nil
}

func sweepNow() time.Time {
	return time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC)
}

func sweepLoan(id string, daysUntilDue int, status string) *entity.Loan {
	due := sweepNow().AddDate(0, 0, daysUntilDue)
	return &entity.Loan{
		ID:            id,
		PersonName:    "Maria Lopez",
		ResourceTitle: "Matemáticas 7",
		DueDate:       &due,
		Status:        status,
	}
}

func newTestSweeper(repo *stubLoanRepo, napp *stubNotificationApp) *Sweeper {
	config.SetGlobalConfig(&config.Config{
		Notification: config.NotificationConfig{
			ExpiringWindowDays: 3,
			SweepInterval:      time.Hour,
			CacheTTL:           30 * time.Second,
		},
	})
	return &Sweeper{
		loans:         repo,
		notifications: napp,
		interval:      time.Hour,
		now:           sweepNow,
	}
}

func TestSweepMarksPastDueActiveLoansOverdue(t *testing.T) {
	repo := &stubLoanRepo{relevant: []*entity.Loan{
		sweepLoan("late-active", -2, entity.LoanStatusActive),
		sweepLoan("late-already", -5, entity.LoanStatusOverdue),
		sweepLoan("on-time", 1, entity.LoanStatusActive),
	}}
	napp := &stubNotificationApp{}
	s := newTestSweeper(repo, napp)

	s.sweep(context.Background())

	// Only the active past-due loan gets flipped; the one already
	// overdue is left alone.
	assert.Equal(t, []string{"late-active"}, repo.markedIDs)
	assert.Equal(t, 1, napp.refreshes)
}

func TestSweepSkipsRefreshWhenNothingChanged(t *testing.T) {
	repo := &stubLoanRepo{relevant: []*entity.Loan{
		sweepLoan("same", -1, entity.LoanStatusOverdue),
	}}
	napp := &stubNotificationApp{}
	s := newTestSweeper(repo, napp)

	s.sweep(context.Background())
	s.sweep(context.Background())

	require.Equal(t, 1, napp.refreshes)
}

func TestSweepRefreshesWhenSetChanges(t *testing.T) {
	repo := &stubLoanRepo{relevant: []*entity.Loan{
		sweepLoan("a", -1, entity.LoanStatusOverdue),
	}}
	napp := &stubNotificationApp{}
	s := newTestSweeper(repo, napp)

	s.sweep(context.Background())
	repo.relevant = append(repo.relevant, sweepLoan("b", 2, entity.LoanStatusActive))
	s.sweep(context.Background())

	assert.Equal(t, 2, napp.refreshes)
}

func TestSweepNoOverdueNoMark(t *testing.T) {
	repo := &stubLoanRepo{relevant: []*entity.Loan{
		sweepLoan("fresh", 10, entity.LoanStatusActive),
	}}
	napp := &stubNotificationApp{}
	s := newTestSweeper(repo, napp)

	s.sweep(context.Background())

	assert.Zero(t, repo.markedCalls)
}
