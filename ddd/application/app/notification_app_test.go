package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biblioteca-service/ddd/application/dto"
	"biblioteca-service/ddd/domain/entity"
	"biblioteca-service/ddd/domain/notify"
	drepo "biblioteca-service/ddd/domain/repo"
	"biblioteca-service/pkg/config"
)

type fakeLoanRepo struct {
	relevant []*entity.Loan
	err      error
}

func (f *fakeLoanRepo) Create(ctx context.Context, l *entity.Loan) error { return nil }
func (f *fakeLoanRepo) GetByID(ctx context.Context, id string) (*entity.Loan, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeLoanRepo) List(ctx context.Context, filter drepo.LoanFilter, offset, limit int) ([]*entity.Loan, int64, error) {
	return nil, 0, nil
}
func (f *fakeLoanRepo) ListRelevant(ctx context.Context) ([]*entity.Loan, error) {
	return f.relevant, f.err
}
func (f *fakeLoanRepo) Update(ctx context.Context, l *entity.Loan) error    { return nil }
func (f *fakeLoanRepo) MarkOverdue(ctx context.Context, ids []string) error { return nil }
func (f *fakeLoanRepo) Delete(ctx context.Context, id string) error         { return nil }
func (f *fakeLoanRepo) CountByStatus(ctx context.Context) (map[string]int64, error) {
	return nil, nil
}
func (f *fakeLoanRepo) ListForReport(ctx context.Context, status string, from, to *time.Time) ([]*entity.Loan, error) {
	return nil, nil
}

type fakeCache struct {
	stored  *dto.NotificationsResponse
	hits    int
	sets    int
	invalid int
}

func (f *fakeCache) Get(ctx context.Context) (*dto.NotificationsResponse, bool) {
	if f.stored == nil {
		return nil, false
	}
	f.hits++
	return f.stored, true
}

func (f *fakeCache) Set(ctx context.Context, resp *dto.NotificationsResponse) {
	f.sets++
	f.stored = resp
}

func (f *fakeCache) Invalidate(ctx context.Context) {
	f.invalid++
	f.stored = nil
}

func setupTestConfig(t *testing.T) {
	t.Helper()
	config.SetGlobalConfig(&config.Config{
		Notification: config.NotificationConfig{
			ExpiringWindowDays: 3,
			SweepInterval:      time.Hour,
			CacheTTL:           30 * time.Second,
		},
	})
}

func fixedNow() time.Time {
	return time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
}

func overdueLoan(id string, daysLate int) *entity.Loan {
	due := fixedNow().AddDate(0, 0, -daysLate)
	return &entity.Loan{
		ID:            id,
		PersonName:    "Carlos Ruiz",
		ResourceTitle: "El principito",
		DueDate:       &due,
		Status:        entity.LoanStatusActive,
	}
}

func TestNotificationAppListDerivesOnCacheMiss(t *testing.T) {
	setupTestConfig(t)
	repo := &fakeLoanRepo{relevant: []*entity.Loan{overdueLoan("L1", 4)}}
	c := &fakeCache{}
	a := newNotificationApp(repo, c, fixedNow)

	resp, err := a.List(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, "overdue-L1", resp.Notifications[0].ID)
	assert.Equal(t, 4, resp.Notifications[0].DaysValue)
	assert.Equal(t, notify.Stats{Total: 1, OverdueCount: 1}, resp.Stats)
	assert.Equal(t, 1, c.sets)
}

func TestNotificationAppListServesCachedSnapshot(t *testing.T) {
	setupTestConfig(t)
	repo := &fakeLoanRepo{err: errors.New("db down")}
	c := &fakeCache{stored: &dto.NotificationsResponse{
		Stats: notify.Stats{Total: 2, OverdueCount: 2},
	}}
	a := newNotificationApp(repo, c, fixedNow)

	resp, err := a.List(context.Background())

	// Repo would fail; the cached snapshot short-circuits it.
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Stats.Total)
	assert.Equal(t, 1, c.hits)
}

func TestNotificationAppListPropagatesRepoError(t *testing.T) {
	setupTestConfig(t)
	repo := &fakeLoanRepo{err: errors.New("db down")}
	a := newNotificationApp(repo, &fakeCache{}, fixedNow)

	_, err := a.List(context.Background())

	assert.Error(t, err)
}

func TestNotificationAppRefreshBypassesCache(t *testing.T) {
	setupTestConfig(t)
	repo := &fakeLoanRepo{relevant: []*entity.Loan{overdueLoan("L2", 1)}}
	c := &fakeCache{stored: &dto.NotificationsResponse{
		Stats: notify.Stats{Total: 99, OverdueCount: 99},
	}}
	a := newNotificationApp(repo, c, fixedNow)

	resp, err := a.Refresh(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Stats.Total)
	// Stale snapshot replaced, not served.
	assert.Equal(t, 0, c.hits)
	assert.Equal(t, 1, c.sets)
	assert.Equal(t, resp, c.stored)
}

func TestNotificationAppRefreshEmptySet(t *testing.T) {
	setupTestConfig(t)
	repo := &fakeLoanRepo{}
	c := &fakeCache{}
	a := newNotificationApp(repo, c, fixedNow)

	resp, err := a.Refresh(context.Background())

	require.NoError(t, err)
	assert.Empty(t, resp.Notifications)
	assert.Equal(t, notify.Stats{}, resp.Stats)
}
