package app

import (
	"context"
	"time"

	"biblioteca-service/ddd/application/dto"
	"biblioteca-service/ddd/domain/entity"
	"biblioteca-service/ddd/domain/notify"
	drepo "biblioteca-service/ddd/domain/repo"
	"biblioteca-service/ddd/infrastructure/cache"
	"biblioteca-service/ddd/infrastructure/database/persistence"
	"biblioteca-service/pkg/config"
	"biblioteca-service/pkg/sse"
)

// NotificationTopic is the SSE topic dashboard clients subscribe to.
const NotificationTopic = "notifications"

// SSE event types emitted by the notification subsystem.
const (
	EventNotificationRefreshed = "notification.refreshed"
)

// snapshotCache is the slice of NotificationCache this service needs;
// kept as an interface so tests can fake it.
type snapshotCache interface {
	Get(ctx context.Context) (*dto.NotificationsResponse, bool)
	Set(ctx context.Context, resp *dto.NotificationsResponse)
	Invalidate(ctx context.Context)
}

// NotificationApp orchestrates the loan notification use cases.
type NotificationApp interface {
	// List returns the current notification set, served from the Redis
	// snapshot when fresh, otherwise derived from the loan table.
	List(ctx context.Context) (*dto.NotificationsResponse, error)
	// Refresh forces a re-derivation, replaces the snapshot and pushes
	// an SSE event so open dashboards update their badge.
	Refresh(ctx context.Context) (*dto.NotificationsResponse, error)
}

type notificationAppImpl struct {
	loans drepo.LoanRepository
	cache snapshotCache
	now   func() time.Time
}

// DefaultNotificationApp returns the default application service.
func DefaultNotificationApp() NotificationApp {
	cfg := config.GetGlobalConfig()
	return &notificationAppImpl{
		loans: persistence.NewLoanRepository(),
		cache: cache.NewNotificationCache(cfg.Notification.CacheTTL),
		now:   time.Now,
	}
}

func newNotificationApp(loans drepo.LoanRepository, c snapshotCache, now func() time.Time) *notificationAppImpl {
	return &notificationAppImpl{loans: loans, cache: c, now: now}
}

func (a *notificationAppImpl) List(ctx context.Context) (*dto.NotificationsResponse, error) {
	if cached, ok := a.cache.Get(ctx); ok {
		return cached, nil
	}

	resp, err := a.derive(ctx)
	if err != nil {
		return nil, err
	}
	a.cache.Set(ctx, resp)
	return resp, nil
}

func (a *notificationAppImpl) Refresh(ctx context.Context) (*dto.NotificationsResponse, error) {
	resp, err := a.derive(ctx)
	if err != nil {
		return nil, err
	}
	a.cache.Set(ctx, resp)

	sse.Publish(NotificationTopic, sse.Event{
		Type: EventNotificationRefreshed,
		Data: resp.Stats,
	})
	return resp, nil
}

// derive loads every relevant loan and runs the pure deriver over it
// with the configured expiring window.
func (a *notificationAppImpl) derive(ctx context.Context) (*dto.NotificationsResponse, error) {
	loanPtrs, err := a.loans.ListRelevant(ctx)
	if err != nil {
		return nil, err
	}

	loans := make([]entity.Loan, 0, len(loanPtrs))
	for _, l := range loanPtrs {
		if l != nil {
			loans = append(loans, *l)
		}
	}

	window := config.GetGlobalConfig().Notification.ExpiringWindowDays
	notifications, stats := notify.Derive(loans, a.now(), window)

	return &dto.NotificationsResponse{
		Notifications: notifications,
		Stats:         stats,
	}, nil
}
