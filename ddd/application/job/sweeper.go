package job

import (
	"context"
	"encoding/json"
	"time"

	"biblioteca-service/ddd/application/app"
	"biblioteca-service/ddd/domain/entity"
	"biblioteca-service/ddd/domain/notify"
	drepo "biblioteca-service/ddd/domain/repo"
	"biblioteca-service/ddd/infrastructure/database/persistence"
	"biblioteca-service/pkg/config"
	"biblioteca-service/pkg/encode"
	"biblioteca-service/pkg/logger"
)

// Sweeper periodically reconciles loan statuses with the calendar and
// refreshes the notification snapshot. It is the only writer that flips
// active loans to overdue; the deriver itself never mutates anything.
type Sweeper struct {
	loans         drepo.LoanRepository
	notifications app.NotificationApp
	interval      time.Duration
	now           func() time.Time

	lastHash string
}

// NewSweeper builds a sweeper with the configured interval.
func NewSweeper() *Sweeper {
	return &Sweeper{
		loans:         persistence.NewLoanRepository(),
		notifications: app.DefaultNotificationApp(),
		interval:      config.GetGlobalConfig().Notification.SweepInterval,
		now:           time.Now,
	}
}

// Start runs the sweep loop until ctx is cancelled. The first sweep
// happens immediately so a restarted instance catches up right away.
func (s *Sweeper) Start(ctx context.Context) {
	go func() {
		s.sweep(ctx)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				logger.Infof("sweeper: stopped")
				return
			case <-ticker.C:
				s.sweep(ctx)
			}
		}
	}()
}

func (s *Sweeper) sweep(ctx context.Context) {
	logger.Infof("sweeper: checking for overdue and expiring loans")

	loanPtrs, err := s.loans.ListRelevant(ctx)
	if err != nil {
		logger.Errorf("sweeper: loading loans failed error=%v", err)
		return
	}

	loans := make([]entity.Loan, 0, len(loanPtrs))
	for _, l := range loanPtrs {
		if l != nil {
			loans = append(loans, *l)
		}
	}

	window := config.GetGlobalConfig().Notification.ExpiringWindowDays
	notifications, stats := notify.Derive(loans, s.now(), window)

	if ids := s.overdueActiveIDs(loans, notifications); len(ids) > 0 {
		if err := s.loans.MarkOverdue(ctx, ids); err != nil {
			logger.Errorf("sweeper: marking loans overdue failed count=%d error=%v", len(ids), err)
		} else {
			logger.Infof("sweeper: marked loans overdue count=%d", len(ids))
		}
	}

	// Only push an SSE refresh when the derived set actually changed;
	// the hash guards open dashboards against hourly no-op refreshes.
	hash := snapshotHash(notifications)
	if hash == s.lastHash {
		return
	}
	s.lastHash = hash

	if _, err := s.notifications.Refresh(ctx); err != nil {
		logger.Errorf("sweeper: notification refresh failed error=%v", err)
		return
	}
	logger.Infof("sweeper: notification snapshot refreshed total=%d overdue=%d expiring=%d",
		stats.Total, stats.OverdueCount, stats.ExpiringCount)
}

// overdueActiveIDs picks the loans the deriver classified overdue that
// are still recorded as active in the DB.
func (s *Sweeper) overdueActiveIDs(loans []entity.Loan, notifications []notify.Notification) []string {
	statusByID := make(map[string]string, len(loans))
	for i := range loans {
		statusByID[loans[i].ID] = loans[i].Status
	}

	var ids []string
	for i := range notifications {
		n := &notifications[i]
		if n.Kind != notify.KindOverdue {
			continue
		}
		if statusByID[n.LoanID] == entity.LoanStatusActive {
			ids = append(ids, n.LoanID)
		}
	}
	return ids
}

func snapshotHash(notifications []notify.Notification) string {
	body, err := json.Marshal(notifications)
	if err != nil {
		return ""
	}
	return encode.CalMd5(body)
}
