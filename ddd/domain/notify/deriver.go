package notify

import (
	"sort"
	"time"

	"biblioteca-service/ddd/domain/entity"
)

// Notification kinds.
const (
	KindOverdue  = "overdue"
	KindExpiring = "expiring"
)

// DefaultExpiringWindowDays is how many days ahead of the due date a
// loan starts counting as "expiring". Overridable via config.
const DefaultExpiringWindowDays = 3

// Placeholder text used when a loan lost its denormalized display fields.
const (
	fallbackPersonName    = "Unspecified person"
	fallbackResourceTitle = "Unspecified resource"
)

// Notification is a derived, transient alert for one overdue or
// expiring loan. It is recomputed from scratch on every derivation and
// never persisted.
type Notification struct {
	ID            string     `json:"id"`
	Kind          string     `json:"kind"`
	DaysValue     int        `json:"days_value"`
	DueDate       *time.Time `json:"due_date"`
	PersonName    string     `json:"person_name"`
	ResourceTitle string     `json:"resource_title"`
	LoanID        string     `json:"loan_id"`
}

// Stats aggregates a derived notification set. Total is always the sum
// of the two counters.
type Stats struct {
	Total         int `json:"total"`
	OverdueCount  int `json:"overdue_count"`
	ExpiringCount int `json:"expiring_count"`
}

// Derive computes the notification set for the given loans at the given
// instant. It is pure and total: malformed loans (missing due date,
// status outside active/overdue) are silently skipped, never an error.
// The caller supplies now explicitly; the function never reads the clock.
//
// Ordering: every overdue notification precedes every expiring one, and
// within a kind notifications sort ascending by DaysValue. For overdue
// that means the least-overdue loan comes first; this mirrors the
// dashboard's historical behavior and is intentional.
func Derive(loans []entity.Loan, now time.Time, expiringWindowDays int) ([]Notification, Stats) {
	if expiringWindowDays < 0 {
		expiringWindowDays = DefaultExpiringWindowDays
	}

	today := truncateToDay(now)
	out := make([]Notification, 0, len(loans))

	for i := range loans {
		l := &loans[i]
		if l.Status != entity.LoanStatusActive && l.Status != entity.LoanStatusOverdue {
			continue
		}
		if l.DueDate == nil {
			continue
		}

		due := truncateToDay(*l.DueDate)
		daysDiff := int(due.Sub(today).Hours() / 24)

		var kind string
		var daysValue int
		switch {
		case daysDiff < 0:
			kind = KindOverdue
			daysValue = -daysDiff
		case daysDiff <= expiringWindowDays:
			kind = KindExpiring
			daysValue = daysDiff
		default:
			continue
		}

		out = append(out, Notification{
			ID:            kind + "-" + l.ID,
			Kind:          kind,
			DaysValue:     daysValue,
			DueDate:       l.DueDate,
			PersonName:    orFallback(l.PersonName, fallbackPersonName),
			ResourceTitle: orFallback(l.ResourceTitle, fallbackResourceTitle),
			LoanID:        l.ID,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind == KindOverdue
		}
		return out[i].DaysValue < out[j].DaysValue
	})

	stats := Stats{Total: len(out)}
	for i := range out {
		if out[i].Kind == KindOverdue {
			stats.OverdueCount++
		} else {
			stats.ExpiringCount++
		}
	}
	return out, stats
}

// truncateToDay drops the time-of-day component so differences are
// whole calendar days regardless of the hour either timestamp carries.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func orFallback(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
