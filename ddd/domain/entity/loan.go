package entity

import "time"

// Loan statuses as stored in the loans table. The backend owns the
// closed set; values outside it are ignored by the notification deriver.
const (
	LoanStatusActive   = "active"
	LoanStatusOverdue  = "overdue"
	LoanStatusReturned = "returned"
	LoanStatusLost     = "lost"
)

// Loan is the aggregate root for a borrowing of a library resource.
// PersonName and ResourceTitle are denormalized display fields; either
// may be empty when the related record was removed.
type Loan struct {
	ID            string
	PersonID      string
	ResourceID    string
	PersonName    string
	ResourceTitle string
	LoanDate      time.Time
	DueDate       *time.Time
	ReturnedAt    *time.Time
	Status        string
	Observations  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewLoan creates an active loan starting now with the given due date.
func NewLoan(id, personID, resourceID, personName, resourceTitle string, loanDate time.Time, dueDate *time.Time, observations string) *Loan {
	return &Loan{
		ID:            id,
		PersonID:      personID,
		ResourceID:    resourceID,
		PersonName:    personName,
		ResourceTitle: resourceTitle,
		LoanDate:      loanDate,
		DueDate:       dueDate,
		Status:        LoanStatusActive,
		Observations:  observations,
	}
}

// Returnable reports whether the loan can still be closed out.
func (l *Loan) Returnable() bool {
	return l.Status == LoanStatusActive || l.Status == LoanStatusOverdue
}
