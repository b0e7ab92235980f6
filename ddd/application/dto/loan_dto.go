package dto

import (
	"time"

	"biblioteca-service/ddd/domain/entity"
)

// LoanDto is the loan view model exposed over HTTP.
type LoanDto struct {
	ID            string     `json:"id"`
	PersonID      string     `json:"person_id"`
	ResourceID    string     `json:"resource_id"`
	PersonName    string     `json:"person_name,omitempty"`
	ResourceTitle string     `json:"resource_title,omitempty"`
	LoanDate      time.Time  `json:"loan_date"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	ReturnedAt    *time.Time `json:"returned_at,omitempty"`
	Status        string     `json:"status"`
	Observations  string     `json:"observations,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ListLoansResponse is a paged loan listing.
type ListLoansResponse struct {
	Loans []LoanDto `json:"loans"`
	Total int64     `json:"total"`
}

// NewLoanDto maps a domain loan to its view model.
func NewLoanDto(l *entity.Loan) LoanDto {
	return LoanDto{
		ID:            l.ID,
		PersonID:      l.PersonID,
		ResourceID:    l.ResourceID,
		PersonName:    l.PersonName,
		ResourceTitle: l.ResourceTitle,
		LoanDate:      l.LoanDate,
		DueDate:       l.DueDate,
		ReturnedAt:    l.ReturnedAt,
		Status:        l.Status,
		Observations:  l.Observations,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}
