package cqe

import "time"

// ListLoansReq is the paged loan listing query.
type ListLoansReq struct {
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
	Status     string `form:"status"`
	PersonID   string `form:"person_id"`
	ResourceID string `form:"resource_id"`
}

func (r *ListLoansReq) Normalize() {
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.PageSize <= 0 || r.PageSize > 100 {
		r.PageSize = 20
	}
}

// CreateLoanReq opens a loan. DueDate is optional; when absent the
// configured default loan period is applied.
type CreateLoanReq struct {
	PersonID     string     `json:"person_id"`
	ResourceID   string     `json:"resource_id"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	Observations string     `json:"observations,omitempty"`
}

func (r *CreateLoanReq) Validate() bool {
	return r != nil && r.PersonID != "" && r.ResourceID != ""
}

// UpdateLoanReq carries the editable fields of an open loan. Nil
// pointers mean "leave unchanged".
type UpdateLoanReq struct {
	DueDate      *time.Time `json:"due_date,omitempty"`
	Observations *string    `json:"observations,omitempty"`
}

// ReturnLoanReq closes a loan.
type ReturnLoanReq struct {
	Observations string `json:"observations,omitempty"`
}

// MarkLostReq records a loan as lost.
type MarkLostReq struct {
	Observations string `json:"observations,omitempty"`
}
