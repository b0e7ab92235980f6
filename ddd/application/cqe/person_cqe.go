package cqe

// ListPersonsReq is the paged person listing query.
type ListPersonsReq struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Search   string `form:"search"`
	Type     string `form:"type"`
}

func (r *ListPersonsReq) Normalize() {
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.PageSize <= 0 || r.PageSize > 100 {
		r.PageSize = 20
	}
}

// CreatePersonReq creates a library member.
type CreatePersonReq struct {
	FullName       string `json:"full_name"`
	DocumentNumber string `json:"document_number"`
	Type           string `json:"type"`
	Grade          string `json:"grade,omitempty"`
}

func (r *CreatePersonReq) Validate() bool {
	if r == nil {
		return false
	}
	if r.Type != "student" && r.Type != "teacher" {
		return false
	}
	return r.FullName != "" && r.DocumentNumber != ""
}

// UpdatePersonReq carries the editable person fields. Nil pointers mean
// "leave unchanged".
type UpdatePersonReq struct {
	FullName *string `json:"full_name,omitempty"`
	Grade    *string `json:"grade,omitempty"`
	Active   *bool   `json:"active,omitempty"`
}
