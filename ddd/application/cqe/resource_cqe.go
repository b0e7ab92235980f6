package cqe

// ListResourcesReq is the paged resource listing query.
type ListResourcesReq struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Search   string `form:"search"`
	Category string `form:"category"`
}

func (r *ListResourcesReq) Normalize() {
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.PageSize <= 0 || r.PageSize > 100 {
		r.PageSize = 20
	}
}

// CreateResourceReq registers a catalog item.
type CreateResourceReq struct {
	Title       string `json:"title"`
	Author      string `json:"author,omitempty"`
	Category    string `json:"category,omitempty"`
	ISBN        string `json:"isbn,omitempty"`
	TotalCopies int    `json:"total_copies"`
}

func (r *CreateResourceReq) Validate() bool {
	return r != nil && r.Title != ""
}

// UpdateResourceReq carries the editable resource fields.
type UpdateResourceReq struct {
	Title       *string `json:"title,omitempty"`
	Author      *string `json:"author,omitempty"`
	Category    *string `json:"category,omitempty"`
	ISBN        *string `json:"isbn,omitempty"`
	TotalCopies *int    `json:"total_copies,omitempty"`
	State       *string `json:"state,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}
