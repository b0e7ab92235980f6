package dto

import (
	"time"

	"biblioteca-service/ddd/domain/entity"
)

// ResourceDto is the resource view model exposed over HTTP.
type ResourceDto struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author,omitempty"`
	Category    string    `json:"category,omitempty"`
	ISBN        string    `json:"isbn,omitempty"`
	TotalCopies int       `json:"total_copies"`
	Available   int       `json:"available"`
	State       string    `json:"state"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListResourcesResponse is a paged resource listing.
type ListResourcesResponse struct {
	Resources []ResourceDto `json:"resources"`
	Total     int64         `json:"total"`
}

// NewResourceDto maps a domain resource to its view model.
func NewResourceDto(r *entity.Resource) ResourceDto {
	return ResourceDto{
		ID:          r.ID,
		Title:       r.Title,
		Author:      r.Author,
		Category:    r.Category,
		ISBN:        r.ISBN,
		TotalCopies: r.TotalCopies,
		Available:   r.Available,
		State:       r.State,
		Active:      r.Active,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
