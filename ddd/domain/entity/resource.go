package entity

import "time"

// Physical states a resource can be registered with.
const (
	ResourceStateGood         = "good"
	ResourceStateDeteriorated = "deteriorated"
	ResourceStateDamaged      = "damaged"
	ResourceStateLost         = "lost"
)

// Resource represents a catalog item (book, magazine, game...).
type Resource struct {
	ID          string
	Title       string
	Author      string
	Category    string
	ISBN        string
	TotalCopies int
	Available   int
	State       string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewResource creates an active resource with all copies available.
func NewResource(id, title, author, category, isbn string, totalCopies int) *Resource {
	if totalCopies < 1 {
		totalCopies = 1
	}
	return &Resource{
		ID:          id,
		Title:       title,
		Author:      author,
		Category:    category,
		ISBN:        isbn,
		TotalCopies: totalCopies,
		Available:   totalCopies,
		State:       ResourceStateGood,
		Active:      true,
	}
}

// AdjustAvailable moves the available counter by delta, clamped to
// [0, TotalCopies].
func (r *Resource) AdjustAvailable(delta int) {
	r.Available += delta
	if r.Available < 0 {
		r.Available = 0
	}
	if r.Available > r.TotalCopies {
		r.Available = r.TotalCopies
	}
}
