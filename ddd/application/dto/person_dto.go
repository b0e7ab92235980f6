package dto

import (
	"time"

	"biblioteca-service/ddd/domain/entity"
)

// PersonDto is the person view model exposed over HTTP.
type PersonDto struct {
	ID             string    `json:"id"`
	FullName       string    `json:"full_name"`
	DocumentNumber string    `json:"document_number"`
	Type           string    `json:"type"`
	Grade          string    `json:"grade,omitempty"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ListPersonsResponse is a paged person listing.
type ListPersonsResponse struct {
	Persons []PersonDto `json:"persons"`
	Total   int64       `json:"total"`
}

// NewPersonDto maps a domain person to its view model.
func NewPersonDto(p *entity.Person) PersonDto {
	return PersonDto{
		ID:             p.ID,
		FullName:       p.FullName,
		DocumentNumber: p.DocumentNumber,
		Type:           p.Type,
		Grade:          p.Grade,
		Active:         p.Active,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
