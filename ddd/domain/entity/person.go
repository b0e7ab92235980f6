package entity

import "time"

// Person types accepted by the registry.
const (
	PersonTypeStudent = "student"
	PersonTypeTeacher = "teacher"
)

// Person represents a library member (student or teacher).
type Person struct {
	ID             string
	FullName       string
	DocumentNumber string
	Type           string
	Grade          string
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewPerson creates an active person record.
func NewPerson(id, fullName, documentNumber, personType, grade string) *Person {
	return &Person{
		ID:             id,
		FullName:       fullName,
		DocumentNumber: documentNumber,
		Type:           personType,
		Grade:          grade,
		Active:         true,
	}
}
