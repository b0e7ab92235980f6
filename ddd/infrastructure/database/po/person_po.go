package po

import "time"

// Person is the persistence object for the people table.
type Person struct {
	ID             string    `gorm:"column:id;primaryKey;type:char(36)"`
	FullName       string    `gorm:"column:full_name"`
	DocumentNumber string    `gorm:"column:document_number;uniqueIndex"`
	Type           string    `gorm:"column:type;index"`
	Grade          string    `gorm:"column:grade"`
	Active         bool      `gorm:"column:active"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (Person) TableName() string {
	return "people"
}
