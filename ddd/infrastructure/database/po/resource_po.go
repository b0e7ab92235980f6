package po

import "time"

// Resource is the persistence object for the resources table.
type Resource struct {
	ID          string    `gorm:"column:id;primaryKey;type:char(36)"`
	Title       string    `gorm:"column:title;index"`
	Author      string    `gorm:"column:author"`
	Category    string    `gorm:"column:category;index"`
	ISBN        string    `gorm:"column:isbn"`
	TotalCopies int       `gorm:"column:total_copies"`
	Available   int       `gorm:"column:available"`
	State       string    `gorm:"column:state"`
	Active      bool      `gorm:"column:active"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (Resource) TableName() string {
	return "resources"
}
