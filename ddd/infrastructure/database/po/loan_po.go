package po

import "time"

// Loan is the persistence object for the loans table.
type Loan struct {
	ID            string     `gorm:"column:id;primaryKey;type:char(36)"`
	PersonID      string     `gorm:"column:person_id;type:char(36);index"`
	ResourceID    string     `gorm:"column:resource_id;type:char(36);index"`
	PersonName    string     `gorm:"column:person_name"`
	ResourceTitle string     `gorm:"column:resource_title"`
	LoanDate      time.Time  `gorm:"column:loan_date"`
	DueDate       *time.Time `gorm:"column:due_date;index"`
	ReturnedAt    *time.Time `gorm:"column:returned_at"`
	Status        string     `gorm:"column:status;index"`
	Observations  string     `gorm:"column:observations"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
}

func (Loan) TableName() string {
	return "loans"
}
