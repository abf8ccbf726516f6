package auth

import (
	"time"

	"github.com/google/uuid"
)

// Admin is the owner login. There is normally exactly one row, seeded from
// the environment on first boot.
type Admin struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	AdminID      string    `gorm:"type:varchar(20);uniqueIndex"`
	Email        string    `gorm:"type:varchar(150);uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(100)"`
	EmployeeID   string    `gorm:"type:varchar(20)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Admin) TableName() string {
	return "admins"
}
