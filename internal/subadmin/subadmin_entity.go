package subadmin

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subadmin is a delegated login tied to an employee, carrying the permission
// flags the user-access screen granted. Flags are stored as a name → 0/1 map.
type Subadmin struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	SubadminID   string    `gorm:"type:varchar(20);uniqueIndex"`
	EmployeeID   string    `gorm:"type:varchar(20);index"`
	Username     string    `gorm:"type:varchar(80);uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(100)"`
	Permissions  []byte    `gorm:"type:jsonb"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Subadmin) TableName() string {
	return "subadmins"
}
