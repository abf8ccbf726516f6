package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BankDetails struct {
	AccountNumber string `gorm:"column:account_number"`
	IFSC          string `gorm:"column:ifsc"`
	BankName      string `gorm:"column:bank_name"`
}

type Address struct {
	Line1 string `gorm:"column:line1"`
	City  string `gorm:"column:city"`
	State string `gorm:"column:state"`
	Pin   string `gorm:"column:pin"`
}

type Employee struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID string    `gorm:"type:varchar(20);uniqueIndex;not null"` // human-facing, e.g. EMC01010
	Name       string    `gorm:"type:varchar(255);not null"`
	Email      string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone      string    `gorm:"type:varchar(30)"`

	DOB           time.Time `gorm:"type:date"`
	DateOfJoining time.Time `gorm:"type:date"`

	AdharNumber string `gorm:"type:varchar(20)"`
	PANNumber   string `gorm:"type:varchar(20)"`

	Department  string `gorm:"type:varchar(120)"`
	Designation string `gorm:"type:varchar(120)"`

	// Salary dalam rupiah bulat; annual selalu diturunkan dari base.
	BaseSalary   int64 `gorm:"type:bigint;not null;default:0"`
	AnnualSalary int64 `gorm:"type:bigint;not null;default:0"`

	BankDetails BankDetails `gorm:"embedded;embeddedPrefix:bank_"`
	Address     Address     `gorm:"embedded;embeddedPrefix:addr_"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
