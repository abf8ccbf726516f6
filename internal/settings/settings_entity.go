package settings

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceSettings holds one row per invoice type (one per business entity).
// The three blocks are free-form key/value sections the settings screen edits
// as a whole, so they are stored as JSON rather than flattened columns.
type InvoiceSettings struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	SettingsID    string    `gorm:"type:varchar(40);uniqueIndex"`
	InvoiceType   string    `gorm:"type:varchar(80);uniqueIndex"`
	EntityKey     string    `gorm:"type:varchar(40);index"`
	CompanyInfo   []byte    `gorm:"type:jsonb"`
	BankDetails   []byte    `gorm:"type:jsonb"`
	PayPalDetails []byte    `gorm:"type:jsonb"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (InvoiceSettings) TableName() string {
	return "invoice_settings"
}

// SalarySettings is a single-row table: the company block printed on every
// payslip.
type SalarySettings struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	SettingsID   string    `gorm:"type:varchar(40);uniqueIndex"`
	CompanyTitle string    `gorm:"type:varchar(120)"`
	CompanyName  string    `gorm:"type:varchar(120)"`
	AddressLine1 string    `gorm:"type:varchar(200)"`
	AddressLine2 string    `gorm:"type:varchar(200)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (SalarySettings) TableName() string {
	return "salary_settings"
}
