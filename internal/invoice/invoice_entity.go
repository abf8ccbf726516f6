package invoice

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Invoice struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	EntityKey     string    `gorm:"type:varchar(30);not null;index:idx_entity_number,unique"`
	InvoiceNumber string    `gorm:"type:varchar(30);not null;index:idx_entity_number,unique"`

	InvoiceDate time.Time `gorm:"type:date;not null"`
	DueDate     time.Time `gorm:"type:date;not null"`

	BillToName    string `gorm:"type:varchar(255);not null"`
	BillToAddress string `gorm:"type:text"`
	BillToEmail   string `gorm:"type:varchar(255)"`
	BillToPhone   string `gorm:"type:varchar(30)"`

	PaymentMethod int     `gorm:"not null;default:2"`
	Note          string  `gorm:"type:text"`
	BankNote      string  `gorm:"type:text"`
	Total         float64 `gorm:"type:numeric(14,2);not null;default:0"`

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

type InvoiceItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	InvoiceID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Description string    `gorm:"type:text;not null"`
	Quantity    int       `gorm:"not null;default:1"`
	Price       float64   `gorm:"type:numeric(14,2);not null;default:0"`
	CreatedAt   time.Time
}
