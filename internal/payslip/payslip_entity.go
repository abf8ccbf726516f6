package payslip

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payslip keeps the generation history row plus a snapshot of the salary
// structure the PDF was built from, so Copy & Generate can prefill the form
// later.
type Payslip struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	PayslipID    string    `gorm:"type:varchar(20);uniqueIndex"`
	EmployeeID   string    `gorm:"type:varchar(20);index"`
	EmployeeName string    `gorm:"type:varchar(150)"`
	Month        int
	Year         int
	LOPDays      float64 `gorm:"column:lop_days"`
	TDS          float64 `gorm:"column:tds"`
	NetPay       float64 `gorm:"type:numeric(14,2)"`
	Components   []byte  `gorm:"type:jsonb"`
	GeneratedOn  time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Payslip) TableName() string {
	return "payslips"
}
