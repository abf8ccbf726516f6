package kpi

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KPI is one tracked project assignment. Start date and deadline are
// nullable: the onboarding record the consumer seeds has neither.
type KPI struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	KpiID        string    `gorm:"type:varchar(20);uniqueIndex"`
	EmployeeID   string    `gorm:"type:varchar(20);index"`
	EmployeeName string    `gorm:"type:varchar(150)"`
	ProjectName  string    `gorm:"type:varchar(200)"`
	StartDate    *time.Time
	Deadline     *time.Time
	Remark       string `gorm:"type:text"`
	Points       int
	Punches      []Punch `gorm:"foreignKey:KpiID;references:ID"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (KPI) TableName() string {
	return "kpis"
}

// Punch is one progress entry logged against a KPI.
type Punch struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	KpiID     uuid.UUID `gorm:"type:uuid;index"`
	PunchDate time.Time
	Remark    string `gorm:"type:text"`
	Status    string `gorm:"type:varchar(40)"`
	CreatedAt time.Time
}

func (Punch) TableName() string {
	return "kpi_punches"
}
