package payslip

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payslip_repo.go -destination=mock/payslip_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, slip *Payslip) error
	FindAll(ctx context.Context) ([]Payslip, error)
	FindByPayslipID(ctx context.Context, payslipID string) (*Payslip, error)
	Delete(ctx context.Context, payslipID string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, slip *Payslip) error {
	return r.db.WithContext(ctx).Create(slip).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Payslip, error) {
	var slips []Payslip
	err := r.db.WithContext(ctx).
		Order("generated_on DESC").
		Find(&slips).Error
	return slips, err
}

func (r *repository) FindByPayslipID(ctx context.Context, payslipID string) (*Payslip, error) {
	var slip Payslip
	err := r.db.WithContext(ctx).
		First(&slip, "payslip_id = ?", payslipID).Error
	return &slip, err
}

func (r *repository) Delete(ctx context.Context, payslipID string) error {
	return r.db.WithContext(ctx).
		Delete(&Payslip{}, "payslip_id = ?", payslipID).Error
}
