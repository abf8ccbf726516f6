package settings

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=settings_repo.go -destination=mock/settings_repo_mock.go -package=mock
type Repository interface {
	ListInvoice(ctx context.Context) ([]InvoiceSettings, error)
	FindInvoiceBySettingsID(ctx context.Context, settingsID string) (*InvoiceSettings, error)
	FindInvoiceByType(ctx context.Context, invoiceType string) (*InvoiceSettings, error)
	FindInvoiceByEntityKey(ctx context.Context, entityKey string) (*InvoiceSettings, error)
	SaveInvoice(ctx context.Context, row *InvoiceSettings) error
	FindSalary(ctx context.Context) (*SalarySettings, error)
	SaveSalary(ctx context.Context, row *SalarySettings) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListInvoice(ctx context.Context) ([]InvoiceSettings, error) {
	var rows []InvoiceSettings
	err := r.db.WithContext(ctx).
		Order("invoice_type ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindInvoiceBySettingsID(ctx context.Context, settingsID string) (*InvoiceSettings, error) {
	var row InvoiceSettings
	err := r.db.WithContext(ctx).
		First(&row, "settings_id = ?", settingsID).Error
	return &row, err
}

func (r *repository) FindInvoiceByType(ctx context.Context, invoiceType string) (*InvoiceSettings, error) {
	var row InvoiceSettings
	err := r.db.WithContext(ctx).
		First(&row, "invoice_type = ?", invoiceType).Error
	return &row, err
}

func (r *repository) FindInvoiceByEntityKey(ctx context.Context, entityKey string) (*InvoiceSettings, error) {
	var row InvoiceSettings
	err := r.db.WithContext(ctx).
		First(&row, "entity_key = ?", entityKey).Error
	return &row, err
}

func (r *repository) SaveInvoice(ctx context.Context, row *InvoiceSettings) error {
	return r.db.WithContext(ctx).Save(row).Error
}

func (r *repository) FindSalary(ctx context.Context) (*SalarySettings, error) {
	var row SalarySettings
	err := r.db.WithContext(ctx).First(&row).Error
	return &row, err
}

func (r *repository) SaveSalary(ctx context.Context, row *SalarySettings) error {
	return r.db.WithContext(ctx).Save(row).Error
}
