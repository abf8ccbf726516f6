package kpi

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=kpi_repo.go -destination=mock/kpi_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, kpi *KPI) error
	FindAll(ctx context.Context) ([]KPI, error)
	FindByEmployeeID(ctx context.Context, employeeID string) ([]KPI, error)
	FindByKpiID(ctx context.Context, kpiID string) (*KPI, error)
	Update(ctx context.Context, kpi *KPI) error
	AddPunch(ctx context.Context, punch *Punch) error
	Delete(ctx context.Context, kpiID string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, kpi *KPI) error {
	return r.db.WithContext(ctx).Create(kpi).Error
}

func (r *repository) FindAll(ctx context.Context) ([]KPI, error) {
	var kpis []KPI
	err := r.db.WithContext(ctx).
		Preload("Punches", func(db *gorm.DB) *gorm.DB {
			return db.Order("punch_date ASC")
		}).
		Find(&kpis).Error
	return kpis, err
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID string) ([]KPI, error) {
	var kpis []KPI
	err := r.db.WithContext(ctx).
		Preload("Punches", func(db *gorm.DB) *gorm.DB {
			return db.Order("punch_date ASC")
		}).
		Where("employee_id = ?", employeeID).
		Find(&kpis).Error
	return kpis, err
}

func (r *repository) FindByKpiID(ctx context.Context, kpiID string) (*KPI, error) {
	var kpi KPI
	err := r.db.WithContext(ctx).
		Preload("Punches", func(db *gorm.DB) *gorm.DB {
			return db.Order("punch_date ASC")
		}).
		First(&kpi, "kpi_id = ?", kpiID).Error
	return &kpi, err
}

func (r *repository) Update(ctx context.Context, kpi *KPI) error {
	return r.db.WithContext(ctx).
		Omit("Punches").
		Save(kpi).Error
}

func (r *repository) AddPunch(ctx context.Context, punch *Punch) error {
	return r.db.WithContext(ctx).Create(punch).Error
}

func (r *repository) Delete(ctx context.Context, kpiID string) error {
	return r.db.WithContext(ctx).
		Delete(&KPI{}, "kpi_id = ?", kpiID).Error
}
