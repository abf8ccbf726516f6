package auth

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, admin *Admin) error
	FindByEmail(ctx context.Context, email string) (*Admin, error)
	FindByAdminID(ctx context.Context, adminID string) (*Admin, error)
	Update(ctx context.Context, admin *Admin) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Admin{}).Count(&n).Error
	return n, err
}

func (r *repository) Create(ctx context.Context, admin *Admin) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Admin, error) {
	var admin Admin
	err := r.db.WithContext(ctx).
		First(&admin, "email = ?", email).Error
	return &admin, err
}

func (r *repository) FindByAdminID(ctx context.Context, adminID string) (*Admin, error) {
	var admin Admin
	err := r.db.WithContext(ctx).
		First(&admin, "admin_id = ?", adminID).Error
	return &admin, err
}

func (r *repository) Update(ctx context.Context, admin *Admin) error {
	return r.db.WithContext(ctx).Save(admin).Error
}
