package subadmin

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=subadmin_repo.go -destination=mock/subadmin_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, sub *Subadmin) error
	FindAll(ctx context.Context) ([]Subadmin, error)
	FindBySubadminID(ctx context.Context, subadminID string) (*Subadmin, error)
	FindByUsername(ctx context.Context, username string) (*Subadmin, error)
	Delete(ctx context.Context, subadminID string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, sub *Subadmin) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Subadmin, error) {
	var subs []Subadmin
	err := r.db.WithContext(ctx).
		Order("username ASC").
		Find(&subs).Error
	return subs, err
}

func (r *repository) FindBySubadminID(ctx context.Context, subadminID string) (*Subadmin, error) {
	var sub Subadmin
	err := r.db.WithContext(ctx).
		First(&sub, "subadmin_id = ?", subadminID).Error
	return &sub, err
}

func (r *repository) FindByUsername(ctx context.Context, username string) (*Subadmin, error) {
	var sub Subadmin
	err := r.db.WithContext(ctx).
		First(&sub, "username = ?", username).Error
	return &sub, err
}

func (r *repository) Delete(ctx context.Context, subadminID string) error {
	return r.db.WithContext(ctx).
		Delete(&Subadmin{}, "subadmin_id = ?", subadminID).Error
}
