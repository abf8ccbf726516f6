package invoice

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=invoice_repo.go -destination=mock/invoice_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, inv *Invoice) error
	FindAllByEntity(ctx context.Context, entityKey string) ([]Invoice, error)
	FindByID(ctx context.Context, entityKey, id string) (*Invoice, error)
	Delete(ctx context.Context, entityKey, id string) error
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

func (r *repository) Create(ctx context.Context, inv *Invoice) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *repository) FindAllByEntity(ctx context.Context, entityKey string) ([]Invoice, error) {
	var invs []Invoice
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("entity_key = ?", entityKey).
		Find(&invs).Error
	return invs, err
}

func (r *repository) FindByID(ctx context.Context, entityKey, id string) (*Invoice, error) {
	var inv Invoice
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("entity_key = ?", entityKey).
		First(&inv, "id = ?", id).Error
	return &inv, err
}

func (r *repository) Delete(ctx context.Context, entityKey, id string) error {
	return r.db.WithContext(ctx).
		Where("entity_key = ?", entityKey).
		Delete(&Invoice{}, "id = ?", id).Error
}
