package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nutrilog/apperrors"
	"nutrilog/models"
)

type GormEatenProductRepository struct {
	db *gorm.DB
}

func NewGormEatenProductRepository(db *gorm.DB) *GormEatenProductRepository {
	return &GormEatenProductRepository{db: db}
}

func (r *GormEatenProductRepository) Create(ctx context.Context, entry *models.EatenProduct) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return apperrors.NewInternal("create eaten product", err)
	}
	return nil
}

func (r *GormEatenProductRepository) FindByOwner(ctx context.Context, owner uuid.UUID) ([]models.EatenProduct, error) {
	var entries []models.EatenProduct
	err := r.db.WithContext(ctx).
		Where("owner = ?", owner).
		Find(&entries).Error
	if err != nil {
		return nil, apperrors.NewInternal("find eaten products", err)
	}
	return entries, nil
}

// DeleteByIDAndOwner issues one DELETE ... WHERE id AND owner RETURNING *,
// so ownership is checked by the same statement that removes the row.
func (r *GormEatenProductRepository) DeleteByIDAndOwner(ctx context.Context, id, owner uuid.UUID) (*models.EatenProduct, error) {
	var entry models.EatenProduct
	res := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ? AND owner = ?", id, owner).
		Delete(&entry)
	if res.Error != nil {
		return nil, apperrors.NewInternal("delete eaten product", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewNotFound("Product not found")
	}
	return &entry, nil
}
