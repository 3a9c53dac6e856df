package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nutrilog/apperrors"
	"nutrilog/models"
)

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) FindByTitleKey(ctx context.Context, key string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where(models.TitleKeyExpr+" = ?", key).
		Order("id").
		Find(&products).Error
	if err != nil {
		return nil, apperrors.NewInternal("find products by title", err)
	}
	return products, nil
}

func (r *GormProductRepository) FindForbidden(ctx context.Context, bt models.BloodType) ([]models.Product, error) {
	col, err := bt.ForbiddenColumn()
	if err != nil {
		return nil, apperrors.NewValidation(err.Error())
	}

	var products []models.Product
	err = r.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: col}, Value: true}).
		Order("id").
		Find(&products).Error
	if err != nil {
		return nil, apperrors.NewInternal("find forbidden products", err)
	}
	return products, nil
}
