package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nutrilog/apperrors"
	"nutrilog/models"
)

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, userLookupError(err)
	}
	return &user, nil
}

func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, userLookupError(err)
	}
	return &user, nil
}

func (r *GormUserRepository) UpdateDailyRate(ctx context.Context, id uuid.UUID, update DailyRateUpdate) (*models.User, error) {
	var user models.User
	res := r.db.WithContext(ctx).
		Model(&user).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"height":         update.Profile.Height,
			"age":            update.Profile.Age,
			"current_weight": update.Profile.CurrentWeight,
			"desired_weight": update.Profile.DesiredWeight,
			"blood_type":     int(update.Profile.BloodType),
			"daily_rate":     update.DailyRate,
			"not_rec_food":   datatypes.NewJSONSlice(update.NotRecFood),
		})
	if res.Error != nil {
		return nil, apperrors.NewInternal("update daily rate", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewNotFound("User not found")
	}
	return &user, nil
}

func userLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewNotFound("User not found")
	}
	return apperrors.NewInternal("find user", err)
}
