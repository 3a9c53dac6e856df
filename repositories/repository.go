package repositories

import (
	"context"

	"github.com/google/uuid"

	"nutrilog/models"
)

// ProductRepository is the read-only view of the product catalog.
type ProductRepository interface {
	// FindByTitleKey returns products whose normalized title equals key,
	// ordered by id.
	FindByTitleKey(ctx context.Context, key string) ([]models.Product, error)
	// FindForbidden returns products flagged as not recommended for bt,
	// ordered by id.
	FindForbidden(ctx context.Context, bt models.BloodType) ([]models.Product, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// UpdateDailyRate overwrites the profile metrics, daily rate and
	// not-recommended list of user id and returns the updated record.
	UpdateDailyRate(ctx context.Context, id uuid.UUID, update DailyRateUpdate) (*models.User, error)
}

type DailyRateUpdate struct {
	Profile    models.UserProfile
	DailyRate  int
	NotRecFood []models.NotRecommendedFood
}

type EatenProductRepository interface {
	Create(ctx context.Context, entry *models.EatenProduct) error
	FindByOwner(ctx context.Context, owner uuid.UUID) ([]models.EatenProduct, error)
	// DeleteByIDAndOwner removes the entry matching both id and owner in a
	// single operation. It returns a NotFound error when nothing matched.
	DeleteByIDAndOwner(ctx context.Context, id, owner uuid.UUID) (*models.EatenProduct, error)
}

var (
	_ ProductRepository      = (*GormProductRepository)(nil)
	_ ProductRepository      = (*MemoryProductRepository)(nil)
	_ UserRepository         = (*GormUserRepository)(nil)
	_ UserRepository         = (*MemoryUserRepository)(nil)
	_ EatenProductRepository = (*GormEatenProductRepository)(nil)
	_ EatenProductRepository = (*MemoryEatenProductRepository)(nil)
)
