package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"nutrilog/apperrors"
	"nutrilog/models"
)

// MemoryProductRepository is an in-process catalog used by tests and the
// "memory" store mode.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	nextID   uint
	products []models.Product
}

func NewMemoryProductRepository(products ...models.Product) *MemoryProductRepository {
	r := &MemoryProductRepository{}
	for _, p := range products {
		r.Add(p)
	}
	return r
}

// Add stores p, assigning an id when it has none.
func (r *MemoryProductRepository) Add(p models.Product) models.Product {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	if p.ID == 0 {
		p.ID = r.nextID
	} else if p.ID > r.nextID {
		r.nextID = p.ID
	}
	r.products = append(r.products, p)
	sort.Slice(r.products, func(i, j int) bool { return r.products[i].ID < r.products[j].ID })
	return p
}

func (r *MemoryProductRepository) FindByTitleKey(_ context.Context, key string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Product
	for _, p := range r.products {
		if models.TitleKey(p.Title) == key {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *MemoryProductRepository) FindForbidden(_ context.Context, bt models.BloodType) ([]models.Product, error) {
	if !bt.Valid() {
		return nil, apperrors.NewValidation("unknown blood type")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Product
	for _, p := range r.products {
		if p.ForbiddenFor(bt) {
			out = append(out, p)
		}
	}
	return out, nil
}

type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]models.User
}

func NewMemoryUserRepository(users ...models.User) *MemoryUserRepository {
	r := &MemoryUserRepository{users: make(map[uuid.UUID]models.User)}
	for _, u := range users {
		r.Save(u)
	}
	return r
}

// Save inserts or replaces u, generating an id when it has none.
func (r *MemoryUserRepository) Save(u models.User) models.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	return u
}

func (r *MemoryUserRepository) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.NewNotFound("User not found")
	}
	return &u, nil
}

func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, apperrors.NewNotFound("User not found")
}

func (r *MemoryUserRepository) UpdateDailyRate(_ context.Context, id uuid.UUID, update DailyRateUpdate) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.NewNotFound("User not found")
	}
	u.Height = update.Profile.Height
	u.Age = update.Profile.Age
	u.CurrentWeight = update.Profile.CurrentWeight
	u.DesiredWeight = update.Profile.DesiredWeight
	u.BloodType = update.Profile.BloodType
	u.DailyRate = update.DailyRate
	u.NotRecFood = append([]models.NotRecommendedFood(nil), update.NotRecFood...)
	r.users[id] = u
	return &u, nil
}

type MemoryEatenProductRepository struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]models.EatenProduct
}

func NewMemoryEatenProductRepository() *MemoryEatenProductRepository {
	return &MemoryEatenProductRepository{entries: make(map[uuid.UUID]models.EatenProduct)}
}

func (r *MemoryEatenProductRepository) Create(_ context.Context, entry *models.EatenProduct) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if _, exists := r.entries[entry.ID]; exists {
		return apperrors.NewInternal("create eaten product", errDuplicateID)
	}
	r.entries[entry.ID] = *entry
	return nil
}

func (r *MemoryEatenProductRepository) FindByOwner(_ context.Context, owner uuid.UUID) ([]models.EatenProduct, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.EatenProduct
	for _, e := range r.entries {
		if e.Owner == owner {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *MemoryEatenProductRepository) DeleteByIDAndOwner(_ context.Context, id, owner uuid.UUID) (*models.EatenProduct, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok || e.Owner != owner {
		return nil, apperrors.NewNotFound("Product not found")
	}
	delete(r.entries, id)
	return &e, nil
}
