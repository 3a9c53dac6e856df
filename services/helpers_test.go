package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"nutrilog/metrics"
	"nutrilog/models"
	"nutrilog/repositories"
	"nutrilog/utils"
)

type fixture struct {
	catalog  *repositories.MemoryProductRepository
	users    *repositories.MemoryUserRepository
	entries  *repositories.MemoryEatenProductRepository
	products *ProductService
	calories *CalorieService
	eaten    *EatenProductService
	clock    *fakeClock
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Set(t time.Time) { c.t = t }

func newFixture(products ...models.Product) *fixture {
	logger := zap.NewNop()
	m := metrics.New(prometheus.NewRegistry())

	f := &fixture{
		catalog: repositories.NewMemoryProductRepository(products...),
		users:   repositories.NewMemoryUserRepository(),
		entries: repositories.NewMemoryEatenProductRepository(),
		clock:   &fakeClock{t: time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)},
	}
	f.products = NewProductService(f.catalog, logger)
	f.calories = NewCalorieService(f.products, f.users, utils.DefaultNormPolicy(), m, logger)
	f.eaten = NewEatenProductService(f.products, f.entries, f.users, time.UTC, m, logger, WithClock(f.clock.Now))
	return f
}

func (f *fixture) newUser() uuid.UUID {
	return f.users.Save(models.User{Email: uuid.NewString() + "@example.com"}).ID
}

func forbidden(p models.Product, types ...models.BloodType) models.Product {
	for _, bt := range types {
		p.SetForbidden(bt, true)
	}
	return p
}
