package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nutrilog/apperrors"
	"nutrilog/metrics"
	"nutrilog/models"
	"nutrilog/repositories"
	"nutrilog/utils"
)

type EatenProductService struct {
	products *ProductService
	entries  repositories.EatenProductRepository
	users    repositories.UserRepository
	loc      *time.Location
	now      func() time.Time
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

type EatenProductOption func(*EatenProductService)

// WithClock replaces time.Now as the source of entry timestamps.
func WithClock(now func() time.Time) EatenProductOption {
	return func(s *EatenProductService) { s.now = now }
}

// NewEatenProductService builds the ledger service. Calendar days are
// computed in loc.
func NewEatenProductService(
	products *ProductService,
	entries repositories.EatenProductRepository,
	users repositories.UserRepository,
	loc *time.Location,
	m *metrics.Metrics,
	logger *zap.Logger,
	opts ...EatenProductOption,
) *EatenProductService {
	s := &EatenProductService{
		products: products,
		entries:  entries,
		users:    users,
		loc:      loc,
		now:      time.Now,
		metrics:  m,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LogEntry records that owner ate weight grams of the catalog product
// titled title. Calories always come from the catalog.
func (s *EatenProductService) LogEntry(ctx context.Context, owner uuid.UUID, title string, weight float64) (*models.EatenProduct, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperrors.NewValidation("Title cannot be empty")
	}
	if !(weight > 0) {
		return nil, apperrors.NewValidation("Weight must be a positive number")
	}
	if weight > utils.MaxEntryWeight {
		return nil, apperrors.NewValidation(fmt.Sprintf("Weight must not exceed %d grams", utils.MaxEntryWeight))
	}

	product, err := s.products.FindByTitle(ctx, title)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("There is no such product in the database")
		}
		return nil, err
	}

	calories, ok := utils.EntryCalories(product.Calories, weight)
	if !ok {
		return nil, apperrors.NewValidation("Calorie value is out of range")
	}

	entry := &models.EatenProduct{
		ID:       uuid.New(),
		Title:    product.Title,
		Weight:   weight,
		Calories: calories,
		Date:     s.now().UTC(),
		Owner:    owner,
	}
	if err := s.entries.Create(ctx, entry); err != nil {
		return nil, err
	}
	s.metrics.EntriesLogged.Inc()

	s.logger.Info("eaten product logged",
		zap.String("owner", owner.String()),
		zap.String("entryID", entry.ID.String()),
		zap.String("title", entry.Title),
		zap.Int("calories", entry.Calories))

	return entry, nil
}

// EntriesForDay returns owner's entries on the DD.MM.YYYY day, newest first.
// An owner with no entries at all gets NotFound; an owner with entries on
// other days gets an empty list.
func (s *EatenProductService) EntriesForDay(ctx context.Context, owner uuid.UUID, day string) ([]models.EatenProduct, error) {
	day, err := utils.ParseDay(day, s.loc)
	if err != nil {
		return nil, apperrors.NewValidation("Invalid date, expected DD.MM.YYYY")
	}

	all, err := s.entries.FindByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, apperrors.NewNotFound("No products found")
	}

	out := make([]models.EatenProduct, 0, len(all))
	for _, e := range all {
		if e.Owner == owner && utils.FormatDay(e.Date, s.loc) == day {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

// RemoveEntry deletes entry id if it belongs to owner. Unknown ids,
// malformed ids and other owners' entries all yield the same NotFound.
func (s *EatenProductService) RemoveEntry(ctx context.Context, owner uuid.UUID, id string) (*models.EatenProduct, error) {
	entryID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.NewNotFound("Product not found")
	}

	removed, err := s.entries.DeleteByIDAndOwner(ctx, entryID, owner)
	if err != nil {
		return nil, err
	}
	s.metrics.EntriesRemoved.Inc()

	s.logger.Info("eaten product removed",
		zap.String("owner", owner.String()),
		zap.String("entryID", removed.ID.String()))

	return removed, nil
}

// SummaryForDay totals the day's calories against the owner's committed
// daily rate.
func (s *EatenProductService) SummaryForDay(ctx context.Context, owner uuid.UUID, day string) (*models.DaySummary, error) {
	entries, err := s.EntriesForDay(ctx, owner, day)
	if err != nil && !apperrors.IsNotFound(err) {
		return nil, err
	}
	if entries == nil {
		entries = []models.EatenProduct{}
	}

	user, err := s.users.FindByID(ctx, owner)
	if err != nil {
		return nil, err
	}

	consumed := 0
	for _, e := range entries {
		consumed += e.Calories
	}
	left := user.DailyRate - consumed
	if left < 0 {
		left = 0
	}

	canonical, _ := utils.ParseDay(day, s.loc)
	return &models.DaySummary{
		Date:      canonical,
		DailyRate: user.DailyRate,
		Consumed:  consumed,
		Left:      left,
		Percent:   utils.Percent(float64(consumed), float64(user.DailyRate)),
		Entries:   entries,
	}, nil
}
