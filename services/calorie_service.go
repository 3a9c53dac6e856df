package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nutrilog/metrics"
	"nutrilog/models"
	"nutrilog/repositories"
	"nutrilog/utils"
)

// DailyRate is the computed norm together with the foods to avoid.
type DailyRate struct {
	DailyRate  int                         `json:"dailyRate"`
	NotRecFood []models.NotRecommendedFood `json:"notRecFood"`
}

type CalorieService struct {
	products *ProductService
	users    repositories.UserRepository
	policy   utils.NormPolicy
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

func NewCalorieService(
	products *ProductService,
	users repositories.UserRepository,
	policy utils.NormPolicy,
	m *metrics.Metrics,
	logger *zap.Logger,
) *CalorieService {
	return &CalorieService{
		products: products,
		users:    users,
		policy:   policy,
		metrics:  m,
		logger:   logger,
	}
}

func (s *CalorieService) compute(ctx context.Context, profile models.UserProfile) (*DailyRate, error) {
	notRec, err := s.products.ForbiddenFor(ctx, profile.BloodType)
	if err != nil {
		return nil, err
	}
	return &DailyRate{
		DailyRate:  s.policy.DailyNorm(profile),
		NotRecFood: notRec,
	}, nil
}

// Preview computes the daily rate without touching any user record.
func (s *CalorieService) Preview(ctx context.Context, profile models.UserProfile) (*DailyRate, error) {
	rate, err := s.compute(ctx, profile)
	if err != nil {
		return nil, err
	}
	s.metrics.NormsComputed.WithLabelValues("preview").Inc()
	return rate, nil
}

// Commit computes the daily rate and overwrites it, with the profile it
// came from, on the owner's record.
func (s *CalorieService) Commit(ctx context.Context, owner uuid.UUID, profile models.UserProfile) (*models.ProfileProjection, error) {
	rate, err := s.compute(ctx, profile)
	if err != nil {
		return nil, err
	}

	user, err := s.users.UpdateDailyRate(ctx, owner, repositories.DailyRateUpdate{
		Profile:    profile,
		DailyRate:  rate.DailyRate,
		NotRecFood: rate.NotRecFood,
	})
	if err != nil {
		return nil, err
	}
	s.metrics.NormsComputed.WithLabelValues("commit").Inc()

	s.logger.Info("daily rate committed",
		zap.String("owner", owner.String()),
		zap.Int("dailyRate", rate.DailyRate),
		zap.Int("notRecFood", len(rate.NotRecFood)))

	projection := user.Projection()
	return &projection, nil
}
