package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"nutrilog/apperrors"
	"nutrilog/models"
	"nutrilog/repositories"
)

type ProductService struct {
	products repositories.ProductRepository
	logger   *zap.Logger
}

func NewProductService(products repositories.ProductRepository, logger *zap.Logger) *ProductService {
	return &ProductService{products: products, logger: logger}
}

// FindAllByTitle returns every catalog product whose title equals raw,
// ignoring case and surrounding whitespace.
func (s *ProductService) FindAllByTitle(ctx context.Context, raw string) ([]models.Product, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, apperrors.NewValidation("Query parameter 'title' is required")
	}

	products, err := s.products.FindByTitleKey(ctx, models.TitleKey(raw))
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, apperrors.NewNotFound("Product not found")
	}
	return products, nil
}

// FindByTitle is FindAllByTitle reduced to the first match.
func (s *ProductService) FindByTitle(ctx context.Context, raw string) (*models.Product, error) {
	products, err := s.FindAllByTitle(ctx, raw)
	if err != nil {
		return nil, err
	}
	if len(products) > 1 {
		s.logger.Debug("duplicate catalog titles",
			zap.String("title", products[0].Title),
			zap.Int("count", len(products)))
	}
	return &products[0], nil
}

// ForbiddenFor lists the titles of products not recommended for bt.
func (s *ProductService) ForbiddenFor(ctx context.Context, bt models.BloodType) ([]models.NotRecommendedFood, error) {
	products, err := s.products.FindForbidden(ctx, bt)
	if err != nil {
		return nil, err
	}

	out := make([]models.NotRecommendedFood, 0, len(products))
	for _, p := range products {
		out = append(out, models.NotRecommendedFood{Title: p.Title})
	}
	return out, nil
}
