package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutrilog/apperrors"
	"nutrilog/models"
)

func TestProductService_FindByTitle_CaseAndWhitespaceVariants(t *testing.T) {
	f := newFixture(
		models.Product{Title: "Apple", Calories: 52},
		models.Product{Title: "Banana", Calories: 89},
	)
	ctx := context.Background()

	want, err := f.products.FindByTitle(ctx, "apple")
	require.NoError(t, err)

	for _, variant := range []string{" Apple ", "APPLE", "aPpLe", "\tapple\n"} {
		got, err := f.products.FindByTitle(ctx, variant)
		require.NoError(t, err, variant)
		assert.Equal(t, want.ID, got.ID, variant)
	}
}

func TestProductService_FindByTitle_NoSubstringMatch(t *testing.T) {
	f := newFixture(models.Product{Title: "Apple pie", Calories: 237})

	_, err := f.products.FindByTitle(context.Background(), "apple")
	assert.True(t, apperrors.IsNotFound(err))

	_, err = f.products.FindByTitle(context.Background(), "pie")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestProductService_FindByTitle_SpecialCharactersAreLiteral(t *testing.T) {
	f := newFixture(
		models.Product{Title: "a.b*c", Calories: 10},
		models.Product{Title: "axbbbc", Calories: 20},
	)
	ctx := context.Background()

	got, err := f.products.FindByTitle(ctx, "A.B*C")
	require.NoError(t, err)
	assert.Equal(t, "a.b*c", got.Title)

	for _, pattern := range []string{"a.b*", ".*", "a?b*c", "^a.b\\*c$", "(a.b*c)"} {
		_, err := f.products.FindByTitle(ctx, pattern)
		assert.True(t, apperrors.IsNotFound(err), pattern)
	}
}

func TestProductService_FindAllByTitle_ReturnsDuplicates(t *testing.T) {
	f := newFixture(
		models.Product{Title: "Rice", Calories: 130},
		models.Product{Title: "rice ", Calories: 128},
	)

	got, err := f.products.FindAllByTitle(context.Background(), "RICE")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	first, err := f.products.FindByTitle(context.Background(), "RICE")
	require.NoError(t, err)
	assert.Equal(t, got[0].ID, first.ID)
}

func TestProductService_FindAllByTitle_BlankIsValidationError(t *testing.T) {
	f := newFixture()

	_, err := f.products.FindAllByTitle(context.Background(), "   ")
	assert.True(t, apperrors.IsValidation(err))
}

func TestProductService_ForbiddenFor(t *testing.T) {
	f := newFixture(
		forbidden(models.Product{Title: "Pork", Calories: 242}, models.BloodTypeA, models.BloodTypeB),
		forbidden(models.Product{Title: "Buckwheat", Calories: 343}, models.BloodTypeB),
		models.Product{Title: "Apple", Calories: 52},
	)
	ctx := context.Background()

	got, err := f.products.ForbiddenFor(ctx, models.BloodTypeB)
	require.NoError(t, err)
	assert.Equal(t, []models.NotRecommendedFood{{Title: "Pork"}, {Title: "Buckwheat"}}, got)

	got, err = f.products.ForbiddenFor(ctx, models.BloodTypeO)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
