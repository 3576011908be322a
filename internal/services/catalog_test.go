package service_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jacket() *models.Product {
	return &models.Product{
		ID:       "jacket",
		Name:     "Jacket",
		Brand:    "Canada Goose",
		Category: "clothes",
		InStock:  true,
		Gallery:  []string{"https://img.example/jacket.png"},
		Attributes: []models.Attribute{
			{ID: "size", Name: "Size", Type: "text", Items: []models.AttributeItem{
				{ID: "S", Value: "S", DisplayValue: "Small"},
				{ID: "M", Value: "M", DisplayValue: "Medium"},
			}},
		},
		Prices: map[string]decimal.Decimal{
			"USD": decimal.RequireFromString("10"),
			"GBP": decimal.RequireFromString("8"),
		},
	}
}

func TestCatalogGetProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Default Options Filled", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.CatalogRepository)
		catalogService := service.NewCatalogService(mockRepo, testCatalog)
		mockRepo.On("GetProduct", ctx, "jacket").Return(jacket(), nil).Once()

		// Act
		product, err := catalogService.GetProduct(ctx, "jacket")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, []models.OptionPair{{ID: "size", Value: "S"}}, product.SelectedOptions)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.CatalogRepository)
		catalogService := service.NewCatalogService(mockRepo, testCatalog)
		mockRepo.On("GetProduct", ctx, "missing").Return(nil, fmt.Errorf("fetching product missing: %w", sql.ErrNoRows)).Once()

		// Act
		product, err := catalogService.GetProduct(ctx, "missing")

		// Assert
		assert.Nil(t, product)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.CatalogRepository)
		catalogService := service.NewCatalogService(mockRepo, testCatalog)
		dbErr := errors.New("connection refused")
		mockRepo.On("GetProduct", ctx, "jacket").Return(nil, dbErr).Once()

		// Act
		product, err := catalogService.GetProduct(ctx, "jacket")

		// Assert
		assert.Nil(t, product)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeDatabaseError))
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestCatalogListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.CatalogRepository)
		catalogService := service.NewCatalogService(mockRepo, testCatalog)
		mockRepo.On("ListProducts", ctx, "clothes").Return([]*models.Product{jacket()}, nil).Once()

		// Act
		products, err := catalogService.ListProducts(ctx, "clothes")

		// Assert
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, []models.OptionPair{{ID: "size", Value: "S"}}, products[0].SelectedOptions)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.CatalogRepository)
		catalogService := service.NewCatalogService(mockRepo, testCatalog)
		mockRepo.On("ListProducts", ctx, "").Return(nil, errors.New("boom")).Once()

		// Act
		products, err := catalogService.ListProducts(ctx, "")

		// Assert
		assert.Nil(t, products)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeDatabaseError))
	})
}

func TestCatalogListCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.CatalogRepository)
		catalogService := service.NewCatalogService(mockRepo, testCatalog)
		mockRepo.On("ListCategories", ctx).Return([]string{"clothes", "tech"}, nil).Once()

		// Act
		categories, err := catalogService.ListCategories(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, []string{"clothes", "tech"}, categories)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.CatalogRepository)
		catalogService := service.NewCatalogService(mockRepo, testCatalog)
		mockRepo.On("ListCategories", ctx).Return(nil, errors.New("boom")).Once()

		// Act
		categories, err := catalogService.ListCategories(ctx)

		// Assert
		assert.Nil(t, categories)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeDatabaseError))
	})
}

func TestCatalogCurrencies(t *testing.T) {
	catalogService := service.NewCatalogService(new(mocks.CatalogRepository), testCatalog)

	currencies := catalogService.Currencies()
	currencies[0] = "XXX"

	assert.Equal(t, []string{"USD", "GBP", "JPY"}, catalogService.Currencies())
}
