package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/services/mocks"
	"github.com/aaravmahajanofficial/storefront/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListProducts(t *testing.T) {
	t.Run("Success - Filtered By Category", func(t *testing.T) {
		// Arrange
		mockCatalogService := new(mocks.CatalogService)
		catalogHandler := handlers.NewCatalogHandler(mockCatalogService)
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/products?category=clothes", nil, nil)
		rr := httptest.NewRecorder()

		mockCatalogService.On("ListProducts", mock.Anything, "clothes").Return([]*models.Product{{ID: "jacket"}}, nil).Once()

		// Act
		catalogHandler.ListProducts().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"id":"jacket"`)
		mockCatalogService.AssertExpectations(t)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		mockCatalogService := new(mocks.CatalogService)
		catalogHandler := handlers.NewCatalogHandler(mockCatalogService)
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/products", nil, nil)
		rr := httptest.NewRecorder()

		mockCatalogService.On("ListProducts", mock.Anything, "").Return(nil, appErrors.DatabaseError("Failed to fetch products")).Once()

		// Act
		catalogHandler.ListProducts().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		mockCatalogService.AssertExpectations(t)
	})
}

func TestGetProduct(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockCatalogService := new(mocks.CatalogService)
		catalogHandler := handlers.NewCatalogHandler(mockCatalogService)
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/products/jacket", nil, map[string]string{"id": "jacket"})
		rr := httptest.NewRecorder()

		mockCatalogService.On("GetProduct", mock.Anything, "jacket").Return(&models.Product{ID: "jacket"}, nil).Once()

		// Act
		catalogHandler.GetProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockCatalogService.AssertExpectations(t)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mockCatalogService := new(mocks.CatalogService)
		catalogHandler := handlers.NewCatalogHandler(mockCatalogService)
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/products/ghost", nil, map[string]string{"id": "ghost"})
		rr := httptest.NewRecorder()

		mockCatalogService.On("GetProduct", mock.Anything, "ghost").Return(nil, appErrors.NotFoundError("Product not found")).Once()

		// Act
		catalogHandler.GetProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockCatalogService.AssertExpectations(t)
	})
}

func TestListCategoriesAndCurrencies(t *testing.T) {
	// Arrange
	mockCatalogService := new(mocks.CatalogService)
	catalogHandler := handlers.NewCatalogHandler(mockCatalogService)
	mockCatalogService.On("ListCategories", mock.Anything).Return([]string{"clothes", "tech"}, nil).Once()
	mockCatalogService.On("Currencies").Return([]string{"USD", "GBP"}).Once()

	categories := httptest.NewRecorder()
	currencies := httptest.NewRecorder()

	// Act
	catalogHandler.ListCategories().ServeHTTP(categories, testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/categories", nil, nil))
	catalogHandler.ListCurrencies().ServeHTTP(currencies, testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/currencies", nil, nil))

	// Assert
	assert.JSONEq(t, `{"success":true,"data":["clothes","tech"]}`, categories.Body.String())
	assert.JSONEq(t, `{"success":true,"data":["USD","GBP"]}`, currencies.Body.String())
	mockCatalogService.AssertExpectations(t)
}
