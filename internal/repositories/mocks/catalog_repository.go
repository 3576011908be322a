package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type CatalogRepository struct {
	mock.Mock
}

func (m *CatalogRepository) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)

	product, _ := args.Get(0).(*models.Product)

	return product, args.Error(1)
}

func (m *CatalogRepository) ListProducts(ctx context.Context, category string) ([]*models.Product, error) {
	args := m.Called(ctx, category)

	products, _ := args.Get(0).([]*models.Product)

	return products, args.Error(1)
}

func (m *CatalogRepository) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)

	categories, _ := args.Get(0).([]string)

	return categories, args.Error(1)
}
