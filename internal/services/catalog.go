package service

import (
	"context"
	"database/sql"
	stdErrors "errors"
	"slices"

	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
)

// CatalogService supplies product records to the cart and the views. Records
// come back with their default configuration filled in.
type CatalogService interface {
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	ListProducts(ctx context.Context, category string) ([]*models.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
	Currencies() []string
}

type catalogService struct {
	repo    repository.CatalogRepository
	catalog config.Catalog
}

func NewCatalogService(repo repository.CatalogRepository, catalog config.Catalog) CatalogService {
	return &catalogService{repo: repo, catalog: catalog}
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {

	product, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		if stdErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Product not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	product.SelectedOptions = product.DefaultOptions()

	return product, nil
}

func (s *catalogService) ListProducts(ctx context.Context, category string) ([]*models.Product, error) {

	products, err := s.repo.ListProducts(ctx, category)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	for _, product := range products {
		product.SelectedOptions = product.DefaultOptions()
	}

	return products, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]string, error) {

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch categories").WithError(err)
	}

	return categories, nil
}

func (s *catalogService) Currencies() []string {
	return slices.Clone(s.catalog.SupportedCurrencies)
}
