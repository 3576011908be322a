package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
)

type CatalogRepository interface {
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	ListProducts(ctx context.Context, category string) ([]*models.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
}

type catalogRepository struct {
	DB *sql.DB
}

func NewCatalogRepo(db *sql.DB) CatalogRepository {
	return &catalogRepository{DB: db}
}

const productColumns = `id, name, brand, description, category, in_stock, gallery, attributes, prices, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *catalogRepository) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		return nil, fmt.Errorf("querying product %s: %w", id, err)
	}

	return product, nil
}

// ListProducts returns every product when category is empty.
func (r *catalogRepository) ListProducts(ctx context.Context, category string) ([]*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products WHERE ($1 = '' OR category = $1) ORDER BY name`

	rows, err := r.DB.QueryContext(dbCtx, query, category)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	products := []*models.Product{}

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating products: %w", err)
	}

	return products, nil
}

func (r *catalogRepository) ListCategories(ctx context.Context) ([]string, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, `SELECT DISTINCT category FROM products ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	defer rows.Close()

	categories := []string{}

	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}

	return categories, nil
}

func scanProduct(row rowScanner) (*models.Product, error) {
	product := &models.Product{}

	var galleryJSON, attributesJSON, pricesJSON []byte

	err := row.Scan(&product.ID, &product.Name, &product.Brand, &product.Description, &product.Category, &product.InStock,
		&galleryJSON, &attributesJSON, &pricesJSON, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(galleryJSON, &product.Gallery); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product gallery: %w", err)
	}

	if err := json.Unmarshal(attributesJSON, &product.Attributes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product attributes: %w", err)
	}

	if err := json.Unmarshal(pricesJSON, &product.Prices); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product prices: %w", err)
	}

	return product, nil
}
