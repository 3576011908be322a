package repository_test

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productCols = []string{"id", "name", "brand", "description", "category", "in_stock", "gallery", "attributes", "prices", "created_at", "updated_at"}

const (
	galleryJSON    = `["https://img.example.com/ps5-1.png","https://img.example.com/ps5-2.png"]`
	attributesJSON = `[{"id":"Color","name":"Color","type":"swatch","items":[{"id":"Green","value":"#44FF03","display_value":"Green"},{"id":"Cyan","value":"#03FFF7","display_value":"Cyan"}]}]`
	pricesJSON     = `{"USD":"844.02","GBP":"606.67"}`
)

func setupCatalogRepoTest(t *testing.T) (repository.CatalogRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	repo := repository.NewCatalogRepo(db)
	require.NotNil(t, repo, "NewCatalogRepo should return a non-nil repository")

	return repo, mock
}

func TestGetProduct(t *testing.T) {
	ctx := t.Context()
	expectedSQL := regexp.QuoteMeta(`FROM products WHERE id = $1`)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo, mock := setupCatalogRepoTest(t)
		now := time.Now()

		mock.ExpectQuery(expectedSQL).
			WithArgs("ps-5").
			WillReturnRows(sqlmock.NewRows(productCols).
				AddRow("ps-5", "PlayStation 5", "Sony", "console", "tech", true, []byte(galleryJSON), []byte(attributesJSON), []byte(pricesJSON), now, now))

		// Act
		product, err := repo.GetProduct(ctx, "ps-5")

		// Assert
		require.NoError(t, err)
		require.NotNil(t, product)
		assert.Equal(t, "ps-5", product.ID)
		assert.Equal(t, "Sony", product.Brand)
		assert.True(t, product.InStock)
		assert.Len(t, product.Gallery, 2)
		require.Len(t, product.Attributes, 1)
		assert.Equal(t, "Color", product.Attributes[0].ID)
		assert.Len(t, product.Attributes[0].Items, 2)
		assert.True(t, decimal.RequireFromString("844.02").Equal(product.Prices["USD"]))
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		repo, mock := setupCatalogRepoTest(t)

		mock.ExpectQuery(expectedSQL).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		// Act
		product, err := repo.GetProduct(ctx, "missing")

		// Assert
		require.Error(t, err)
		assert.Nil(t, product)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})

	t.Run("Failure - Malformed Prices", func(t *testing.T) {
		// Arrange
		repo, mock := setupCatalogRepoTest(t)
		now := time.Now()

		mock.ExpectQuery(expectedSQL).
			WithArgs("ps-5").
			WillReturnRows(sqlmock.NewRows(productCols).
				AddRow("ps-5", "PlayStation 5", "Sony", "console", "tech", true, []byte(galleryJSON), []byte(attributesJSON), []byte(`{"USD":"abc"}`), now, now))

		// Act
		product, err := repo.GetProduct(ctx, "ps-5")

		// Assert
		require.Error(t, err)
		assert.Nil(t, product)
		assert.Contains(t, err.Error(), "failed to unmarshal product prices")
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})
}

func TestListProducts(t *testing.T) {
	ctx := t.Context()
	expectedSQL := regexp.QuoteMeta(`FROM products WHERE ($1 = '' OR category = $1) ORDER BY name`)

	t.Run("Success - By Category", func(t *testing.T) {
		// Arrange
		repo, mock := setupCatalogRepoTest(t)
		now := time.Now()

		mock.ExpectQuery(expectedSQL).
			WithArgs("tech").
			WillReturnRows(sqlmock.NewRows(productCols).
				AddRow("ps-5", "PlayStation 5", "Sony", "", "tech", true, []byte(galleryJSON), []byte(`[]`), []byte(pricesJSON), now, now).
				AddRow("xbox", "Xbox Series S", "Microsoft", "", "tech", false, []byte(`[]`), []byte(`[]`), []byte(pricesJSON), now, now))

		// Act
		products, err := repo.ListProducts(ctx, "tech")

		// Assert
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "ps-5", products[0].ID)
		assert.Equal(t, "xbox", products[1].ID)
		assert.False(t, products[1].InStock)
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})

	t.Run("Success - Empty", func(t *testing.T) {
		// Arrange
		repo, mock := setupCatalogRepoTest(t)

		mock.ExpectQuery(expectedSQL).
			WithArgs("").
			WillReturnRows(sqlmock.NewRows(productCols))

		// Act
		products, err := repo.ListProducts(ctx, "")

		// Assert
		require.NoError(t, err)
		assert.NotNil(t, products)
		assert.Empty(t, products)
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		repo, mock := setupCatalogRepoTest(t)
		dbError := errors.New("connection reset")

		mock.ExpectQuery(expectedSQL).
			WithArgs("clothes").
			WillReturnError(dbError)

		// Act
		products, err := repo.ListProducts(ctx, "clothes")

		// Assert
		require.Error(t, err)
		assert.Nil(t, products)
		assert.ErrorIs(t, err, dbError)
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})
}

func TestListCategories(t *testing.T) {
	ctx := t.Context()
	expectedSQL := regexp.QuoteMeta(`SELECT DISTINCT category FROM products ORDER BY category`)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo, mock := setupCatalogRepoTest(t)

		mock.ExpectQuery(expectedSQL).
			WillReturnRows(sqlmock.NewRows([]string{"category"}).AddRow("clothes").AddRow("tech"))

		// Act
		categories, err := repo.ListCategories(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, []string{"clothes", "tech"}, categories)
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		repo, mock := setupCatalogRepoTest(t)
		dbError := errors.New("query failed")

		mock.ExpectQuery(expectedSQL).WillReturnError(dbError)

		// Act
		categories, err := repo.ListCategories(ctx)

		// Assert
		require.Error(t, err)
		assert.Nil(t, categories)
		assert.ErrorIs(t, err, dbError)
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})
}
