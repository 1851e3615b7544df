package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/discool/storefront/internal/cache"
	"github.com/discool/storefront/internal/config"
	appErrors "github.com/discool/storefront/internal/errors"
	"github.com/discool/storefront/internal/models"
	"github.com/discool/storefront/internal/repositories/mocks"
	service "github.com/discool/storefront/internal/services"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ListCategories(t *testing.T) {
	ctx := context.Background()
	key := "storefront:categories:public"
	categories := []models.Category{{ID: "1", Name: "Rock"}, {ID: "2", Name: "Jazz"}}
	raw, err := json.Marshal(categories)
	require.NoError(t, err)

	setup := func() (service.CatalogService, *mocks.CategoryRepository, redismock.ClientMock) {
		client, redisMock := redismock.NewClientMock()
		repo := new(mocks.CategoryRepository)
		c := cache.NewRedisCache(client, &config.CacheConfig{DefaultTTL: time.Minute})
		return service.NewCatalogService(new(mocks.ProductRepository), repo, c, time.Hour), repo, redisMock
	}

	t.Run("Success - Cache Miss Fills Cache", func(t *testing.T) {
		// Arrange
		catalog, repo, redisMock := setup()
		redisMock.ExpectGet(key).SetErr(redis.Nil)
		repo.On("ListPublicCategories", ctx).Return(categories, nil).Once()
		redisMock.ExpectSet(key, raw, time.Hour).SetVal("OK")

		// Act
		result, err := catalog.ListCategories(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, categories, result)
		repo.AssertExpectations(t)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("Success - Cache Hit Skips Backend", func(t *testing.T) {
		// Arrange
		catalog, repo, redisMock := setup()
		redisMock.ExpectGet(key).SetVal(string(raw))

		// Act
		result, err := catalog.ListCategories(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, categories, result)
		repo.AssertNotCalled(t, "ListPublicCategories", mock.Anything)
	})

	t.Run("Success - Redis Down Still Serves", func(t *testing.T) {
		// Arrange
		catalog, repo, redisMock := setup()
		redisMock.ExpectGet(key).SetErr(errors.New("connection refused"))
		repo.On("ListPublicCategories", ctx).Return(categories, nil).Once()
		redisMock.ExpectSet(key, raw, time.Hour).SetErr(errors.New("connection refused"))

		// Act
		result, err := catalog.ListCategories(ctx)

		// Assert
		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("Success - Creating A Category Invalidates", func(t *testing.T) {
		// Arrange
		catalog, repo, redisMock := setup()
		session := loggedInSession(t)
		repo.On("CreateCategory", ctx, "tok", &models.CategoryRequest{Name: "Blues", Description: "Delta"}).
			Return(&models.Category{ID: "3", Name: "Blues"}, nil).Once()
		redisMock.ExpectDel(key).SetVal(1)

		// Act
		category, err := catalog.CreateCategory(ctx, session, &models.CategoryRequest{Name: "  Blues ", Description: "<b>Delta</b>"})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "3", category.ID)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
}

func TestCatalogService_Products(t *testing.T) {
	ctx := context.Background()

	t.Run("Failure - Inverted Price Range", func(t *testing.T) {
		// Arrange
		products := new(mocks.ProductRepository)
		catalog := service.NewCatalogService(products, new(mocks.CategoryRepository), nil, time.Hour)
		low, high := decimal.NewFromInt(50), decimal.NewFromInt(10)

		// Act
		_, err := catalog.FilterProducts(ctx, models.ProductFilter{MinPrice: &low, MaxPrice: &high})

		// Assert
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation))
		products.AssertNotCalled(t, "FilterProducts", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Free Product Rejected", func(t *testing.T) {
		// Arrange
		products := new(mocks.ProductRepository)
		catalog := service.NewCatalogService(products, new(mocks.CategoryRepository), nil, time.Hour)

		// Act
		_, err := catalog.CreateProduct(ctx, loggedInSession(t), &models.CreateProductRequest{Name: "Thriller", Price: decimal.Zero, CategoryID: "1"})

		// Assert
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation))
	})

	t.Run("Success - Markup Stripped Before Create", func(t *testing.T) {
		// Arrange
		products := new(mocks.ProductRepository)
		catalog := service.NewCatalogService(products, new(mocks.CategoryRepository), nil, time.Hour)
		products.On("CreateProduct", ctx, "tok", mock.MatchedBy(func(req *models.CreateProductRequest) bool {
			return req.Name == "Thriller" && req.Artist == "Michael Jackson"
		})).Return(&models.Product{ID: "9", Name: "Thriller"}, nil).Once()

		// Act
		product, err := catalog.CreateProduct(ctx, loggedInSession(t), &models.CreateProductRequest{
			Name:       "<script>alert(1)</script>Thriller",
			Artist:     "Michael Jackson",
			Price:      decimal.NewFromInt(150),
			CategoryID: "1",
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "9", product.ID)
		products.AssertExpectations(t)
	})
}
