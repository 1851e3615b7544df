package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/discool/storefront/internal/api/middleware"
	"github.com/discool/storefront/internal/cache"
	"github.com/discool/storefront/internal/errors"
	"github.com/discool/storefront/internal/models"
	repository "github.com/discool/storefront/internal/repositories"
	"github.com/discool/storefront/internal/utils"
)

const publicCategoriesKey = "public"

type CatalogService interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	FilterProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	ListCategories(ctx context.Context) ([]models.Category, error)

	CreateProduct(ctx context.Context, session *models.Session, req *models.CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, session *models.Session, id string, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, session *models.Session, id string) error
	CreateCategory(ctx context.Context, session *models.Session, req *models.CategoryRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, session *models.Session, id string, req *models.CategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, session *models.Session, id string) error
}

type catalogService struct {
	products    repository.ProductRepository
	categories  repository.CategoryRepository
	cache       cache.Cache
	categoryTTL time.Duration
}

func NewCatalogService(products repository.ProductRepository, categories repository.CategoryRepository,
	c cache.Cache, categoryTTL time.Duration) CatalogService {

	return &catalogService{products: products, categories: categories, cache: c, categoryTTL: categoryTTL}
}

func (s *catalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.products.ListProducts(ctx)
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.products.GetProduct(ctx, id)
}

func (s *catalogService) FilterProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {

	if filter.MinPrice != nil && filter.MaxPrice != nil && filter.MinPrice.GreaterThan(*filter.MaxPrice) {
		return nil, errors.ValidationError("O preço mínimo não pode ser maior que o máximo.")
	}

	return s.products.FilterProducts(ctx, filter)
}

// ListCategories serves the public category list from the cache when it can. Cache trouble only
// costs a backend call.
func (s *catalogService) ListCategories(ctx context.Context) ([]models.Category, error) {

	logger := middleware.LoggerFromContext(ctx)
	key := cache.Key(cache.CategoryKeyPrefix, publicCategoriesKey)

	var cached []models.Category

	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		logger.Warn("Category cache read failed", slog.String("error", err.Error()))
	}

	if found {
		return cached, nil
	}

	categories, err := s.categories.ListPublicCategories(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, categories, s.categoryTTL); err != nil {
		logger.Warn("Category cache write failed", slog.String("error", err.Error()))
	}

	return categories, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, session *models.Session, req *models.CreateProductRequest) (*models.Product, error) {

	clean := *req
	clean.Name = utils.SanitizeText(req.Name)
	clean.Artist = utils.SanitizeText(req.Artist)
	clean.Description = utils.SanitizeText(req.Description)

	if !clean.Price.IsPositive() {
		return nil, errors.AddValidationError("price", "deve ser maior que zero")
	}

	product, err := s.products.CreateProduct(ctx, session.Token(), &clean)
	if err != nil {
		return nil, err
	}

	middleware.LoggerFromContext(ctx).Info("Product created", slog.String("product_id", product.ID))

	return product, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, session *models.Session, id string, req *models.UpdateProductRequest) (*models.Product, error) {

	if req.Price != nil && !req.Price.IsPositive() {
		return nil, errors.AddValidationError("price", "deve ser maior que zero")
	}

	clean := *req
	utils.SanitizeTextPtr(clean.Name)
	utils.SanitizeTextPtr(clean.Artist)
	utils.SanitizeTextPtr(clean.Description)

	return s.products.UpdateProduct(ctx, session.Token(), id, &clean)
}

func (s *catalogService) DeleteProduct(ctx context.Context, session *models.Session, id string) error {

	if err := s.products.DeleteProduct(ctx, session.Token(), id); err != nil {
		return err
	}

	middleware.LoggerFromContext(ctx).Info("Product deleted", slog.String("product_id", id))

	return nil
}

func (s *catalogService) CreateCategory(ctx context.Context, session *models.Session, req *models.CategoryRequest) (*models.Category, error) {

	clean := models.CategoryRequest{Name: utils.SanitizeText(req.Name), Description: utils.SanitizeText(req.Description)}

	category, err := s.categories.CreateCategory(ctx, session.Token(), &clean)
	if err != nil {
		return nil, err
	}

	s.invalidateCategories(ctx)

	return category, nil
}

func (s *catalogService) UpdateCategory(ctx context.Context, session *models.Session, id string, req *models.CategoryRequest) (*models.Category, error) {

	clean := models.CategoryRequest{Name: utils.SanitizeText(req.Name), Description: utils.SanitizeText(req.Description)}

	category, err := s.categories.UpdateCategory(ctx, session.Token(), id, &clean)
	if err != nil {
		return nil, err
	}

	s.invalidateCategories(ctx)

	return category, nil
}

func (s *catalogService) DeleteCategory(ctx context.Context, session *models.Session, id string) error {

	if err := s.categories.DeleteCategory(ctx, session.Token(), id); err != nil {
		return err
	}

	s.invalidateCategories(ctx)

	return nil
}

func (s *catalogService) invalidateCategories(ctx context.Context) {
	if err := s.cache.Delete(ctx, cache.Key(cache.CategoryKeyPrefix, publicCategoriesKey)); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Category cache invalidation failed", slog.String("error", err.Error()))
	}
}
