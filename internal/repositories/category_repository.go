package repository

import (
	"context"
	"net/http"
	"net/url"

	"github.com/discool/storefront/internal/models"
)

type CategoryRepository interface {
	ListPublicCategories(ctx context.Context) ([]models.Category, error)
	ListCategories(ctx context.Context, token string) ([]models.Category, error)
	CreateCategory(ctx context.Context, token string, req *models.CategoryRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, token string, id string, req *models.CategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, token string, id string) error
}

type categoryRepository struct {
	client *Client
}

func NewCategoryRepo(client *Client) CategoryRepository {
	return &categoryRepository{client: client}
}

func (r *categoryRepository) ListPublicCategories(ctx context.Context) ([]models.Category, error) {
	return r.list(ctx, apiRequest{method: http.MethodGet, path: "/categoria/public"})
}

func (r *categoryRepository) ListCategories(ctx context.Context, token string) ([]models.Category, error) {
	return r.list(ctx, apiRequest{method: http.MethodGet, path: "/categoria", token: token})
}

func (r *categoryRepository) list(ctx context.Context, req apiRequest) ([]models.Category, error) {

	var records []categoryRecord

	if err := r.client.do(ctx, req, &records); err != nil {
		return nil, err
	}

	categories := make([]models.Category, 0, len(records))
	for _, record := range records {
		categories = append(categories, record.toModel())
	}

	return categories, nil
}

func (r *categoryRepository) CreateCategory(ctx context.Context, token string, req *models.CategoryRequest) (*models.Category, error) {

	var record categoryRecord

	payload := map[string]any{"nome": req.Name, "descricao": req.Description}

	if err := r.client.do(ctx, apiRequest{method: http.MethodPost, path: "/categoria", token: token, body: payload}, &record); err != nil {
		return nil, err
	}

	category := record.toModel()

	return &category, nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, token string, id string, req *models.CategoryRequest) (*models.Category, error) {

	var record categoryRecord

	payload := map[string]any{"nome": req.Name, "descricao": req.Description}
	apiReq := apiRequest{method: http.MethodPatch, path: "/categoria/" + url.PathEscape(id), route: "/categoria/:id", token: token, body: payload}

	if err := r.client.do(ctx, apiReq, &record); err != nil {
		return nil, err
	}

	category := record.toModel()
	if category.ID == "" {
		category.ID = id
	}

	return &category, nil
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, token string, id string) error {
	return r.client.do(ctx, apiRequest{method: http.MethodDelete, path: "/categoria/" + url.PathEscape(id), route: "/categoria/:id", token: token}, nil)
}
