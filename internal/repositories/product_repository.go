package repository

import (
	"context"
	"net/http"
	"net/url"

	"github.com/discool/storefront/internal/models"
)

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	FilterProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	CreateProduct(ctx context.Context, token string, req *models.CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, token string, id string, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, token string, id string) error
}

type productRepository struct {
	client *Client
}

func NewProductRepo(client *Client) ProductRepository {
	return &productRepository{client: client}
}

func (r *productRepository) ListProducts(ctx context.Context) ([]models.Product, error) {

	var records []productRecord

	if err := r.client.do(ctx, apiRequest{method: http.MethodGet, path: "/produto"}, &records); err != nil {
		return nil, err
	}

	return toProducts(records), nil
}

func (r *productRepository) GetProduct(ctx context.Context, id string) (*models.Product, error) {

	var record productRecord

	req := apiRequest{method: http.MethodGet, path: "/produto/" + url.PathEscape(id), route: "/produto/:id"}
	if err := r.client.do(ctx, req, &record); err != nil {
		return nil, err
	}

	product := record.toModel()
	if product.ID == "" {
		product.ID = id
	}

	return &product, nil
}

func (r *productRepository) FilterProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {

	query := url.Values{}

	if filter.Name != "" {
		query.Set("nome", filter.Name)
	}

	if filter.CategoryID != "" {
		query.Set("categoria", filter.CategoryID)
	}

	if filter.MinPrice != nil {
		query.Set("precoMin", filter.MinPrice.String())
	}

	if filter.MaxPrice != nil {
		query.Set("precoMax", filter.MaxPrice.String())
	}

	var records []productRecord

	if err := r.client.do(ctx, apiRequest{method: http.MethodGet, path: "/produto/filtro", query: query}, &records); err != nil {
		return nil, err
	}

	return toProducts(records), nil
}

func (r *productRepository) CreateProduct(ctx context.Context, token string, req *models.CreateProductRequest) (*models.Product, error) {

	payload := map[string]any{
		"nome":        req.Name,
		"artista":     req.Artist,
		"descricao":   req.Description,
		"preco":       money(req.Price),
		"estoque":     req.Stock,
		"imagemUrl":   req.ImageURL,
		"categoriaId": req.CategoryID,
	}

	var record productRecord

	if err := r.client.do(ctx, apiRequest{method: http.MethodPost, path: "/produto", token: token, body: payload}, &record); err != nil {
		return nil, err
	}

	product := record.toModel()

	return &product, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, token string, id string, req *models.UpdateProductRequest) (*models.Product, error) {

	payload := map[string]any{}

	if req.Name != nil {
		payload["nome"] = *req.Name
	}
	if req.Artist != nil {
		payload["artista"] = *req.Artist
	}
	if req.Description != nil {
		payload["descricao"] = *req.Description
	}
	if req.Price != nil {
		payload["preco"] = money(*req.Price)
	}
	if req.Stock != nil {
		payload["estoque"] = *req.Stock
	}
	if req.ImageURL != nil {
		payload["imagemUrl"] = *req.ImageURL
	}
	if req.CategoryID != nil {
		payload["categoriaId"] = *req.CategoryID
	}

	var record productRecord

	apiReq := apiRequest{method: http.MethodPatch, path: "/produto/" + url.PathEscape(id), route: "/produto/:id", token: token, body: payload}
	if err := r.client.do(ctx, apiReq, &record); err != nil {
		return nil, err
	}

	product := record.toModel()
	if product.ID == "" {
		product.ID = id
	}

	return &product, nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, token string, id string) error {
	return r.client.do(ctx, apiRequest{method: http.MethodDelete, path: "/produto/" + url.PathEscape(id), route: "/produto/:id", token: token}, nil)
}

func toProducts(records []productRecord) []models.Product {
	products := make([]models.Product, 0, len(records))

	for _, record := range records {
		products = append(products, record.toModel())
	}

	return products
}

