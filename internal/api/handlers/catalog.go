package handlers

import (
	"log/slog"
	"net/http"

	"github.com/discool/storefront/internal/api/middleware"
	"github.com/discool/storefront/internal/errors"
	"github.com/discool/storefront/internal/models"
	service "github.com/discool/storefront/internal/services"
	"github.com/discool/storefront/internal/utils"
	"github.com/discool/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type CatalogHandler struct {
	catalogService service.CatalogService
	validator      *validator.Validate
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, validator: validator.New()}
}

// ListProducts godoc
//
//	@Summary	List records
//	@Tags		Catalog
//	@Produce	json
//	@Success	200	{array}		models.Product
//	@Failure	502	{object}	response.ErrorResponse	"Store backend unreachable"
//	@Router		/products [get]
func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		products, err := h.catalogService.ListProducts(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to fetch products", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

// GetProduct godoc
//
//	@Summary	Get a record
//	@Tags		Catalog
//	@Produce	json
//	@Param		id	path		string	true	"Product ID"
//	@Success	200	{object}	models.Product
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/products/{id} [get]
func (h *CatalogHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		product, err := h.catalogService.GetProduct(r.Context(), r.PathValue("id"))
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// FilterProducts godoc
//
//	@Summary	Search records
//	@Tags		Catalog
//	@Produce	json
//	@Param		name		query		string	false	"Name contains"
//	@Param		category	query		string	false	"Category ID"
//	@Param		min_price	query		string	false	"Minimum price"
//	@Param		max_price	query		string	false	"Maximum price"
//	@Success	200			{array}		models.Product
//	@Failure	400			{object}	response.ErrorResponse	"Malformed or inverted price range"
//	@Router		/products/filter [get]
func (h *CatalogHandler) FilterProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		query := r.URL.Query()
		filter := models.ProductFilter{
			Name:       query.Get("name"),
			CategoryID: query.Get("category"),
		}

		var err error
		if filter.MinPrice, err = parsePrice(query.Get("min_price"), "min_price"); err != nil {
			response.Error(w, err)
			return
		}
		if filter.MaxPrice, err = parsePrice(query.Get("max_price"), "max_price"); err != nil {
			response.Error(w, err)
			return
		}

		products, err := h.catalogService.FilterProducts(r.Context(), filter)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

// ListCategories godoc
//
//	@Summary	List public categories
//	@Tags		Catalog
//	@Produce	json
//	@Success	200	{array}	models.Category
//	@Router		/categories [get]
func (h *CatalogHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		categories, err := h.catalogService.ListCategories(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, categories)
	}
}

// CreateProduct godoc
//
//	@Summary	Create a record
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		product	body		models.CreateProductRequest	true	"Product"
//	@Success	201		{object}	models.Product
//	@Failure	400		{object}	response.ErrorResponse
//	@Failure	403		{object}	response.ErrorResponse	"Admins only"
//	@Security	SessionAuth
//	@Router		/admin/products [post]
func (h *CatalogHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := currentSession(w, r)
		if !ok {
			return
		}

		var req models.CreateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		product, err := h.catalogService.CreateProduct(r.Context(), session, &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, product)
	}
}

// UpdateProduct godoc
//
//	@Summary	Edit a record
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Product ID"
//	@Param		product	body		models.UpdateProductRequest	true	"Fields to change"
//	@Success	200		{object}	models.Product
//	@Failure	400		{object}	response.ErrorResponse
//	@Failure	403		{object}	response.ErrorResponse	"Admins only"
//	@Security	SessionAuth
//	@Router		/admin/products/{id} [patch]
func (h *CatalogHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := currentSession(w, r)
		if !ok {
			return
		}

		var req models.UpdateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		product, err := h.catalogService.UpdateProduct(r.Context(), session, r.PathValue("id"), &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// DeleteProduct godoc
//
//	@Summary	Delete a record
//	@Tags		Admin
//	@Produce	json
//	@Param		id	path		string	true	"Product ID"
//	@Success	200	{object}	response.APIResponse
//	@Failure	403	{object}	response.ErrorResponse	"Admins only"
//	@Security	SessionAuth
//	@Router		/admin/products/{id} [delete]
func (h *CatalogHandler) DeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := currentSession(w, r)
		if !ok {
			return
		}

		id := r.PathValue("id")

		if err := h.catalogService.DeleteProduct(r.Context(), session, id); err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, map[string]string{"id": id})
	}
}

// CreateCategory godoc
//
//	@Summary	Create a category
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		category	body		models.CategoryRequest	true	"Category"
//	@Success	201			{object}	models.Category
//	@Failure	403			{object}	response.ErrorResponse	"Admins only"
//	@Security	SessionAuth
//	@Router		/admin/categories [post]
func (h *CatalogHandler) CreateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := currentSession(w, r)
		if !ok {
			return
		}

		var req models.CategoryRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		category, err := h.catalogService.CreateCategory(r.Context(), session, &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, category)
	}
}

// UpdateCategory godoc
//
//	@Summary	Edit a category
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		id			path		string					true	"Category ID"
//	@Param		category	body		models.CategoryRequest	true	"Category"
//	@Success	200			{object}	models.Category
//	@Failure	403			{object}	response.ErrorResponse	"Admins only"
//	@Security	SessionAuth
//	@Router		/admin/categories/{id} [patch]
func (h *CatalogHandler) UpdateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := currentSession(w, r)
		if !ok {
			return
		}

		var req models.CategoryRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		category, err := h.catalogService.UpdateCategory(r.Context(), session, r.PathValue("id"), &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, category)
	}
}

// DeleteCategory godoc
//
//	@Summary	Delete a category
//	@Tags		Admin
//	@Produce	json
//	@Param		id	path		string	true	"Category ID"
//	@Success	200	{object}	response.APIResponse
//	@Failure	403	{object}	response.ErrorResponse	"Admins only"
//	@Security	SessionAuth
//	@Router		/admin/categories/{id} [delete]
func (h *CatalogHandler) DeleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := currentSession(w, r)
		if !ok {
			return
		}

		id := r.PathValue("id")

		if err := h.catalogService.DeleteCategory(r.Context(), session, id); err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, map[string]string{"id": id})
	}
}

func parsePrice(raw, field string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}

	price, err := decimal.NewFromString(raw)
	if err != nil || price.IsNegative() {
		return nil, errors.AddValidationError(field, "deve ser um valor numérico não negativo")
	}

	return &price, nil
}
