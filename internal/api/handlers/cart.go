package handlers

import (
	"log/slog"
	"net/http"

	"github.com/discool/storefront/internal/api/middleware"
	"github.com/discool/storefront/internal/models"
	service "github.com/discool/storefront/internal/services"
	"github.com/discool/storefront/internal/utils"
	"github.com/discool/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// GetCart godoc
//
//	@Summary		Get the session cart
//	@Description	Returns the cart kept in the shopper's session with freshly computed totals. No login needed.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.CartResponse
//	@Router			/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := currentSession(w, r)
		if !ok {
			return
		}

		response.Success(w, http.StatusOK, h.cartService.GetCart(r.Context(), session))
	}
}

// AddItem godoc
//
//	@Summary		Add a record to the cart
//	@Description	Adds a product, merging with an existing line. Quantity defaults to 1 and is capped by available stock.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.AddItemRequest	true	"Product and quantity"
//	@Success		200		{object}	models.CartResponse
//	@Failure		400		{object}	response.ErrorResponse	"Invalid quantity or not enough stock"
//	@Failure		404		{object}	response.ErrorResponse	"Product not found"
//	@Failure		502		{object}	response.ErrorResponse	"Store backend unreachable"
//	@Router			/cart/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, ok := currentSession(w, r)
		if !ok {
			return
		}

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add item input")
			return
		}

		cart, err := h.cartService.AddItem(r.Context(), session, &req)
		if err != nil {
			logger.Warn("Failed to add item", slog.String("product_id", req.ProductID), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to cart", slog.String("product_id", req.ProductID))
		response.Success(w, http.StatusOK, cart)
	}
}

// UpdateQuantity godoc
//
//	@Summary		Change a line's quantity
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			productId	path		string							true	"Product ID"
//	@Param			quantity	body		models.UpdateQuantityRequest	true	"New quantity (at least 1)"
//	@Success		200			{object}	models.CartResponse
//	@Failure		400			{object}	response.ErrorResponse	"Quantity below 1 or above stock"
//	@Failure		404			{object}	response.ErrorResponse	"Item not in cart"
//	@Router			/cart/items/{productId} [put]
func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, ok := currentSession(w, r)
		if !ok {
			return
		}

		productID := r.PathValue("productId")

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid quantity input", slog.String("product_id", productID))
			return
		}

		cart, err := h.cartService.UpdateQuantity(r.Context(), session, productID, req.Quantity)
		if err != nil {
			logger.Warn("Failed to update quantity", slog.String("product_id", productID), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// RemoveItem godoc
//
//	@Summary		Remove a line from the cart
//	@Description	Removing a product that is not in the cart is a no-op.
//	@Tags			Cart
//	@Produce		json
//	@Param			productId	path		string	true	"Product ID"
//	@Success		200			{object}	models.CartResponse
//	@Router			/cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := currentSession(w, r)
		if !ok {
			return
		}

		response.Success(w, http.StatusOK, h.cartService.RemoveItem(r.Context(), session, r.PathValue("productId")))
	}
}

// ClearCart godoc
//
//	@Summary	Empty the cart
//	@Tags		Cart
//	@Produce	json
//	@Success	200	{object}	models.CartResponse
//	@Router		/cart [delete]
func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := currentSession(w, r)
		if !ok {
			return
		}

		middleware.LoggerFromContext(r.Context()).Info("Cart cleared")
		response.Success(w, http.StatusOK, h.cartService.ClearCart(r.Context(), session))
	}
}
