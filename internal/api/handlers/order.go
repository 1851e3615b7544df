package handlers

import (
	"log/slog"
	"net/http"

	"github.com/discool/storefront/internal/api/middleware"
	service "github.com/discool/storefront/internal/services"
	"github.com/discool/storefront/internal/utils/response"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// ListOrders godoc
//
//	@Summary		List the customer's orders
//	@Description	Newest first.
//	@Tags			Orders
//	@Produce		json
//	@Success		200	{array}		models.Order
//	@Failure		401	{object}	response.ErrorResponse	"Login required"
//	@Security		SessionAuth
//	@Router			/orders [get]
func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := currentSession(w, r)
		if !ok {
			return
		}

		orders, err := h.orderService.ListOrders(r.Context(), session)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to list orders", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, orders)
	}
}

// GetOrder godoc
//
//	@Summary	Get one of the customer's orders
//	@Tags		Orders
//	@Produce	json
//	@Param		id	path		string	true	"Order ID"
//	@Success	200	{object}	models.Order
//	@Failure	404	{object}	response.ErrorResponse	"Order not found or owned by someone else"
//	@Security	SessionAuth
//	@Router		/orders/{id} [get]
func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := currentSession(w, r)
		if !ok {
			return
		}

		order, err := h.orderService.GetOrder(r.Context(), session, r.PathValue("id"))
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

// CancelOrder godoc
//
//	@Summary		Cancel a pending order
//	@Description	Only orders still PENDENTE can be cancelled.
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path		string	true	"Order ID"
//	@Success		200	{object}	models.Order
//	@Failure		400	{object}	response.ErrorResponse	"Order no longer pending"
//	@Failure		404	{object}	response.ErrorResponse
//	@Security		SessionAuth
//	@Router			/orders/{id}/cancel [post]
func (h *OrderHandler) CancelOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, ok := currentSession(w, r)
		if !ok {
			return
		}

		id := r.PathValue("id")

		order, err := h.orderService.CancelOrder(r.Context(), session, id)
		if err != nil {
			logger.Warn("Failed to cancel order", slog.String("order_id", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Order cancelled", slog.String("order_id", id))
		response.Success(w, http.StatusOK, order)
	}
}
