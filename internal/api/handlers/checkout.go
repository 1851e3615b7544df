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

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	validator       *validator.Validate
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService, validator: validator.New()}
}

type checkoutAction func(h *CheckoutHandler, r *http.Request, session *models.Session) (*models.CheckoutView, error)

// viewHandler runs a body-less checkout transition and renders the resulting view.
func (h *CheckoutHandler) viewHandler(name string, action checkoutAction) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, ok := currentSession(w, r)
		if !ok {
			return
		}

		view, err := action(h, r, session)
		if err != nil {
			logger.Warn("Checkout "+name+" failed", slog.String("step", string(session.Checkout.Step)), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

// View godoc
//
//	@Summary		Current checkout state
//	@Description	Step, contact, addresses, shipping options, coupon and the summary computed from the current cart.
//	@Tags			Checkout
//	@Produce		json
//	@Success		200	{object}	models.CheckoutView
//	@Router			/checkout [get]
func (h *CheckoutHandler) View() http.HandlerFunc {
	return h.viewHandler("view", func(h *CheckoutHandler, r *http.Request, session *models.Session) (*models.CheckoutView, error) {
		return h.checkoutService.View(r.Context(), session)
	})
}

// Proceed godoc
//
//	@Summary		Move from cart to contact and address
//	@Description	Requires login and a non-empty cart. Verifies stock and loads saved addresses concurrently.
//	@Tags			Checkout
//	@Produce		json
//	@Success		200	{object}	models.CheckoutView
//	@Failure		400	{object}	response.ErrorResponse	"Empty cart"
//	@Failure		401	{object}	response.ErrorResponse	"Login required"
//	@Failure		409	{object}	response.ErrorResponse	"Order already placed"
//	@Router			/checkout/proceed [post]
func (h *CheckoutHandler) Proceed() http.HandlerFunc {
	return h.viewHandler("proceed", func(h *CheckoutHandler, r *http.Request, session *models.Session) (*models.CheckoutView, error) {
		return h.checkoutService.Proceed(r.Context(), session)
	})
}

// Back godoc
//
//	@Summary	Return to the cart step
//	@Tags		Checkout
//	@Produce	json
//	@Success	200	{object}	models.CheckoutView
//	@Failure	409	{object}	response.ErrorResponse	"Order already placed"
//	@Router		/checkout/back [post]
func (h *CheckoutHandler) Back() http.HandlerFunc {
	return h.viewHandler("back", func(h *CheckoutHandler, r *http.Request, session *models.Session) (*models.CheckoutView, error) {
		return h.checkoutService.Back(r.Context(), session)
	})
}

// UpdateContact godoc
//
//	@Summary	Set the order contact
//	@Tags		Checkout
//	@Accept		json
//	@Produce	json
//	@Param		contact	body		models.Contact	true	"Name, e-mail and phone"
//	@Success	200		{object}	models.CheckoutView
//	@Failure	400		{object}	response.ErrorResponse
//	@Router		/checkout/contact [put]
func (h *CheckoutHandler) UpdateContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.Contact
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		h.viewHandler("contact", func(h *CheckoutHandler, r *http.Request, session *models.Session) (*models.CheckoutView, error) {
			return h.checkoutService.UpdateContact(r.Context(), session, &req)
		})(w, r)
	}
}

// VerifyStock godoc
//
//	@Summary		Check stock for every cart line
//	@Description	One verdict per cart line, in cart order. Lookup failures are reported per line.
//	@Tags			Checkout
//	@Produce		json
//	@Success		200	{object}	models.StockReport
//	@Failure		400	{object}	response.ErrorResponse	"Empty cart"
//	@Router			/checkout/stock [get]
func (h *CheckoutHandler) VerifyStock() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := currentSession(w, r)
		if !ok {
			return
		}

		report, err := h.checkoutService.VerifyStock(r.Context(), session)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, report)
	}
}

// SelectAddress godoc
//
//	@Summary	Choose the delivery address
//	@Tags		Checkout
//	@Accept		json
//	@Produce	json
//	@Param		address	body		models.SelectAddressRequest	true	"Saved address id"
//	@Success	200		{object}	models.CheckoutView
//	@Failure	404		{object}	response.ErrorResponse	"Address not found"
//	@Failure	409		{object}	response.ErrorResponse	"Wrong checkout step"
//	@Router		/checkout/address [put]
func (h *CheckoutHandler) SelectAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.SelectAddressRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		h.viewHandler("address", func(h *CheckoutHandler, r *http.Request, session *models.Session) (*models.CheckoutView, error) {
			return h.checkoutService.SelectAddress(r.Context(), session, req.AddressID)
		})(w, r)
	}
}

// QuoteShipping godoc
//
//	@Summary		Quote shipping options
//	@Description	Quotes the given zip, or the selected address's zip when the body is omitted.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			zip	body		models.QuoteShippingRequest	false	"Destination zip (CEP)"
//	@Success		200	{object}	models.ShippingQuote
//	@Failure		400	{object}	response.ErrorResponse	"Invalid zip or empty cart"
//	@Router			/checkout/shipping/quote [post]
func (h *CheckoutHandler) QuoteShipping() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := currentSession(w, r)
		if !ok {
			return
		}

		var req models.QuoteShippingRequest
		if hasBody(r) && !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		quote, err := h.checkoutService.QuoteShipping(r.Context(), session, req.Zip)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, quote)
	}
}

// SelectShipping godoc
//
//	@Summary	Choose a shipping option
//	@Tags		Checkout
//	@Accept		json
//	@Produce	json
//	@Param		option	body		models.SelectShippingRequest	true	"Option id from the current quote"
//	@Success	200		{object}	models.CheckoutView
//	@Failure	400		{object}	response.ErrorResponse	"Unknown option"
//	@Router		/checkout/shipping [put]
func (h *CheckoutHandler) SelectShipping() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.SelectShippingRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		h.viewHandler("shipping", func(h *CheckoutHandler, r *http.Request, session *models.Session) (*models.CheckoutView, error) {
			return h.checkoutService.SelectShipping(r.Context(), session, req.OptionID)
		})(w, r)
	}
}

// ApplyCoupon godoc
//
//	@Summary		Apply a coupon code
//	@Description	A rejected code clears any applied discount.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			coupon	body		models.ApplyCouponRequest	true	"Coupon code"
//	@Success		200		{object}	models.CheckoutView
//	@Failure		422		{object}	response.ErrorResponse	"Unknown code or subtotal below the minimum"
//	@Router			/checkout/coupon [post]
func (h *CheckoutHandler) ApplyCoupon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.ApplyCouponRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		h.viewHandler("coupon", func(h *CheckoutHandler, r *http.Request, session *models.Session) (*models.CheckoutView, error) {
			return h.checkoutService.ApplyCoupon(r.Context(), session, req.Code)
		})(w, r)
	}
}

// RemoveCoupon godoc
//
//	@Summary	Remove the applied coupon
//	@Tags		Checkout
//	@Produce	json
//	@Success	200	{object}	models.CheckoutView
//	@Router		/checkout/coupon [delete]
func (h *CheckoutHandler) RemoveCoupon() http.HandlerFunc {
	return h.viewHandler("remove coupon", func(h *CheckoutHandler, r *http.Request, session *models.Session) (*models.CheckoutView, error) {
		return h.checkoutService.RemoveCoupon(r.Context(), session)
	})
}

// PlaceOrder godoc
//
//	@Summary		Confirm the order
//	@Description	Re-verifies stock, syncs the backend cart and creates the order. Confirming twice returns the same order.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			order	body		models.PlaceOrderRequest	false	"Optional order note"
//	@Success		201		{object}	models.CheckoutView
//	@Failure		400		{object}	response.ErrorResponse	"Missing contact fields, address or shipping"
//	@Failure		401		{object}	response.ErrorResponse	"Login required"
//	@Failure		409		{object}	response.ErrorResponse	"Stock shortfall"
//	@Failure		422		{object}	response.ErrorResponse	"Coupon no longer valid"
//	@Failure		502		{object}	response.ErrorResponse	"Store backend unreachable"
//	@Router			/checkout/order [post]
func (h *CheckoutHandler) PlaceOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, ok := currentSession(w, r)
		if !ok {
			return
		}

		var req models.PlaceOrderRequest
		if hasBody(r) && !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		view, err := h.checkoutService.PlaceOrder(r.Context(), session, &req)
		if err != nil {
			logger.Error("Failed to place order", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if view.Order != nil {
			logger.Info("Order placed", slog.String("order_id", view.Order.OrderID))
		}

		response.Success(w, http.StatusCreated, view)
	}
}
