package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/discool/storefront/internal/api/middleware"
	"github.com/discool/storefront/internal/errors"
	"github.com/discool/storefront/internal/models"
	service "github.com/discool/storefront/internal/services"
	"github.com/discool/storefront/internal/utils"
	"github.com/discool/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

const maxWebhookBytes = 64 << 10

type PaymentHandler struct {
	paymentService service.PaymentService
	validator      *validator.Validate
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, validator: validator.New()}
}

// StartPayment godoc
//
//	@Summary		Pay for the placed order
//	@Description	Records a payment for the order handed off by checkout. Card payments return a Stripe client secret when Stripe is enabled.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			payment	body		models.CreatePaymentRequest	true	"Payment method"
//	@Success		201		{object}	models.PaymentResponse
//	@Failure		400		{object}	response.ErrorResponse	"Invalid method"
//	@Failure		409		{object}	response.ErrorResponse	"No placed order in this checkout"
//	@Failure		502		{object}	response.ErrorResponse	"Payment provider or store backend failed"
//	@Security		SessionAuth
//	@Router			/checkout/payment [post]
func (h *PaymentHandler) StartPayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, ok := currentSession(w, r)
		if !ok {
			return
		}

		var req models.CreatePaymentRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid payment input")
			return
		}

		resp, err := h.paymentService.StartPayment(r.Context(), session, &req)
		if err != nil {
			logger.Error("Failed to start payment", slog.String("method", req.Method), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, resp)
	}
}

// HandleStripeWebhook godoc
//
//	@Summary		Stripe webhook
//	@Description	Verifies the Stripe signature and forwards the payment outcome to the store backend.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			Stripe-Signature	header		string	true	"Stripe signature"
//	@Success		200					{object}	response.APIResponse
//	@Failure		400					{object}	response.ErrorResponse	"Missing or invalid signature"
//	@Failure		502					{object}	response.ErrorResponse	"Backend update failed, Stripe will retry"
//	@Router			/payments/webhook [post]
func (h *PaymentHandler) HandleStripeWebhook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBytes))
		if err != nil {
			logger.Error("Error reading webhook body", slog.String("error", err.Error()))
			response.Error(w, errors.BadRequestError("Failed to read request body"))
			return
		}

		signature := r.Header.Get("Stripe-Signature")
		if signature == "" {
			logger.Warn("Missing Stripe signature")
			response.Error(w, errors.BadRequestError("Stripe Signature is required"))
			return
		}

		event, err := h.paymentService.ProcessWebhook(r.Context(), payload, signature)
		if err != nil {
			logger.Error("Failed to process payment webhook", slog.String("event_id", event.ID), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Payment webhook processed", slog.String("event_id", event.ID), slog.String("type", string(event.Type)))
		response.Success(w, http.StatusOK, map[string]bool{"received": true})
	}
}
