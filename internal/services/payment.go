package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/discool/storefront/internal/api/middleware"
	"github.com/discool/storefront/internal/cache"
	"github.com/discool/storefront/internal/errors"
	"github.com/discool/storefront/internal/models"
	repository "github.com/discool/storefront/internal/repositories"
	"github.com/discool/storefront/pkg/stripe"
	"github.com/shopspring/decimal"
)

const webhookDedupTTL = 24 * time.Hour

type PaymentService interface {
	StartPayment(ctx context.Context, session *models.Session, req *models.CreatePaymentRequest) (*models.PaymentResponse, error)
	ProcessWebhook(ctx context.Context, payload []byte, signature string) (stripe.Event, error)
}

type PaymentConfig struct {
	Currency string
	// ServiceToken authenticates webhook-driven updates, which arrive without a shopper session.
	ServiceToken string
}

type paymentService struct {
	repo         repository.PaymentRepository
	stripeClient stripe.Client
	cache        cache.Cache
	cfg          PaymentConfig
}

// NewPaymentService records payments for handed-off orders. stripeClient may be nil, in which case
// card payments are recorded without a PaymentIntent and webhooks are refused.
func NewPaymentService(repo repository.PaymentRepository, stripeClient stripe.Client, c cache.Cache, cfg PaymentConfig) PaymentService {
	if cfg.Currency == "" {
		cfg.Currency = "brl"
	}

	return &paymentService{repo: repo, stripeClient: stripeClient, cache: c, cfg: cfg}
}

func (s *paymentService) StartPayment(ctx context.Context, session *models.Session, req *models.CreatePaymentRequest) (*models.PaymentResponse, error) {

	logger := middleware.LoggerFromContext(ctx)
	checkout := &session.Checkout

	if checkout.Step != models.StepPaymentHandoff || checkout.Order == nil {
		return nil, errors.CheckoutStepError("Finalize o pedido antes de escolher o pagamento.")
	}

	if existing := checkout.Payment; existing != nil && existing.Method == req.Method && existing.Status == models.PaymentStatusPending {
		return &models.PaymentResponse{Payment: existing, Message: "Pagamento já iniciado."}, nil
	}

	payment, err := s.repo.CreatePayment(ctx, session.Token(), &models.Payment{
		OrderID: checkout.Order.OrderID,
		Method:  req.Method,
		Amount:  checkout.Order.Total,
		Status:  models.PaymentStatusPending,
	})
	if err != nil {
		logger.Error("Payment creation failed", slog.String("order_id", checkout.Order.OrderID), slog.String("error", err.Error()))
		return nil, err
	}

	resp := &models.PaymentResponse{Payment: payment, Message: "Pagamento registrado."}

	if req.Method == "card" && s.stripeClient != nil {
		intent, err := s.stripeClient.CreatePaymentIntent(
			toMinorUnits(payment.Amount),
			s.cfg.Currency,
			fmt.Sprintf("Discool pedido %s", payment.OrderID),
			map[string]string{"payment_id": payment.ID, "order_id": payment.OrderID},
		)
		if err != nil {
			return nil, errors.ThirdPartyError("Não foi possível iniciar o pagamento com cartão.").WithError(err)
		}

		payment.Provider = "stripe"
		payment.ProviderRef = intent.ID
		resp.ClientSecret = intent.ClientSecret

		if err := s.repo.UpdatePaymentStatus(ctx, session.Token(), payment.ID, payment.Status, intent.ID); err != nil {
			logger.Warn("Failed to record payment intent reference", slog.String("payment_id", payment.ID), slog.String("error", err.Error()))
		}
	}

	checkout.Payment = payment

	logger.Info("Payment started",
		slog.String("payment_id", payment.ID),
		slog.String("order_id", payment.OrderID),
		slog.String("method", payment.Method),
	)

	return resp, nil
}

// ProcessWebhook applies Stripe's verdict to the backend payment. Events already handled are skipped.
func (s *paymentService) ProcessWebhook(ctx context.Context, payload []byte, signature string) (stripe.Event, error) {

	logger := middleware.LoggerFromContext(ctx)

	if s.stripeClient == nil {
		return stripe.Event{}, errors.BadRequestError("Pagamentos com cartão não estão habilitados.")
	}

	event, err := s.stripeClient.VerifyWebhookSignature(payload, signature)
	if err != nil {
		return stripe.Event{}, errors.BadRequestError("Webhook signature verification failed").WithError(err)
	}

	var status models.PaymentStatus

	switch event.Type {
	case "payment_intent.succeeded":
		status = models.PaymentStatusApproved
	case "payment_intent.payment_failed", "payment_intent.canceled":
		status = models.PaymentStatusRefused
	case "charge.refunded":
		status = models.PaymentStatusRefunded
	default:
		return event, nil
	}

	dedupKey := cache.Key(cache.WebhookKeyPrefix, event.ID)

	var seen bool
	if found, err := s.cache.Get(ctx, dedupKey, &seen); err == nil && found {
		logger.Info("Webhook event already processed", slog.String("event_id", event.ID))
		return event, nil
	}

	paymentID, intentID := paymentRefs(event)
	if paymentID == "" {
		logger.Warn("Webhook event without payment reference", slog.String("event_id", event.ID), slog.String("type", string(event.Type)))
		return event, nil
	}

	if err := s.repo.UpdatePaymentStatus(ctx, s.cfg.ServiceToken, paymentID, status, intentID); err != nil {
		logger.Error("Failed to update payment status", slog.String("payment_id", paymentID), slog.String("error", err.Error()))
		return event, err
	}

	if err := s.cache.Set(ctx, dedupKey, true, webhookDedupTTL); err != nil {
		logger.Warn("Failed to mark webhook event", slog.String("event_id", event.ID), slog.String("error", err.Error()))
	}

	logger.Info("Payment status updated",
		slog.String("payment_id", paymentID),
		slog.String("status", string(status)),
	)

	return event, nil
}

// paymentRefs reads our payment id from the object's metadata and the PaymentIntent id from the object itself.
func paymentRefs(event stripe.Event) (paymentID, intentID string) {

	object := event.Data.Object

	if metadata, ok := object["metadata"].(map[string]any); ok {
		paymentID, _ = metadata["payment_id"].(string)
	}

	if strings.HasPrefix(string(event.Type), "payment_intent.") {
		intentID, _ = object["id"].(string)
	} else {
		intentID, _ = object["payment_intent"].(string)
	}

	return paymentID, intentID
}

func toMinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}
