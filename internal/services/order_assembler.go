package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/discool/storefront/internal/api/middleware"
	"github.com/discool/storefront/internal/errors"
	"github.com/discool/storefront/internal/metrics"
	"github.com/discool/storefront/internal/models"
	repository "github.com/discool/storefront/internal/repositories"
)

// OrderInput is what the checkout has settled on by the time the shopper confirms.
type OrderInput struct {
	AddressID   string
	Shipping    models.ShippingOption
	Summary     models.CheckoutSummary
	Description string
}

type OrderAssembler interface {
	Assemble(ctx context.Context, session *models.Session, input OrderInput) (*models.PlacedOrder, error)
}

type orderAssembler struct {
	stock         StockVerifier
	carts         repository.BackendCartRepository
	orders        repository.OrderRepository
	notifications NotificationService
	now           func() time.Time
}

func NewOrderAssembler(stock StockVerifier, carts repository.BackendCartRepository, orders repository.OrderRepository,
	notifications NotificationService) OrderAssembler {

	return &orderAssembler{stock: stock, carts: carts, orders: orders, notifications: notifications, now: time.Now}
}

// Assemble turns the session cart into a backend order. Steps run strictly in order and any failure
// leaves the cart as it was; only a created order empties it.
func (a *orderAssembler) Assemble(ctx context.Context, session *models.Session, input OrderInput) (*models.PlacedOrder, error) {

	logger := middleware.LoggerFromContext(ctx)

	if !session.Authenticated() {
		return nil, errors.UnauthorizedError("Faça login para finalizar o pedido.")
	}

	if session.Cart.IsEmpty() {
		return nil, errors.ValidationError("Seu carrinho está vazio.")
	}

	if input.AddressID == "" {
		return nil, errors.ValidationError("Selecione um endereço de entrega.")
	}

	// 1. stock, again, right before committing
	verdicts := a.stock.Verify(ctx, session.Cart.StockRequests())
	if err := ShortfallError(verdicts); err != nil {
		metrics.CheckoutTransition("place_order", "stock_shortfall")
		return nil, err
	}

	token := session.Token()
	customerID := session.CustomerID()
	items := models.OrderItemsFromCart(&session.Cart)

	// 2. the order API builds orders from the customer's persisted cart
	backendCart, err := a.carts.FindCartByCustomer(ctx, token, customerID)
	if err != nil {
		logger.Error("Failed to look up backend cart", slog.String("error", err.Error()))
		return nil, err
	}

	if backendCart == nil {
		backendCart, err = a.carts.CreateCart(ctx, token, customerID, items)
	} else {
		backendCart, err = a.carts.ReplaceCartItems(ctx, token, backendCart.ID, items)
	}

	if err != nil {
		logger.Error("Failed to sync backend cart", slog.String("error", err.Error()))
		return nil, err
	}

	// 3. create the order
	draft := &models.OrderDraft{
		CustomerID:     customerID,
		AddressID:      input.AddressID,
		CartID:         backendCart.ID,
		ShippingPrice:  input.Summary.Shipping,
		ShippingName:   input.Shipping.Name,
		Discount:       input.Summary.Discount,
		CouponCode:     input.Summary.CouponCode,
		Description:    input.Description,
		PlacedAt:       a.now().UTC(),
		IdempotencyKey: session.Checkout.AttemptID,
	}

	order, err := a.orders.CreateOrder(ctx, token, draft)
	if err != nil {
		metrics.CheckoutTransition("place_order", "rejected")
		logger.Error("Order creation failed", slog.String("error", err.Error()))
		return nil, err
	}

	total := input.Summary.Total
	if order.Total.Valid {
		total = order.Total.Decimal
	}

	placed := &models.PlacedOrder{OrderID: order.ID, Total: total, PlacedAt: draft.PlacedAt}

	// 4. hand off
	session.Cart.Clear()
	session.Checkout.Step = models.StepPaymentHandoff
	session.Checkout.Order = placed
	session.Checkout.Payment = nil

	metrics.OrderPlaced()
	metrics.CheckoutTransition("place_order", "ok")

	logger.Info("Order placed",
		slog.String("order_id", placed.OrderID),
		slog.String("total", placed.Total.StringFixed(2)),
	)

	if a.notifications != nil {
		_ = a.notifications.SendOrderConfirmation(context.WithoutCancel(ctx), session.Checkout.Contact, placed)
	}

	return placed, nil
}
