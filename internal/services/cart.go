package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/discool/storefront/internal/api/middleware"
	"github.com/discool/storefront/internal/errors"
	"github.com/discool/storefront/internal/models"
	repository "github.com/discool/storefront/internal/repositories"
)

type CartService interface {
	GetCart(ctx context.Context, session *models.Session) *models.CartResponse
	AddItem(ctx context.Context, session *models.Session, req *models.AddItemRequest) (*models.CartResponse, error)
	UpdateQuantity(ctx context.Context, session *models.Session, productID string, quantity int) (*models.CartResponse, error)
	RemoveItem(ctx context.Context, session *models.Session, productID string) *models.CartResponse
	ClearCart(ctx context.Context, session *models.Session) *models.CartResponse
}

type cartService struct {
	products repository.ProductRepository
}

// NewCartService operates on the session's cart. The only network call is the product lookup on add.
func NewCartService(products repository.ProductRepository) CartService {
	return &cartService{products: products}
}

func (s *cartService) GetCart(ctx context.Context, session *models.Session) *models.CartResponse {
	return models.NewCartResponse(session.Cart)
}

func (s *cartService) AddItem(ctx context.Context, session *models.Session, req *models.AddItemRequest) (*models.CartResponse, error) {

	logger := middleware.LoggerFromContext(ctx)

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	product, err := s.products.GetProduct(ctx, req.ProductID)
	if err != nil {
		logger.Warn("Product lookup failed on add", slog.String("product_id", req.ProductID), slog.String("error", err.Error()))
		return nil, err
	}

	if product.AvailableStock() == 0 {
		return nil, errors.ValidationError(fmt.Sprintf("%s está esgotado.", product.Name))
	}

	if err := session.Cart.Add(product.LineItem(), quantity); err != nil {
		return nil, cartError(err, product.AvailableStock())
	}

	leaveHandoff(session)

	logger.Info("Item added to cart",
		slog.String("product_id", product.ID),
		slog.Int("quantity", quantity),
		slog.Int("total_items", session.Cart.Totals().TotalItems),
	)

	return models.NewCartResponse(session.Cart), nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, session *models.Session, productID string, quantity int) (*models.CartResponse, error) {

	ceiling := 0
	if line, ok := session.Cart.Find(productID); ok {
		ceiling = line.MaxStock
	}

	if err := session.Cart.SetQuantity(productID, quantity); err != nil {
		return nil, cartError(err, ceiling)
	}

	leaveHandoff(session)

	return models.NewCartResponse(session.Cart), nil
}

func (s *cartService) RemoveItem(ctx context.Context, session *models.Session, productID string) *models.CartResponse {

	session.Cart.Remove(productID)
	leaveHandoff(session)

	return models.NewCartResponse(session.Cart)
}

// ClearCart is the shopper emptying the cart by hand. The checkout flow itself only clears after an order.
func (s *cartService) ClearCart(ctx context.Context, session *models.Session) *models.CartResponse {

	session.Cart.Clear()
	leaveHandoff(session)

	middleware.LoggerFromContext(ctx).Info("Cart cleared by shopper")

	return models.NewCartResponse(session.Cart)
}

// leaveHandoff starts a fresh checkout once the shopper changes the cart after an order was placed.
func leaveHandoff(session *models.Session) {
	if session.Checkout.Step == models.StepPaymentHandoff {
		session.Checkout.Reset()
	}
}

func cartError(err error, available int) error {
	switch {
	case errors.Is(err, models.ErrInvalidQuantity):
		return errors.ValidationError("A quantidade mínima é 1.").WithError(err)
	case errors.Is(err, models.ErrItemNotInCart):
		return errors.NotFoundError("Item não encontrado no carrinho.").WithError(err)
	case errors.Is(err, models.ErrExceedsStock):
		return errors.ValidationError(fmt.Sprintf("Quantidade indisponível. Estoque atual: %d", available)).
			WithMeta("available_stock", available).
			WithError(err)
	default:
		return errors.InternalError(errors.GenericMessage).WithError(err)
	}
}
