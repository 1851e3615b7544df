package service

import (
	"context"
	"log/slog"
	"sort"

	"github.com/discool/storefront/internal/api/middleware"
	"github.com/discool/storefront/internal/errors"
	"github.com/discool/storefront/internal/models"
	repository "github.com/discool/storefront/internal/repositories"
)

type OrderService interface {
	ListOrders(ctx context.Context, session *models.Session) ([]models.Order, error)
	GetOrder(ctx context.Context, session *models.Session, id string) (*models.Order, error)
	CancelOrder(ctx context.Context, session *models.Session, id string) (*models.Order, error)
}

type orderService struct {
	repo repository.OrderRepository
}

func NewOrderService(repo repository.OrderRepository) OrderService {
	return &orderService{repo: repo}
}

// ListOrders returns the customer's orders, newest first.
func (s *orderService) ListOrders(ctx context.Context, session *models.Session) ([]models.Order, error) {

	orders, err := s.repo.ListOrdersByCustomer(ctx, session.Token(), session.CustomerID())
	if err != nil {
		return nil, err
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	return orders, nil
}

func (s *orderService) GetOrder(ctx context.Context, session *models.Session, id string) (*models.Order, error) {

	order, err := s.repo.GetOrder(ctx, session.Token(), id)
	if err != nil {
		return nil, err
	}

	// Someone else's order reads as missing.
	if order.CustomerID != "" && order.CustomerID != session.CustomerID() && !session.Auth.IsAdmin {
		middleware.LoggerFromContext(ctx).Warn("Order ownership mismatch", slog.String("order_id", id))
		return nil, errors.NotFoundError("Pedido não encontrado.")
	}

	return order, nil
}

func (s *orderService) CancelOrder(ctx context.Context, session *models.Session, id string) (*models.Order, error) {

	order, err := s.GetOrder(ctx, session, id)
	if err != nil {
		return nil, err
	}

	if order.Status != models.OrderStatusPending {
		return nil, errors.ValidationError("Só é possível cancelar pedidos pendentes.").
			WithMeta("status", string(order.Status))
	}

	updated, err := s.repo.UpdateOrderStatus(ctx, session.Token(), id, models.OrderStatusCancelled)
	if err != nil {
		return nil, err
	}

	middleware.LoggerFromContext(ctx).Info("Order cancelled", slog.String("order_id", id))

	return updated, nil
}
