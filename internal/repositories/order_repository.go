package repository

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/discool/storefront/internal/models"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, token string, draft *models.OrderDraft) (*models.Order, error)
	GetOrder(ctx context.Context, token string, id string) (*models.Order, error)
	ListOrdersByCustomer(ctx context.Context, token string, customerID string) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, token string, id string, status models.OrderStatus) (*models.Order, error)
}

type orderRepository struct {
	client *Client
}

func NewOrderRepository(client *Client) OrderRepository {
	return &orderRepository{client: client}
}

func (r *orderRepository) CreateOrder(ctx context.Context, token string, draft *models.OrderDraft) (*models.Order, error) {

	payload := map[string]any{
		"clienteId":  draft.CustomerID,
		"enderecoId": draft.AddressID,
		"carrinhoId": draft.CartID,
		"valorFrete": money(draft.ShippingPrice),
		"tipoFrete":  draft.ShippingName,
		"desconto":   money(draft.Discount),
		"descricao":  draft.Description,
		"data":       draft.PlacedAt.UTC().Format(time.RFC3339),
	}

	if draft.CouponCode != "" {
		payload["cupom"] = draft.CouponCode
	}

	req := apiRequest{method: http.MethodPost, path: "/pedido", token: token, body: payload}
	if draft.IdempotencyKey != "" {
		req.headers = map[string]string{"Idempotency-Key": draft.IdempotencyKey}
	}

	var record orderRecord

	if err := r.client.do(ctx, req, &record); err != nil {
		return nil, err
	}

	order := record.toModel()

	if order.CustomerID == "" {
		order.CustomerID = draft.CustomerID
	}

	if order.AddressID == "" {
		order.AddressID = draft.AddressID
	}

	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}

	if order.CreatedAt.IsZero() {
		order.CreatedAt = draft.PlacedAt
	}

	return &order, nil
}

func (r *orderRepository) GetOrder(ctx context.Context, token string, id string) (*models.Order, error) {

	var record orderRecord

	req := apiRequest{method: http.MethodGet, path: "/pedido/" + url.PathEscape(id), route: "/pedido/:id", token: token}
	if err := r.client.do(ctx, req, &record); err != nil {
		return nil, err
	}

	order := record.toModel()
	if order.ID == "" {
		order.ID = id
	}

	return &order, nil
}

func (r *orderRepository) ListOrdersByCustomer(ctx context.Context, token string, customerID string) ([]models.Order, error) {

	var records []orderRecord

	req := apiRequest{method: http.MethodGet, path: "/pedido/lista/" + url.PathEscape(customerID), route: "/pedido/lista/:clienteId", token: token}
	if err := r.client.do(ctx, req, &records); err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0, len(records))
	for _, record := range records {
		orders = append(orders, record.toModel())
	}

	return orders, nil
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, token string, id string, status models.OrderStatus) (*models.Order, error) {

	var record orderRecord

	req := apiRequest{
		method: http.MethodPatch,
		path:   "/pedido/" + url.PathEscape(id),
		route:  "/pedido/:id",
		token:  token,
		body:   map[string]any{"status": status},
	}

	if err := r.client.do(ctx, req, &record); err != nil {
		return nil, err
	}

	order := record.toModel()
	if order.ID == "" {
		order.ID = id
	}

	if order.Status == "" {
		order.Status = status
	}

	return &order, nil
}
