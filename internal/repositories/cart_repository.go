package repository

import (
	"context"
	"net/http"
	"net/url"

	"github.com/discool/storefront/internal/models"
)

// BackendCartRepository manages the persisted cart the order API assembles orders from.
type BackendCartRepository interface {
	FindCartByCustomer(ctx context.Context, token string, customerID string) (*models.BackendCart, error)
	CreateCart(ctx context.Context, token string, customerID string, items []models.OrderItem) (*models.BackendCart, error)
	ReplaceCartItems(ctx context.Context, token string, cartID string, items []models.OrderItem) (*models.BackendCart, error)
}

type backendCartRepository struct {
	client *Client
}

func NewBackendCartRepo(client *Client) BackendCartRepository {
	return &backendCartRepository{client: client}
}

// FindCartByCustomer returns (nil, nil) when the customer has no cart yet.
func (r *backendCartRepository) FindCartByCustomer(ctx context.Context, token string, customerID string) (*models.BackendCart, error) {

	var record cartRecord

	req := apiRequest{method: http.MethodGet, path: "/carrinho/cliente/" + url.PathEscape(customerID), route: "/carrinho/cliente/:clienteId", token: token}

	if err := r.client.do(ctx, req, &record); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	cart := record.toModel()
	if cart.ID == "" {
		return nil, nil
	}

	return &cart, nil
}

func (r *backendCartRepository) CreateCart(ctx context.Context, token string, customerID string, items []models.OrderItem) (*models.BackendCart, error) {

	payload := map[string]any{
		"clienteId": customerID,
		"itens":     itemPayloads(items),
	}

	var record cartRecord

	if err := r.client.do(ctx, apiRequest{method: http.MethodPost, path: "/carrinho", token: token, body: payload}, &record); err != nil {
		return nil, err
	}

	cart := record.toModel()

	return &cart, nil
}

func (r *backendCartRepository) ReplaceCartItems(ctx context.Context, token string, cartID string, items []models.OrderItem) (*models.BackendCart, error) {

	payload := map[string]any{"itens": itemPayloads(items)}

	var record cartRecord

	req := apiRequest{method: http.MethodPut, path: "/carrinho/" + url.PathEscape(cartID) + "/itens", route: "/carrinho/:id/itens", token: token, body: payload}
	if err := r.client.do(ctx, req, &record); err != nil {
		return nil, err
	}

	cart := record.toModel()
	if cart.ID == "" {
		cart.ID = cartID
	}

	return &cart, nil
}
