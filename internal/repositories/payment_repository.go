package repository

import (
	"context"
	"net/http"
	"net/url"

	"github.com/discool/storefront/internal/models"
)

type PaymentRepository interface {
	CreatePayment(ctx context.Context, token string, payment *models.Payment) (*models.Payment, error)
	UpdatePaymentStatus(ctx context.Context, token string, id string, status models.PaymentStatus, providerRef string) error
}

type paymentRepository struct {
	client *Client
}

func NewPaymentRepository(client *Client) PaymentRepository {
	return &paymentRepository{client: client}
}

func (r *paymentRepository) CreatePayment(ctx context.Context, token string, payment *models.Payment) (*models.Payment, error) {

	payload := map[string]any{
		"pedidoId": payment.OrderID,
		"metodo":   payment.Method,
		"valor":    money(payment.Amount),
		"status":   payment.Status,
	}

	var record paymentRecord

	if err := r.client.do(ctx, apiRequest{method: http.MethodPost, path: "/pagamento", token: token, body: payload}, &record); err != nil {
		return nil, err
	}

	created := record.toModel()

	if created.OrderID == "" {
		created.OrderID = payment.OrderID
	}
	if created.Method == "" {
		created.Method = payment.Method
	}
	if created.Amount.IsZero() {
		created.Amount = payment.Amount
	}
	if created.Status == "" {
		created.Status = payment.Status
	}

	return &created, nil
}

func (r *paymentRepository) UpdatePaymentStatus(ctx context.Context, token string, id string, status models.PaymentStatus, providerRef string) error {

	payload := map[string]any{"status": status}
	if providerRef != "" {
		payload["referenciaExterna"] = providerRef
	}

	req := apiRequest{method: http.MethodPatch, path: "/pagamento/" + url.PathEscape(id), route: "/pagamento/:id", token: token, body: payload}

	return r.client.do(ctx, req, nil)
}
