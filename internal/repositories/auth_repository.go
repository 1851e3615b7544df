package repository

import (
	"context"
	"net/http"

	"github.com/discool/storefront/internal/models"
)

type AuthRepository interface {
	Login(ctx context.Context, email, password string) (*models.AuthResult, error)
	Register(ctx context.Context, req *models.RegisterRequest) (*models.Customer, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ValidateResetCode(ctx context.Context, email, code string) error
	ConfirmPasswordReset(ctx context.Context, req *models.PasswordResetConfirmRequest) error
}

type authRepository struct {
	client *Client
}

func NewAuthRepo(client *Client) AuthRepository {
	return &authRepository{client: client}
}

type authRecord struct {
	Token       string          `json:"token"`
	AccessToken string          `json:"access_token"`
	Cliente     *customerRecord `json:"cliente"`
	Usuario     *customerRecord `json:"usuario"`
}

func (r *authRepository) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {

	var record authRecord

	payload := map[string]any{"email": email, "senha": password}

	if err := r.client.do(ctx, apiRequest{method: http.MethodPost, path: "/login", body: payload}, &record); err != nil {
		return nil, err
	}

	result := &models.AuthResult{Token: record.Token}
	if result.Token == "" {
		result.Token = record.AccessToken
	}

	switch {
	case record.Cliente != nil:
		result.Customer = record.Cliente.toModel()
	case record.Usuario != nil:
		result.Customer = record.Usuario.toModel()
	}

	return result, nil
}

func (r *authRepository) Register(ctx context.Context, req *models.RegisterRequest) (*models.Customer, error) {

	payload := map[string]any{
		"nome":  req.Name,
		"email": req.Email,
		"senha": req.Password,
	}

	if req.CPF != "" {
		payload["cpf"] = req.CPF
	}

	if req.Phone != "" {
		payload["telefone"] = req.Phone
	}

	var record customerRecord

	if err := r.client.do(ctx, apiRequest{method: http.MethodPost, path: "/cliente", body: payload}, &record); err != nil {
		return nil, err
	}

	customer := record.toModel()
	if customer.Email == "" {
		customer.Email = req.Email
	}
	if customer.Name == "" {
		customer.Name = req.Name
	}

	return &customer, nil
}

func (r *authRepository) RequestPasswordReset(ctx context.Context, email string) error {
	return r.client.do(ctx, apiRequest{method: http.MethodPost, path: "/senha/solicitar", body: map[string]any{"email": email}}, nil)
}

func (r *authRepository) ValidateResetCode(ctx context.Context, email, code string) error {
	return r.client.do(ctx, apiRequest{method: http.MethodPost, path: "/senha/validar", body: map[string]any{"email": email, "codigo": code}}, nil)
}

func (r *authRepository) ConfirmPasswordReset(ctx context.Context, req *models.PasswordResetConfirmRequest) error {
	payload := map[string]any{"email": req.Email, "codigo": req.Code, "novaSenha": req.NewPassword}

	return r.client.do(ctx, apiRequest{method: http.MethodPost, path: "/senha/redefinir", body: payload}, nil)
}
