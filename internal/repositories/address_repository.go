package repository

import (
	"context"
	"net/http"
	"net/url"

	"github.com/discool/storefront/internal/models"
)

type AddressRepository interface {
	ListAddresses(ctx context.Context, token string) ([]models.Address, error)
	GetAddress(ctx context.Context, token string, id string) (*models.Address, error)
	CreateAddress(ctx context.Context, token string, customerID string, req *models.AddressRequest) (*models.Address, error)
	UpdateAddress(ctx context.Context, token string, id string, req *models.UpdateAddressRequest) (*models.Address, error)
	DeleteAddress(ctx context.Context, token string, id string) error
	SetDefaultAddress(ctx context.Context, token string, id string) error
}

type addressRepository struct {
	client *Client
}

func NewAddressRepo(client *Client) AddressRepository {
	return &addressRepository{client: client}
}

func (r *addressRepository) ListAddresses(ctx context.Context, token string) ([]models.Address, error) {

	var records []addressRecord

	if err := r.client.do(ctx, apiRequest{method: http.MethodGet, path: "/endereco", token: token}, &records); err != nil {
		return nil, err
	}

	addresses := make([]models.Address, 0, len(records))
	for _, record := range records {
		addresses = append(addresses, record.toModel())
	}

	return addresses, nil
}

func (r *addressRepository) GetAddress(ctx context.Context, token string, id string) (*models.Address, error) {

	var record addressRecord

	req := apiRequest{method: http.MethodGet, path: "/endereco/" + url.PathEscape(id), route: "/endereco/:id", token: token}
	if err := r.client.do(ctx, req, &record); err != nil {
		return nil, err
	}

	address := record.toModel()
	if address.ID == "" {
		address.ID = id
	}

	return &address, nil
}

func (r *addressRepository) CreateAddress(ctx context.Context, token string, customerID string, req *models.AddressRequest) (*models.Address, error) {

	payload := map[string]any{
		"rua":         req.Street,
		"numero":      req.Number,
		"bairro":      req.Neighborhood,
		"cidade":      req.City,
		"estado":      req.State,
		"cep":         req.Zip,
		"complemento": req.Complement,
		"padrao":      req.IsDefault,
	}

	var record addressRecord

	apiReq := apiRequest{method: http.MethodPost, path: "/endereco/" + url.PathEscape(customerID), route: "/endereco/:clienteId", token: token, body: payload}
	if err := r.client.do(ctx, apiReq, &record); err != nil {
		return nil, err
	}

	address := record.toModel()

	return &address, nil
}

func (r *addressRepository) UpdateAddress(ctx context.Context, token string, id string, req *models.UpdateAddressRequest) (*models.Address, error) {

	payload := map[string]any{}

	set := func(key string, value *string) {
		if value != nil {
			payload[key] = *value
		}
	}

	set("rua", req.Street)
	set("numero", req.Number)
	set("bairro", req.Neighborhood)
	set("cidade", req.City)
	set("estado", req.State)
	set("cep", req.Zip)
	set("complemento", req.Complement)

	var record addressRecord

	apiReq := apiRequest{method: http.MethodPatch, path: "/endereco/" + url.PathEscape(id), route: "/endereco/:id", token: token, body: payload}
	if err := r.client.do(ctx, apiReq, &record); err != nil {
		return nil, err
	}

	address := record.toModel()
	if address.ID == "" {
		address.ID = id
	}

	return &address, nil
}

func (r *addressRepository) DeleteAddress(ctx context.Context, token string, id string) error {
	return r.client.do(ctx, apiRequest{method: http.MethodDelete, path: "/endereco/" + url.PathEscape(id), route: "/endereco/:id", token: token}, nil)
}

func (r *addressRepository) SetDefaultAddress(ctx context.Context, token string, id string) error {
	return r.client.do(ctx, apiRequest{method: http.MethodPatch, path: "/endereco/padrao/" + url.PathEscape(id), route: "/endereco/padrao/:id", token: token}, nil)
}
