package handlers

import (
	"log/slog"
	"net/http"

	"github.com/discool/storefront/internal/api/middleware"
	"github.com/discool/storefront/internal/models"
	service "github.com/discool/storefront/internal/services"
	"github.com/discool/storefront/internal/utils"
	"github.com/discool/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type AddressHandler struct {
	addressService service.AddressService
	validator      *validator.Validate
}

func NewAddressHandler(addressService service.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService, validator: validator.New()}
}

// ListAddresses godoc
//
//	@Summary	List saved addresses
//	@Tags		Addresses
//	@Produce	json
//	@Success	200	{array}		models.Address
//	@Failure	401	{object}	response.ErrorResponse
//	@Security	SessionAuth
//	@Router		/addresses [get]
func (h *AddressHandler) ListAddresses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := currentSession(w, r)
		if !ok {
			return
		}

		addresses, err := h.addressService.ListAddresses(r.Context(), session)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, addresses)
	}
}

// GetAddress godoc
//
//	@Summary	Get a saved address
//	@Tags		Addresses
//	@Produce	json
//	@Param		id	path		string	true	"Address ID"
//	@Success	200	{object}	models.Address
//	@Failure	404	{object}	response.ErrorResponse
//	@Security	SessionAuth
//	@Router		/addresses/{id} [get]
func (h *AddressHandler) GetAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := currentSession(w, r)
		if !ok {
			return
		}

		address, err := h.addressService.GetAddress(r.Context(), session, r.PathValue("id"))
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, address)
	}
}

// CreateAddress godoc
//
//	@Summary	Save a new address
//	@Tags		Addresses
//	@Accept		json
//	@Produce	json
//	@Param		address	body		models.AddressRequest	true	"Address"
//	@Success	201		{object}	models.Address
//	@Failure	400		{object}	response.ErrorResponse	"Validation error or malformed zip"
//	@Security	SessionAuth
//	@Router		/addresses [post]
func (h *AddressHandler) CreateAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, ok := currentSession(w, r)
		if !ok {
			return
		}

		var req models.AddressRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid address input")
			return
		}

		address, err := h.addressService.CreateAddress(r.Context(), session, &req)
		if err != nil {
			logger.Error("Failed to create address", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, address)
	}
}

// UpdateAddress godoc
//
//	@Summary	Edit a saved address
//	@Tags		Addresses
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Address ID"
//	@Param		address	body		models.UpdateAddressRequest	true	"Fields to change"
//	@Success	200		{object}	models.Address
//	@Failure	400		{object}	response.ErrorResponse
//	@Failure	404		{object}	response.ErrorResponse
//	@Security	SessionAuth
//	@Router		/addresses/{id} [patch]
func (h *AddressHandler) UpdateAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := currentSession(w, r)
		if !ok {
			return
		}

		var req models.UpdateAddressRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		address, err := h.addressService.UpdateAddress(r.Context(), session, r.PathValue("id"), &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, address)
	}
}

// DeleteAddress godoc
//
//	@Summary	Delete a saved address
//	@Tags		Addresses
//	@Produce	json
//	@Param		id	path		string	true	"Address ID"
//	@Success	200	{object}	response.APIResponse
//	@Failure	404	{object}	response.ErrorResponse
//	@Security	SessionAuth
//	@Router		/addresses/{id} [delete]
func (h *AddressHandler) DeleteAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := currentSession(w, r)
		if !ok {
			return
		}

		id := r.PathValue("id")

		if err := h.addressService.DeleteAddress(r.Context(), session, id); err != nil {
			response.Error(w, err)
			return
		}

		middleware.LoggerFromContext(r.Context()).Info("Address deleted", slog.String("address_id", id))
		response.Success(w, http.StatusOK, map[string]string{"id": id})
	}
}

// SetDefaultAddress godoc
//
//	@Summary	Make an address the default
//	@Tags		Addresses
//	@Produce	json
//	@Param		id	path		string	true	"Address ID"
//	@Success	200	{object}	response.APIResponse
//	@Security	SessionAuth
//	@Router		/addresses/{id}/default [patch]
func (h *AddressHandler) SetDefaultAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := currentSession(w, r)
		if !ok {
			return
		}

		id := r.PathValue("id")

		if err := h.addressService.SetDefaultAddress(r.Context(), session, id); err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, map[string]string{"id": id})
	}
}
