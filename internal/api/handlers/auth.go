package handlers

import (
	"log/slog"
	"net/http"

	"github.com/discool/storefront/internal/api/middleware"
	"github.com/discool/storefront/internal/errors"
	"github.com/discool/storefront/internal/models"
	service "github.com/discool/storefront/internal/services"
	"github.com/discool/storefront/internal/utils"
	"github.com/discool/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	authService service.AuthService
	validator   *validator.Validate
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService, validator: validator.New()}
}

// Register godoc
//
//	@Summary	Create a customer account
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		customer	body		models.RegisterRequest	true	"Customer details"
//	@Success	201			{object}	models.Customer
//	@Failure	400			{object}	response.ErrorResponse	"Validation error or e-mail already registered"
//	@Router		/auth/register [post]
func (h *AuthHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.RegisterRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid registration input")
			return
		}

		customer, err := h.authService.Register(r.Context(), &req)
		if err != nil {
			logger.Warn("Customer registration failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Customer registered", slog.String("customer_id", customer.ID))
		response.Success(w, http.StatusCreated, customer)
	}
}

// Login godoc
//
//	@Summary		Log in
//	@Description	Forwards the credentials to the store's auth API and binds the token to the session. Attempts are rate limited per e-mail.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		models.LoginRequest	true	"E-mail and password"
//	@Success		200			{object}	models.LoginResponse
//	@Failure		401			{object}	response.ErrorResponse	"Wrong credentials, meta.remaining_tries"
//	@Failure		429			{object}	response.ErrorResponse	"Too many attempts, meta.retry_after"
//	@Router			/auth/login [post]
func (h *AuthHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, ok := currentSession(w, r)
		if !ok {
			return
		}

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		resp, err := h.authService.Login(r.Context(), session, &req)
		if err != nil {
			logger.Error("Login failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if !resp.Success {
			if resp.RetryAfter > 0 {
				response.Error(w, errors.TooManyRequestsError(resp.Message).WithMeta("retry_after", resp.RetryAfter))
				return
			}

			logger.Warn("Login rejected", slog.Int("remaining_tries", resp.RemainingTries))
			response.Error(w, errors.UnauthorizedError(resp.Message).WithMeta("remaining_tries", resp.RemainingTries))
			return
		}

		logger.Info("Customer logged in", slog.String("customer_id", session.CustomerID()))
		response.Success(w, http.StatusOK, resp)
	}
}

// Logout godoc
//
//	@Summary		Log out
//	@Description	Forgets the token and restarts checkout. The cart is kept.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	response.APIResponse
//	@Router			/auth/logout [post]
func (h *AuthHandler) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := currentSession(w, r)
		if !ok {
			return
		}

		h.authService.Logout(r.Context(), session)
		response.Success(w, http.StatusOK, map[string]bool{"logged_out": true})
	}
}

// RequestPasswordReset godoc
//
//	@Summary		Request a password reset code
//	@Description	Always answers the same way whether or not the e-mail is registered.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.PasswordResetRequest	true	"Account e-mail"
//	@Success		202		{object}	response.APIResponse
//	@Router			/auth/password/request [post]
func (h *AuthHandler) RequestPasswordReset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.PasswordResetRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		if err := h.authService.RequestPasswordReset(r.Context(), &req); err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusAccepted, map[string]string{"message": "Se o e-mail estiver cadastrado, enviaremos um código."})
	}
}

// ValidateResetCode godoc
//
//	@Summary	Check a password reset code
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		models.PasswordResetValidateRequest	true	"E-mail and code"
//	@Success	200		{object}	response.APIResponse
//	@Failure	400		{object}	response.ErrorResponse	"Invalid or expired code"
//	@Router		/auth/password/validate [post]
func (h *AuthHandler) ValidateResetCode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.PasswordResetValidateRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		if err := h.authService.ValidateResetCode(r.Context(), &req); err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, map[string]bool{"valid": true})
	}
}

// ConfirmPasswordReset godoc
//
//	@Summary	Set a new password
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		models.PasswordResetConfirmRequest	true	"E-mail, code and new password"
//	@Success	200		{object}	response.APIResponse
//	@Failure	400		{object}	response.ErrorResponse	"Invalid code or weak password"
//	@Router		/auth/password/confirm [post]
func (h *AuthHandler) ConfirmPasswordReset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.PasswordResetConfirmRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		if err := h.authService.ConfirmPasswordReset(r.Context(), &req); err != nil {
			logger.Warn("Password reset failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Password reset completed")
		response.Success(w, http.StatusOK, map[string]bool{"reset": true})
	}
}
