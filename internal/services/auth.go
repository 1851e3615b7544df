package service

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/discool/storefront/internal/api/middleware"
	"github.com/discool/storefront/internal/errors"
	"github.com/discool/storefront/internal/models"
	repository "github.com/discool/storefront/internal/repositories"
	"github.com/discool/storefront/internal/utils"
)

type AuthService interface {
	Login(ctx context.Context, session *models.Session, req *models.LoginRequest) (*models.LoginResponse, error)
	Register(ctx context.Context, req *models.RegisterRequest) (*models.Customer, error)
	Logout(ctx context.Context, session *models.Session)
	RequestPasswordReset(ctx context.Context, req *models.PasswordResetRequest) error
	ValidateResetCode(ctx context.Context, req *models.PasswordResetValidateRequest) error
	ConfirmPasswordReset(ctx context.Context, req *models.PasswordResetConfirmRequest) error
}

type authService struct {
	repo      repository.AuthRepository
	rateLimit repository.RateLimitRepository
	jwtKey    []byte
}

func NewAuthService(repo repository.AuthRepository, rateLimit repository.RateLimitRepository, jwtKey []byte) AuthService {
	return &authService{repo: repo, rateLimit: rateLimit, jwtKey: jwtKey}
}

// Login forwards the credentials to the auth API and keeps the resulting token in the session.
// Wrong credentials and rate limiting come back as an unsuccessful response, not an error.
func (s *authService) Login(ctx context.Context, session *models.Session, req *models.LoginRequest) (*models.LoginResponse, error) {

	logger := middleware.LoggerFromContext(ctx)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	limit, err := s.rateLimit.CheckLoginRateLimit(ctx, email)
	if err != nil {
		return nil, errors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !limit.Allowed {
		logger.Warn("Login rate limited", slog.Int("retry_after", limit.RetryAfter))
		return &models.LoginResponse{
			Success:    false,
			Message:    "Muitas tentativas de login. Tente novamente mais tarde.",
			RetryAfter: limit.RetryAfter,
		}, nil
	}

	result, err := s.repo.Login(ctx, email, req.Password)
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeUnauthorized) || errors.HasCode(err, errors.ErrCodeNotFound) ||
			errors.HasCode(err, errors.ErrCodeValidation) {
			return &models.LoginResponse{
				Success:        false,
				Message:        "E-mail ou senha inválidos.",
				RemainingTries: limit.Remaining,
			}, nil
		}

		return nil, err
	}

	if result.Token == "" {
		return nil, errors.ServerRejectionError("A loja não retornou um token de acesso.", http.StatusBadGateway)
	}

	auth := &models.AuthInfo{
		Token:      result.Token,
		CustomerID: result.Customer.ID,
		Name:       result.Customer.Name,
		Email:      result.Customer.Email,
		IsAdmin:    strings.EqualFold(result.Customer.Role, "admin"),
	}

	claims, err := middleware.ParseToken(result.Token, s.jwtKey)
	switch {
	case err != nil && len(s.jwtKey) > 0:
		logger.Error("Auth API token failed verification", slog.String("error", err.Error()))
		return nil, errors.UnauthorizedError("Não foi possível validar seu acesso.").WithError(err)
	case err != nil:
		// opaque tokens carry no claims; the backend still checks them on every call
		logger.Debug("Token is not a readable JWT", slog.String("error", err.Error()))
	default:
		if claims.ExpiresAt != nil {
			auth.ExpiresAt = claims.ExpiresAt.Time
		}
		if auth.CustomerID == "" {
			auth.CustomerID = claims.CustomerID()
		}
		if auth.Email == "" {
			auth.Email = claims.Email
		}
		auth.IsAdmin = auth.IsAdmin || claims.IsAdmin()
	}

	if auth.CustomerID == "" {
		return nil, errors.ServerRejectionError("A loja não retornou os dados do cliente.", http.StatusBadGateway)
	}

	if auth.Email == "" {
		auth.Email = email
	}

	session.Auth = auth
	session.Checkout.Reset()
	session.RequestRotation()

	if err := s.rateLimit.ResetLoginAttempts(ctx, email); err != nil {
		logger.Warn("Failed to reset login attempts", slog.String("error", err.Error()))
	}

	logger.Info("Customer logged in", slog.String("customer_id", auth.CustomerID), slog.Bool("admin", auth.IsAdmin))

	customer := &models.Customer{ID: auth.CustomerID, Name: auth.Name, Email: auth.Email}
	if auth.IsAdmin {
		customer.Role = "admin"
	}

	return &models.LoginResponse{Success: true, Customer: customer, ExpiresAt: auth.ExpiresAt}, nil
}

func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.Customer, error) {

	clean := *req
	clean.Name = utils.SanitizeText(req.Name)
	clean.Email = strings.ToLower(strings.TrimSpace(req.Email))

	customer, err := s.repo.Register(ctx, &clean)
	if err != nil {
		return nil, err
	}

	middleware.LoggerFromContext(ctx).Info("Customer registered", slog.String("customer_id", customer.ID))

	return customer, nil
}

// Logout forgets the token and moves the session to a new id. The cart stays with the session.
func (s *authService) Logout(ctx context.Context, session *models.Session) {
	session.Auth = nil
	session.Checkout.Reset()
	session.RequestRotation()
}

func (s *authService) RequestPasswordReset(ctx context.Context, req *models.PasswordResetRequest) error {

	err := s.repo.RequestPasswordReset(ctx, strings.ToLower(strings.TrimSpace(req.Email)))

	// unknown e-mails look the same as known ones
	if errors.HasCode(err, errors.ErrCodeNotFound) {
		return nil
	}

	return err
}

func (s *authService) ValidateResetCode(ctx context.Context, req *models.PasswordResetValidateRequest) error {
	return s.repo.ValidateResetCode(ctx, strings.ToLower(strings.TrimSpace(req.Email)), strings.TrimSpace(req.Code))
}

func (s *authService) ConfirmPasswordReset(ctx context.Context, req *models.PasswordResetConfirmRequest) error {

	clean := *req
	clean.Email = strings.ToLower(strings.TrimSpace(req.Email))
	clean.Code = strings.TrimSpace(req.Code)

	return s.repo.ConfirmPasswordReset(ctx, &clean)
}
