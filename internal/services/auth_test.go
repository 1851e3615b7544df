package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appErrors "github.com/discool/storefront/internal/errors"
	"github.com/discool/storefront/internal/models"
	repository "github.com/discool/storefront/internal/repositories"
	"github.com/discool/storefront/internal/repositories/mocks"
	service "github.com/discool/storefront/internal/services"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, key []byte, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	key := []byte("segredo")
	req := &models.LoginRequest{Email: " Ana@Discool.com.br ", Password: "vinil123"}
	email := "ana@discool.com.br"

	t.Run("Success - Token Claims Fill The Session", func(t *testing.T) {
		// Arrange
		authRepo := new(mocks.AuthRepository)
		limiter := new(mocks.RateLimitRepository)
		session := models.NewSession("s-1")
		session.Checkout.Step = models.StepContactAndAddress
		expires := time.Now().Add(2 * time.Hour).Truncate(time.Second)
		token := signedToken(t, key, jwt.MapClaims{"id": 17, "role": "admin", "exp": expires.Unix()})

		limiter.On("CheckLoginRateLimit", ctx, email).Return(repository.RateLimitResult{Allowed: true, Remaining: 4}, nil).Once()
		authRepo.On("Login", ctx, email, "vinil123").Return(&models.AuthResult{Token: token, Customer: models.Customer{Name: "Ana"}}, nil).Once()
		limiter.On("ResetLoginAttempts", ctx, email).Return(nil).Once()

		// Act
		resp, err := service.NewAuthService(authRepo, limiter, key).Login(ctx, session, req)

		// Assert
		require.NoError(t, err)
		assert.True(t, resp.Success)
		require.NotNil(t, session.Auth)
		assert.Equal(t, "17", session.Auth.CustomerID)
		assert.Equal(t, email, session.Auth.Email)
		assert.True(t, session.Auth.IsAdmin)
		assert.True(t, expires.Equal(session.Auth.ExpiresAt))
		assert.Equal(t, models.StepCart, session.Checkout.Step)
		assert.True(t, session.RotationRequested())
		limiter.AssertExpectations(t)
		authRepo.AssertExpectations(t)
	})

	t.Run("Success - Opaque Token Without Key", func(t *testing.T) {
		// Arrange
		authRepo := new(mocks.AuthRepository)
		limiter := new(mocks.RateLimitRepository)
		session := models.NewSession("s-2")

		limiter.On("CheckLoginRateLimit", ctx, email).Return(repository.RateLimitResult{Allowed: true}, nil).Once()
		authRepo.On("Login", ctx, email, "vinil123").
			Return(&models.AuthResult{Token: "opaque", Customer: models.Customer{ID: "9", Email: email}}, nil).Once()
		limiter.On("ResetLoginAttempts", ctx, email).Return(errors.New("redis down")).Once()

		// Act
		resp, err := service.NewAuthService(authRepo, limiter, nil).Login(ctx, session, req)

		// Assert
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "9", session.CustomerID())
		assert.True(t, session.Authenticated())
	})

	t.Run("Failure - Wrong Password Reports Remaining Tries", func(t *testing.T) {
		// Arrange
		authRepo := new(mocks.AuthRepository)
		limiter := new(mocks.RateLimitRepository)
		session := models.NewSession("s-3")

		limiter.On("CheckLoginRateLimit", ctx, email).Return(repository.RateLimitResult{Allowed: true, Remaining: 2}, nil).Once()
		authRepo.On("Login", ctx, email, "vinil123").Return(nil, appErrors.UnauthorizedError("Credenciais inválidas")).Once()

		// Act
		resp, err := service.NewAuthService(authRepo, limiter, key).Login(ctx, session, req)

		// Assert
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, 2, resp.RemainingTries)
		assert.Nil(t, session.Auth)
		assert.False(t, session.RotationRequested())
		limiter.AssertNotCalled(t, "ResetLoginAttempts", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Rate Limited", func(t *testing.T) {
		// Arrange
		authRepo := new(mocks.AuthRepository)
		limiter := new(mocks.RateLimitRepository)

		limiter.On("CheckLoginRateLimit", ctx, email).Return(repository.RateLimitResult{Allowed: false, RetryAfter: 300}, nil).Once()

		// Act
		resp, err := service.NewAuthService(authRepo, limiter, key).Login(ctx, models.NewSession("s-4"), req)

		// Assert
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, 300, resp.RetryAfter)
		authRepo.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Forged Token With Key Configured", func(t *testing.T) {
		// Arrange
		authRepo := new(mocks.AuthRepository)
		limiter := new(mocks.RateLimitRepository)
		session := models.NewSession("s-5")
		forged := signedToken(t, []byte("outra-chave"), jwt.MapClaims{"id": "1"})

		limiter.On("CheckLoginRateLimit", ctx, email).Return(repository.RateLimitResult{Allowed: true}, nil).Once()
		authRepo.On("Login", ctx, email, "vinil123").Return(&models.AuthResult{Token: forged}, nil).Once()

		// Act
		_, err := service.NewAuthService(authRepo, limiter, key).Login(ctx, session, req)

		// Assert
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeUnauthorized))
		assert.Nil(t, session.Auth)
	})

	t.Run("Failure - Backend Unreachable", func(t *testing.T) {
		// Arrange
		authRepo := new(mocks.AuthRepository)
		limiter := new(mocks.RateLimitRepository)

		limiter.On("CheckLoginRateLimit", ctx, email).Return(repository.RateLimitResult{Allowed: true}, nil).Once()
		authRepo.On("Login", ctx, email, "vinil123").Return(nil, appErrors.NetworkError(context.DeadlineExceeded)).Once()

		// Act
		resp, err := service.NewAuthService(authRepo, limiter, key).Login(ctx, models.NewSession("s-6"), req)

		// Assert
		assert.Nil(t, resp)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeNetwork))
	})
}

func TestAuthService_LogoutAndReset(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Logout Keeps Cart Under A New Id", func(t *testing.T) {
		// Arrange
		session := loggedInSession(t)
		session.Checkout.Step = models.StepContactAndAddress
		authService := service.NewAuthService(new(mocks.AuthRepository), new(mocks.RateLimitRepository), nil)

		// Act
		authService.Logout(ctx, session)

		// Assert
		assert.Nil(t, session.Auth)
		assert.Equal(t, models.StepCart, session.Checkout.Step)
		assert.Equal(t, 2, session.Cart.Totals().TotalItems)
		assert.True(t, session.RotationRequested())
	})

	t.Run("Success - Unknown E-mail Looks Like Success", func(t *testing.T) {
		// Arrange
		authRepo := new(mocks.AuthRepository)
		authRepo.On("RequestPasswordReset", ctx, "ninguem@discool.com.br").Return(appErrors.NotFoundError("Cliente não encontrado")).Once()

		// Act
		err := service.NewAuthService(authRepo, new(mocks.RateLimitRepository), nil).
			RequestPasswordReset(ctx, &models.PasswordResetRequest{Email: "Ninguem@discool.com.br"})

		// Assert
		assert.NoError(t, err)
		authRepo.AssertExpectations(t)
	})

	t.Run("Failure - Invalid Reset Code", func(t *testing.T) {
		// Arrange
		authRepo := new(mocks.AuthRepository)
		authRepo.On("ValidateResetCode", ctx, "ana@discool.com.br", "123456").Return(appErrors.ValidationError("Código inválido")).Once()

		// Act
		err := service.NewAuthService(authRepo, new(mocks.RateLimitRepository), nil).
			ValidateResetCode(ctx, &models.PasswordResetValidateRequest{Email: "ana@discool.com.br", Code: " 123456 "})

		// Assert
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation))
	})
}
