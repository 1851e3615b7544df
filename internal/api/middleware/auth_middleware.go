package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/discool/storefront/internal/errors"
	"github.com/discool/storefront/internal/models"
	"github.com/discool/storefront/internal/utils/response"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware guards routes that need a logged-in customer. The bearer token lives in the session;
// when a signing key is configured the token signature is checked on every request as well.
type AuthMiddleware struct {
	jwtKey []byte
}

func NewAuthMiddleware(jwtKey []byte) *AuthMiddleware {

	return &AuthMiddleware{jwtKey: jwtKey}

}

// ParseToken reads the auth API's token. Without a key the claims are read unverified; the backend
// remains the authority and rejects bad tokens on every forwarded call.
func ParseToken(tokenString string, jwtKey []byte) (*models.Claims, error) {

	claims := &models.Claims{}

	if len(jwtKey) == 0 {
		if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
			return nil, fmt.Errorf("reading token claims: %w", err)
		}

		return claims, nil
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return jwtKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("verifying token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		session, ok := SessionFromContext(r.Context())
		if !ok || !session.Authenticated() {
			if ok && session.Auth != nil {
				logger.Info("Session token expired", slog.Time("expires_at", session.Auth.ExpiresAt))
				session.Auth = nil
				session.Checkout.Reset()
			}

			response.Error(w, errors.UnauthorizedError("Faça login para continuar."))
			return
		}

		if len(m.jwtKey) > 0 {
			claims, err := ParseToken(session.Auth.Token, m.jwtKey)
			if err != nil || (claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now())) {
				logger.Warn("Stored token rejected", slog.Any("error", err))
				session.Auth = nil
				session.Checkout.Reset()

				response.Error(w, errors.UnauthorizedError("Sua sessão expirou. Faça login novamente."))
				return
			}
		}

		next.ServeHTTP(w, r)
	}
}

func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.HandlerFunc {
	return m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		session, _ := SessionFromContext(r.Context())

		if !session.Auth.IsAdmin {
			LoggerFromContext(r.Context()).Warn("Non-admin attempted back-office access")
			response.Error(w, errors.ForbiddenError("Acesso restrito a administradores."))
			return
		}

		next.ServeHTTP(w, r)
	}))
}
