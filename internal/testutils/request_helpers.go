package testutils

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/discool/storefront/internal/api/middleware"
	"github.com/discool/storefront/internal/models"
)

// CreateTestRequestWithSession builds a request as the session middleware would hand it to a handler.
func CreateTestRequestWithSession(method, target string, body io.Reader, session *models.Session, pathParams map[string]string) *http.Request {
	req := CreateTestRequestWithoutSession(method, target, body, pathParams)

	return req.WithContext(middleware.WithSession(req.Context(), session))
}

func CreateTestRequestWithoutSession(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return req.WithContext(middleware.WithLogger(req.Context(), logger))
}

// LoggedInSession is a fresh session holding a customer token.
func LoggedInSession(id, customerID string) *models.Session {
	session := models.NewSession(id)
	session.Auth = &models.AuthInfo{Token: "tok-" + customerID, CustomerID: customerID, Email: customerID + "@discool.com.br"}

	return session
}
