package handlers

import (
	"net/http"

	"github.com/discool/storefront/internal/api/middleware"
	"github.com/discool/storefront/internal/errors"
	"github.com/discool/storefront/internal/models"
	"github.com/discool/storefront/internal/utils/response"
)

// currentSession fetches the session loaded by the session middleware and writes an error when the
// route was mounted without it.
func currentSession(w http.ResponseWriter, r *http.Request) (*models.Session, bool) {

	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		middleware.LoggerFromContext(r.Context()).Error("Route served without a session")
		response.Error(w, errors.InternalError(errors.GenericMessage))
		return nil, false
	}

	return session, true
}

// hasBody reports whether the client sent a body, for endpoints where it is optional.
func hasBody(r *http.Request) bool {
	return r.Body != nil && r.Body != http.NoBody && r.ContentLength != 0
}
