package utils

import (
	stdErrors "errors"
	"log/slog"
	"net/http"

	"github.com/discool/storefront/internal/errors"
	"github.com/discool/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// ParseAndValidate decodes the JSON body into dest and runs the struct validator. It writes the error
// response itself and reports whether the handler may continue.
func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {

	if err := DecodeJSONBody(r, dest); err != nil {
		slog.Warn("Invalid request", slog.String("error", err.Error()))
		response.Error(w, errors.BadRequestError("Corpo da requisição inválido.").WithDetail(err.Error()))
		return false
	}

	if err := validate.Struct(dest); err != nil {
		var validationErrs validator.ValidationErrors
		if stdErrors.As(err, &validationErrs) {
			slog.Warn("Validation failed", slog.String("error", validationErrs.Error()))
			response.ValidationError(w, validationErrs)
			return false
		}

		slog.Error("Unexpected validation error", slog.String("error", err.Error()))
		response.Error(w, errors.InternalError(errors.GenericMessage).WithError(err))
		return false
	}

	return true

}
