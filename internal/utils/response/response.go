package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/discool/storefront/internal/errors"
	"github.com/go-playground/validator/v10"
)

type APIResponse struct {
	Success bool           `json:"success"`
	Data    any            `json:"data,omitempty"`
	Error   *ErrorResponse `json:"error,omitempty"`
}

type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details []string       `json:"details,omitempty"`
	Meta    map[string]any `json:"meta,omitempty"`
}

func WriteJson(w http.ResponseWriter, statusCode int, data any) error {

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, statusCode int, data any) {
	response := APIResponse{
		Success: true,
		Data:    data,
	}

	WriteJson(w, statusCode, response)
}

func Error(w http.ResponseWriter, err error) {

	var statusCode int
	var errorResponse *ErrorResponse

	if appErr, ok := errors.IsAppError(err); ok {
		statusCode = appErr.StatusCode
		errorResponse = &ErrorResponse{
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
			Meta:    appErr.Meta,
		}

		if appErr.Detail != "" {
			errorResponse.Details = append([]string{appErr.Detail}, errorResponse.Details...)
		}

	} else {

		statusCode = http.StatusInternalServerError
		errorResponse = &ErrorResponse{
			Code:    errors.ErrCodeInternal,
			Message: errors.GenericMessage,
		}

	}

	response := APIResponse{
		Success: false,
		Error:   errorResponse,
	}

	WriteJson(w, statusCode, response)
}

// ValidationError lists every failed field so the client can highlight them all at once.
func ValidationError(w http.ResponseWriter, errs validator.ValidationErrors) {

	var errMsgs []string

	for _, err := range errs {

		var message string

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("O campo %s é obrigatório", err.Field())
		case "email":
			message = fmt.Sprintf("O campo %s deve ser um e-mail válido", err.Field())
		case "min":
			message = fmt.Sprintf("O campo %s deve ter no mínimo %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("O campo %s deve ter no máximo %s", err.Field(), err.Param())
		case "len":
			message = fmt.Sprintf("O campo %s deve ter exatamente %s caracteres", err.Field(), err.Param())
		case "oneof":
			message = fmt.Sprintf("O campo %s deve ser um de: %s", err.Field(), err.Param())
		case "gte":
			message = fmt.Sprintf("O campo %s deve ser maior ou igual a %s", err.Field(), err.Param())
		default:
			message = fmt.Sprintf("O campo %s é inválido (%s)", err.Field(), err.Tag())
		}

		errMsgs = append(errMsgs, message)

	}

	Error(w, errors.ValidationError("Dados inválidos. Revise os campos destacados.").WithDetails(errMsgs...))
}
