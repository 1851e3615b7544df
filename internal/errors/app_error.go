package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type AppError struct {
	Code       string
	Message    string
	Detail     string
	Details    []string
	Meta       map[string]any
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail

	return e
}

func (e *AppError) WithDetails(details ...string) *AppError {
	e.Details = append(e.Details, details...)

	return e
}

func (e *AppError) WithMeta(key string, value any) *AppError {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}

	e.Meta[key] = value

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

const (
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeBadRequest      = "BAD_REQUEST"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeUnauthorized    = "UNAUTHORIZED"
	ErrCodeForbidden       = "FORBIDDEN"
	ErrCodeInternal        = "INTERNAL_ERROR"
	ErrCodeDatabaseError   = "DATABASE_ERROR"
	ErrCodeThirdPartyError = "THIRD_PARTY_ERROR"
	ErrCodeTooManyRequests = "TOO_MANY_REQUESTS"
	ErrCodeStockShortfall  = "STOCK_SHORTFALL"
	ErrCodeInvalidCoupon   = "INVALID_COUPON"
	ErrCodeBelowMinimum    = "BELOW_MINIMUM"
	ErrCodeNetwork         = "NETWORK_ERROR"
	ErrCodeServerRejection = "SERVER_REJECTION"
	ErrCodeCheckoutStep    = "CHECKOUT_STEP"
)

// User-facing fallbacks when the backend gives us nothing better.
const (
	GenericMessage = "Ocorreu um erro inesperado. Tente novamente."
	NetworkMessage = "Não foi possível se comunicar com a loja. Verifique sua conexão e tente novamente."
)

func ValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, http.StatusBadRequest)
}

func BadRequestError(message string) *AppError {
	return NewAppError(ErrCodeBadRequest, message, http.StatusBadRequest)
}

func NotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, http.StatusNotFound)
}

func UnauthorizedError(message string) *AppError {
	return NewAppError(ErrCodeUnauthorized, message, http.StatusUnauthorized)
}

func ForbiddenError(message string) *AppError {
	return NewAppError(ErrCodeForbidden, message, http.StatusForbidden)
}

func InternalError(message string) *AppError {
	return NewAppError(ErrCodeInternal, message, http.StatusInternalServerError)
}

func DatabaseError(message string) *AppError {
	return NewAppError(ErrCodeDatabaseError, message, http.StatusInternalServerError)
}

func ThirdPartyError(message string) *AppError {
	return NewAppError(ErrCodeThirdPartyError, message, http.StatusBadGateway)
}

func TooManyRequestsError(message string) *AppError {
	return NewAppError(ErrCodeTooManyRequests, message, http.StatusTooManyRequests)
}

// StockShortfallError lists every short item, one per detail line.
func StockShortfallError(lines []string) *AppError {
	return NewAppError(ErrCodeStockShortfall, "Estoque insuficiente: "+strings.Join(lines, "; "), http.StatusConflict).
		WithDetails(lines...)
}

func InvalidCouponError(code string) *AppError {
	return NewAppError(ErrCodeInvalidCoupon, fmt.Sprintf("Cupom %q inválido", code), http.StatusUnprocessableEntity)
}

// BelowMinimumError carries the threshold so the client can show the shortfall.
func BelowMinimumError(threshold string) *AppError {
	return NewAppError(ErrCodeBelowMinimum,
		fmt.Sprintf("Este cupom exige um subtotal mínimo de R$ %s", threshold),
		http.StatusUnprocessableEntity).WithMeta("threshold", threshold)
}

func NetworkError(err error) *AppError {
	return NewAppError(ErrCodeNetwork, NetworkMessage, http.StatusBadGateway).WithError(err)
}

// ServerRejectionError keeps client errors' status; backend 5xx becomes a 502 at our edge.
func ServerRejectionError(message string, backendStatus int) *AppError {
	if message == "" {
		message = GenericMessage
	}

	status := backendStatus
	if status < 400 || status >= 500 {
		status = http.StatusBadGateway
	}

	return NewAppError(ErrCodeServerRejection, message, status).WithMeta("backend_status", backendStatus)
}

func CheckoutStepError(message string) *AppError {
	return NewAppError(ErrCodeCheckoutStep, message, http.StatusConflict)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}

// HasCode reports whether err is an AppError with the given code.
func HasCode(err error, code string) bool {
	appErr, ok := IsAppError(err)

	return ok && appErr.Code == code
}

// field validation error.
func AddValidationError(field, reason string) *AppError {
	return ValidationError(fmt.Sprintf("Campo '%s' inválido: %s", field, reason))
}

// Is re-exports errors.Is so callers that import this package as errors keep the standard helper.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
