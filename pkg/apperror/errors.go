package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a coded error that maps onto an HTTP response.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // internal cause, never sent to clients
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap attaches an internal cause to a coded error.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// HasCode reports whether err carries an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// ---- Currencies (CUR) ----

func ErrDuplicateCurrency(id string) *AppError {
	return New("CUR_001", fmt.Sprintf("Currency %q is already registered", id), http.StatusConflict)
}

func ErrUnknownCurrency(id string) *AppError {
	return New("CUR_002", fmt.Sprintf("Unknown currency %q", id), http.StatusNotFound)
}

func ErrCurrencyUnavailable(id string, err error) *AppError {
	return Wrap("CUR_003", fmt.Sprintf("Currency %q is unavailable", id), http.StatusServiceUnavailable, err)
}

func ErrInvalidCurrency(message string) *AppError {
	return New("CUR_004", message, http.StatusBadRequest)
}

// ---- Lottery (LOT) ----

func ErrInvalidAmount() *AppError {
	return New("LOT_001", "Amount must be a positive whole number", http.StatusBadRequest)
}

func ErrInsufficientFunds() *AppError {
	return New("LOT_002", "Insufficient balance for this entry", http.StatusPaymentRequired)
}

func ErrWithdrawFailed(err error) *AppError {
	return Wrap("LOT_003", "Could not withdraw entry amount", http.StatusBadGateway, err)
}

func ErrPoolOverflow() *AppError {
	return New("LOT_004", "Entry would overflow the pool", http.StatusUnprocessableEntity)
}

func ErrInvalidSchedule(message string) *AppError {
	return New("LOT_005", message, http.StatusBadRequest)
}

func ErrInvalidParticipant() *AppError {
	return New("LOT_006", "Invalid participant id", http.StatusBadRequest)
}

// ---- Security (SEC) ----

func ErrInvalidToken() *AppError {
	return New("SEC_001", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrForbidden() *AppError {
	return New("SEC_002", "Insufficient privileges", http.StatusForbidden)
}

func ErrNonceUsed() *AppError {
	return New("SEC_003", "Request nonce has already been used", http.StatusConflict)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrStorage(err error) *AppError {
	return Wrap("SYS_002", "Storage failure", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("REQ_001", message, http.StatusBadRequest)
}
