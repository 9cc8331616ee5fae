// Package httperr maps authorization failures to HTTP responses. Both the
// request guard and the global echo error handler render through it so the
// status and wording of a denial never depend on which of them saw it first.
package httperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/logistics-portal/internal/core/domain"
)

// Envelope is the JSON body of every error response.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

const (
	MsgNoSession        = "authentication required"
	MsgAccountNotFound  = "please sign in again"
	MsgPermissionDenied = "insufficient permission"
	MsgInternal         = "internal server error"
)

// Resolve returns the status code and client-facing message for err. ok is
// false for errors it does not recognise; those map to 500.
func Resolve(err error) (code int, msg string, ok bool) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), true
	}

	switch {
	case errors.Is(err, domain.ErrNoSession):
		return http.StatusUnauthorized, MsgNoSession, true
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusForbidden, MsgAccountNotFound, true
	case errors.Is(err, domain.ErrPermissionDenied):
		return http.StatusForbidden, MsgPermissionDenied, true
	case errors.Is(err, domain.ErrValidation):
		return http.StatusInternalServerError, MsgInternal, true
	}
	return http.StatusInternalServerError, MsgInternal, false
}

// Reason is the short metric/log label for err.
func Reason(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrNoSession):
		return "no_session"
	case errors.Is(err, domain.ErrAccountSuspended):
		return "account_suspended"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, domain.ErrPermissionDenied):
		return "permission_denied"
	case errors.Is(err, domain.ErrValidation):
		return "validation_error"
	default:
		return "error"
	}
}

// Write renders err as an Envelope with the status Resolve picks.
func Write(c echo.Context, err error) error {
	code, msg, _ := Resolve(err)
	return c.JSON(code, Envelope{Success: false, Message: msg})
}
