// Package apperr defines the error taxonomy shared between the auth service,
// the repositories and the HTTP layer. Each error carries the HTTP status it
// should be reported with so handlers never have to inspect storage or crypto
// errors directly; those are translated into one of these values at the
// boundary and the raw detail stays server-side.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a request-terminal failure with an HTTP status attached.
type Error struct {
	Status  int    `json:"status_code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s occurred with status code: %d", e.Message, e.Status)
}

// New builds an Error with an explicit status code.
func New(message string, status int) *Error {
	return &Error{Status: status, Message: message}
}

var (
	// ErrUnauthorized covers bad credentials and a login request that
	// carries neither an email nor a username. The message is identical in
	// both cases so a failed login never reveals whether the account exists.
	ErrUnauthorized = New("UNAUTHORIZED", http.StatusUnauthorized)

	// ErrUserAlreadyExists is returned when a registration reuses an email
	// or username, whether caught by the pre-check or by the unique
	// constraint racing a concurrent registration.
	ErrUserAlreadyExists = New("USER_ALREADY_EXISTS", http.StatusBadRequest)

	ErrUserNotFound = New("USER_NOT_FOUND", http.StatusNotFound)

	ErrNotFound = New("NOT_FOUND", http.StatusNotFound)

	ErrTokenNotFound = New("REFRESH_TOKEN_NOT_FOUND", http.StatusNotFound)
	ErrTokenExpired  = New("REFRESH_TOKEN_EXPIRED", http.StatusUnauthorized)

	// Access token verification failures.
	ErrInvalidToken       = New("INVALID_TOKEN", http.StatusUnauthorized)
	ErrAccessTokenExpired = New("EXPIRED_TOKEN", http.StatusUnauthorized)

	ErrForbidden = New("FORBIDDEN", http.StatusForbidden)

	ErrInternal = New("INTERNAL_SERVER_ERROR", http.StatusInternalServerError)
)

// From maps an arbitrary error onto the taxonomy. Errors that are already
// taxonomy values pass through unchanged; anything else becomes ErrInternal.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return ErrInternal
}
