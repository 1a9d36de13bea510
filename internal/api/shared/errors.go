package shared

import (
	"errors"
	"net/http"

	"github.com/Anastasia-front/contacts-api/internal/domain"
	"github.com/Anastasia-front/contacts-api/internal/service/auth"
	"github.com/Anastasia-front/contacts-api/internal/store"
)

// Messages used when an error is created without one.
var defaultMessages = map[int]string{
	http.StatusBadRequest:            "Bad Request",
	http.StatusUnauthorized:          "Unauthorized",
	http.StatusForbidden:             "Forbidden",
	http.StatusNotFound:              "Not Found",
	http.StatusConflict:              "Conflict",
	http.StatusRequestEntityTooLarge: "Payload Too Large",
	http.StatusTooManyRequests:       "Too Many Requests",
	http.StatusInternalServerError:   "server error",
}

// Messages shared by several stages.
const (
	MsgNotAuthorized = "Not authorized"
	MsgNotFound      = "not found"
	MsgServerError   = "server error"
	MsgEmailInUse    = "Email in use"
	MsgUserNotFound  = "User not found"
	MsgInvalidBody   = "invalid request body"
)

// HTTPError is the one error type that carries an HTTP status. Every stage
// of the request pipeline reports failures either as an HTTPError or as a
// sentinel that MapError knows how to translate.
type HTTPError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError builds an HTTPError. Without a message the status's default
// message is used.
func NewHTTPError(status int, message ...string) *HTTPError {
	msg := ""
	if len(message) > 0 {
		msg = message[0]
	}
	if msg == "" {
		msg = defaultMessages[status]
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &HTTPError{Status: status, Message: msg}
}

// MapError translates an error into the HTTPError sent to the client.
// Unknown errors become 500 "server error" so internals never leak.
func MapError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var validationErr *domain.ValidationError
	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return NewHTTPError(http.StatusUnauthorized, MsgNotAuthorized)

	case errors.Is(err, store.ErrEmailExists):
		return NewHTTPError(http.StatusConflict, MsgEmailInUse)

	case store.IsDuplicateError(err):
		return NewHTTPError(http.StatusConflict)

	case errors.Is(err, store.ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, MsgUserNotFound)

	case store.IsNotFoundError(err):
		return NewHTTPError(http.StatusNotFound, MsgNotFound)

	case errors.As(err, &validationErr):
		return NewHTTPError(http.StatusBadRequest, validationErr.Error())

	case domain.IsValidationError(err),
		errors.Is(err, store.ErrInvalidEntity):
		return NewHTTPError(http.StatusBadRequest)

	default:
		return NewHTTPError(http.StatusInternalServerError, MsgServerError)
	}
}
