package helpers

import (
	"errors"
	"net/http"

	"officeweb/internal/domain"
)

// StatusFor maps a service or backend error to an HTTP status and API error
// code. Anything unrecognised is treated as the backend being unavailable.
func StatusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrCodeNotFound
	case errors.Is(err, domain.ErrBadRequest), errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrCodeBadRequest
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrInvalidPassword):
		return http.StatusUnauthorized, ErrCodeUnauthorized
	case errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrPasswordRequired):
		return http.StatusForbidden, ErrCodeForbidden
	}
	return http.StatusBadGateway, ErrCodeBackendUnavailable
}

// PublicMessage is the message shown to API clients for err's status.
func PublicMessage(status int) string {
	switch status {
	case http.StatusNotFound:
		return "resource not found"
	case http.StatusBadRequest:
		return "invalid request"
	case http.StatusUnauthorized:
		return "authentication required"
	case http.StatusForbidden:
		return "access denied"
	}
	return "content is temporarily unavailable"
}
