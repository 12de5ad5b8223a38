package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/quokkasoft/accounts/internal/accounts/service"
	"github.com/quokkasoft/accounts/pkg/accountsdk"
	"github.com/quokkasoft/accounts/pkg/httpx"
	"github.com/quokkasoft/accounts/pkg/slogx"
)

// writeError translates service sentinels into the wire contract. The body
// strings are part of the published API; clients match on them, so they do
// not change. Anything unrecognised becomes a 500 with the handler's
// fallback message.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrMissingField):
		httpx.WriteJSON(w, http.StatusBadRequest,
			accountsdk.ErrorResponse{Message: "Username and password are required"})
	case errors.Is(err, service.ErrUsernameTaken):
		httpx.WriteJSON(w, http.StatusConflict,
			accountsdk.ErrorResponse{Message: "User already exists"})
	case errors.Is(err, service.ErrUserNotFound):
		httpx.WriteJSON(w, http.StatusNotFound,
			accountsdk.ErrorResponse{Message: "User not found"})
	case errors.Is(err, service.ErrInvalidPassword):
		httpx.WriteJSON(w, http.StatusUnauthorized,
			accountsdk.ErrorResponse{Message: "Invalid password"})
	case errors.Is(err, service.ErrNoToken):
		httpx.WriteJSON(w, http.StatusUnauthorized,
			accountsdk.ErrorResponse{Message: "No token provided"})
	case errors.Is(err, service.ErrTokenInvalid):
		// Deliberately a 500, not a 401: every verification failure
		// (malformed, forged, expired) collapses into this one response.
		httpx.WriteJSON(w, http.StatusInternalServerError,
			accountsdk.ErrorResponse{Message: "Failed to authenticate token."})
	default:
		slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))
		httpx.WriteJSON(w, http.StatusInternalServerError,
			accountsdk.ErrorResponse{Message: fallback})
	}
}
