package http

import (
	"net/http"

	"github.com/quokkasoft/accounts/internal/accounts/service"
	"github.com/quokkasoft/accounts/pkg/accountsdk"
	"github.com/quokkasoft/accounts/pkg/httpx"
)

type DeleteHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP deletes the authenticated account. Not idempotent: a second
// call with the same token gets a 404, since the subject is gone while the
// token itself stays verifiable until it expires.
//
//	@Summary		Delete the authenticated user's account
//	@Tags			accounts
//	@Produce		json
//	@Security		TokenAuth
//	@Success		200	{object}	accountsdk.MessageResponse
//	@Failure		401	{object}	accountsdk.ErrorResponse	"No token provided"
//	@Failure		404	{object}	accountsdk.ErrorResponse	"Account no longer exists"
//	@Failure		500	{object}	accountsdk.ErrorResponse	"Token verification failed"
//	@Router			/delete [delete]
func (h *DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(accountsdk.TokenHeader)

	if err := h.AccountService.DeleteProfile(r.Context(), token); err != nil {
		writeError(w, r, err, "Error deleting user")
		return
	}

	httpx.WriteJSON(w, http.StatusOK,
		accountsdk.MessageResponse{Message: "User profile deleted successfully"})
}
