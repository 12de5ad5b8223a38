package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/quokkasoft/accounts/internal/accounts/service"
	"github.com/quokkasoft/accounts/pkg/accountsdk"
	"github.com/quokkasoft/accounts/pkg/httpx"
)

type UpdateHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP updates the authenticated account. Omitted fields are left
// unchanged; sending neither field is a successful no-op.
//
//	@Summary		Update the authenticated user's profile
//	@Description	Applies whichever of username/password are present in the
//	@Description	body to the account the token is bound to. Tokens issued
//	@Description	before the change stay valid.
//	@Tags			accounts
//	@Accept			json
//	@Produce		json
//	@Security		TokenAuth
//	@Param			body	body		accountsdk.UpdateRequest	true	"Fields to change"
//	@Success		200		{object}	accountsdk.MessageResponse
//	@Failure		401		{object}	accountsdk.ErrorResponse	"No token provided"
//	@Failure		404		{object}	accountsdk.ErrorResponse	"Account no longer exists"
//	@Failure		500		{object}	accountsdk.ErrorResponse	"Token verification failed"
//	@Router			/update [put]
func (h *UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(accountsdk.TokenHeader)

	// A missing body means "change nothing", same as an empty object.
	var req accountsdk.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		httpx.WriteJSON(w, http.StatusBadRequest,
			accountsdk.ErrorResponse{Message: "Invalid request body"})
		return
	}

	msg, err := h.AccountService.UpdateProfile(r.Context(), token, req.Username, req.Password)
	if err != nil {
		writeError(w, r, err, "Error updating user")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.MessageResponse{Message: msg})
}
