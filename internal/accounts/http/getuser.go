package http

import (
	"fmt"
	"net/http"

	"github.com/quokkasoft/accounts/internal/accounts/service"
	"github.com/quokkasoft/accounts/pkg/accountsdk"
	"github.com/quokkasoft/accounts/pkg/httpx"
)

type GetUserHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP returns the profile bound to the caller's token.
//
//	@Summary		Get the authenticated user's profile
//	@Description	Resolves the x-access-token header to an account and
//	@Description	returns a greeting plus the current username.
//	@Tags			accounts
//	@Produce		json
//	@Security		TokenAuth
//	@Success		200	{object}	accountsdk.UserResponse
//	@Failure		401	{object}	accountsdk.ErrorResponse	"No token provided"
//	@Failure		404	{object}	accountsdk.ErrorResponse	"Account no longer exists"
//	@Failure		500	{object}	accountsdk.ErrorResponse	"Token verification failed"
//	@Router			/getuser [get]
func (h *GetUserHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(accountsdk.TokenHeader)

	account, err := h.AccountService.GetProfile(r.Context(), token)
	if err != nil {
		writeError(w, r, err, "Error fetching user")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.UserResponse{
		Message:  fmt.Sprintf("Welcome %s", account.Username),
		Username: account.Username,
	})
}
