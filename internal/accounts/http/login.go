package http

import (
	"encoding/json"
	"net/http"

	"github.com/quokkasoft/accounts/internal/accounts/service"
	"github.com/quokkasoft/accounts/pkg/accountsdk"
	"github.com/quokkasoft/accounts/pkg/httpx"
)

type LoginHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP exchanges credentials for an identity token.
//
//	@Summary		Log in
//	@Description	Verifies the credentials and returns a signed identity
//	@Description	token. Unknown usernames and wrong passwords fail with
//	@Description	distinct status codes.
//	@Tags			accounts
//	@Accept			json
//	@Produce		json
//	@Param			body	body		accountsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	accountsdk.LoginResponse
//	@Failure		400		{object}	accountsdk.ErrorResponse	"Missing username or password"
//	@Failure		401		{object}	accountsdk.ErrorResponse	"Wrong password"
//	@Failure		404		{object}	accountsdk.ErrorResponse	"Unknown username"
//	@Failure		500		{object}	accountsdk.ErrorResponse
//	@Router			/login [post]
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest,
			accountsdk.ErrorResponse{Message: "Username and password are required"})
		return
	}

	token, err := h.AccountService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, r, err, "Error logging in")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.LoginResponse{Auth: true, Token: token})
}
