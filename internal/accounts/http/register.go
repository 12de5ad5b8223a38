package http

import (
	"encoding/json"
	"net/http"

	"github.com/quokkasoft/accounts/internal/accounts/service"
	"github.com/quokkasoft/accounts/pkg/accountsdk"
	"github.com/quokkasoft/accounts/pkg/httpx"
)

type RegisterHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP creates a new account from a username/password pair.
//
//	@Summary		Register a new account
//	@Description	Creates an account with the given username and password.
//	@Description	Usernames are unique; registering an existing one fails.
//	@Tags			accounts
//	@Accept			json
//	@Produce		json
//	@Param			body	body		accountsdk.RegisterRequest	true	"Credentials"
//	@Success		201		{object}	accountsdk.MessageResponse
//	@Failure		400		{object}	accountsdk.ErrorResponse	"Missing username or password"
//	@Failure		409		{object}	accountsdk.ErrorResponse	"Username already taken"
//	@Failure		500		{object}	accountsdk.ErrorResponse
//	@Router			/register [post]
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest,
			accountsdk.ErrorResponse{Message: "Username and password are required"})
		return
	}

	if err := h.AccountService.Register(r.Context(), req.Username, req.Password); err != nil {
		writeError(w, r, err, "Error registering user")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated,
		accountsdk.MessageResponse{Message: "User registered successfully"})
}
