package http

import (
	"net/http"

	"github.com/quokkasoft/accounts/pkg/accountsdk"
	"github.com/quokkasoft/accounts/pkg/httpx"
)

// WelcomeHandler serves the unauthenticated landing response at the root.
//
//	@Summary	API landing endpoint
//	@Tags		system
//	@Produce	json
//	@Success	200	{object}	accountsdk.MessageResponse
//	@Router		/ [get]
func WelcomeHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK,
			accountsdk.MessageResponse{Message: "Welcome to the API"})
	})
}
