package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/quokkasoft/accounts/internal/accounts/service"
	"github.com/quokkasoft/accounts/internal/accounts/store"
	"github.com/quokkasoft/accounts/pkg/httpx"
	"github.com/quokkasoft/accounts/pkg/slogx"

	_ "github.com/quokkasoft/accounts/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	AccountService *service.AccountService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAccounts()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Accounts Service API
//	@version		0.1.0
//	@description	Minimal credential-management service: account registration,
//	@description	login with signed identity tokens, and authenticated
//	@description	self-service profile read/update/delete.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	TokenAuth
//	@in							header
//	@name						x-access-token
//	@description				Identity token returned by the login endpoint.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAccounts() {
	r.Mux.Handle("GET /{$}", WelcomeHandler())

	r.Mux.Handle("POST /register", &RegisterHandler{AccountService: r.AccountService})
	r.Mux.Handle("POST /login", &LoginHandler{AccountService: r.AccountService})

	// Token-carrying endpoints. The token travels in the x-access-token
	// header and is verified synchronously inside the service, so there is
	// no authn middleware here on purpose.
	r.Mux.Handle("GET /getuser", &GetUserHandler{AccountService: r.AccountService})
	r.Mux.Handle("PUT /update", &UpdateHandler{AccountService: r.AccountService})
	r.Mux.Handle("DELETE /delete", &DeleteHandler{AccountService: r.AccountService})
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
