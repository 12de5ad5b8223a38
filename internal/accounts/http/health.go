package http

import (
	"net/http"
	"time"

	"github.com/quokkasoft/accounts/internal/accounts/store"
	"github.com/quokkasoft/accounts/pkg/accountsdk"
	"github.com/quokkasoft/accounts/pkg/httpx"
)

// LivezHandler reports process liveness. It never touches dependencies, so
// it stays green while the database is down.
//
//	@Summary	Liveness probe
//	@Tags		system
//	@Produce	json
//	@Success	200	{object}	accountsdk.HealthResponse
//	@Router		/livez [get]
func LivezHandler(startTime time.Time, version string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, accountsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).Round(time.Second).String(),
			Version: version,
		})
	})
}

// ReadyzHandler reports readiness, including a database ping.
//
//	@Summary	Readiness probe
//	@Tags		system
//	@Produce	json
//	@Success	200	{object}	accountsdk.HealthResponse
//	@Failure	503	{object}	accountsdk.HealthResponse
//	@Router		/readyz [get]
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := accountsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).Round(time.Second).String(),
			Version: version,
			Checks:  &accountsdk.HealthChecks{Database: "ok"},
		}

		code := http.StatusOK
		if err := st.Ping(r.Context()); err != nil {
			resp.Status = "degraded"
			resp.Checks.Database = err.Error()
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, resp)
	})
}
