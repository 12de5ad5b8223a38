package accounts_test

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/quokkasoft/accounts/internal/accounts/app"
	"github.com/quokkasoft/accounts/pkg/accountsdk"
	"github.com/stretchr/testify/require"
)

/*
 * Common helpers for accounts service end-to-end tests. The application is
 * wired exactly as in production (app.New) but served in-process behind an
 * httptest.Server, and every test talks to it through the accountsdk client.
 */

const testTimeout = 10 * time.Second

// startService boots a fully wired application over a throwaway database
// and returns a client pointed at it.
func startService(t *testing.T) *accountsdk.Client {
	t.Helper()

	dir := t.TempDir()

	application, err := app.New(app.Config{
		Issuer:              "accounts-e2e",
		JWTSecret:           "e2e-secret-e2e-secret-e2e-secret-e2e",
		TokenTTL:            time.Hour,
		DatabaseFile:        filepath.Join(dir, "accounts.db"),
		PepperFile:          filepath.Join(dir, "pepper"),
		Env:                 "dev",
		LogLevel:            "error",
		LogFormat:           "text",
		ShutdownGracePeriod: time.Second,
	})
	require.NoError(t, err)

	server := httptest.NewServer(application.Handler())
	t.Cleanup(server.Close)

	return accountsdk.New(server.URL)
}

func testContext(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	t.Cleanup(cancel)
	return ctx
}

// mustRegisterAndLogin registers the account and returns a fresh token.
func mustRegisterAndLogin(t *testing.T, client *accountsdk.Client, username, password string) string {
	t.Helper()
	ctx := testContext(t)

	_, err := client.Register(ctx, username, password)
	require.NoError(t, err)

	login, err := client.Login(ctx, username, password)
	require.NoError(t, err)
	require.True(t, login.Auth)
	require.NotEmpty(t, login.Token)

	return login.Token
}

// requireAPIError asserts err is an APIError with the given status and message.
func requireAPIError(t *testing.T, err error, status int, message string) {
	t.Helper()

	var apiErr *accountsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, message, apiErr.Message)
}
