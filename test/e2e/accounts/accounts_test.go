package accounts_test

import (
	"net/http"
	"testing"

	"github.com/quokkasoft/accounts/pkg/accountsdk"
	"github.com/stretchr/testify/require"
)

func TestFullAccountLifecycle(t *testing.T) {
	client := startService(t)
	ctx := testContext(t)

	msg, err := client.Register(ctx, "alice", "correct horse battery staple")
	require.NoError(t, err)
	require.Equal(t, "User registered successfully", msg.Message)

	login, err := client.Login(ctx, "alice", "correct horse battery staple")
	require.NoError(t, err)
	require.True(t, login.Auth)

	user, err := client.GetUser(ctx, login.Token)
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)
	require.Equal(t, "Welcome alice", user.Message)

	msg, err = client.Delete(ctx, login.Token)
	require.NoError(t, err)
	require.Equal(t, "User profile deleted successfully", msg.Message)

	_, err = client.GetUser(ctx, login.Token)
	requireAPIError(t, err, http.StatusNotFound, "User not found")
}

func TestRegisterValidation(t *testing.T) {
	client := startService(t)
	ctx := testContext(t)

	_, err := client.Register(ctx, "alice", "")
	requireAPIError(t, err, http.StatusBadRequest, "Username and password are required")

	_, err = client.Register(ctx, "", "pw")
	requireAPIError(t, err, http.StatusBadRequest, "Username and password are required")

	_, err = client.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	_, err = client.Register(ctx, "alice", "pw2")
	requireAPIError(t, err, http.StatusConflict, "User already exists")
}

func TestLoginFailures(t *testing.T) {
	client := startService(t)
	mustRegisterAndLogin(t, client, "alice", "pw1")
	ctx := testContext(t)

	_, err := client.Login(ctx, "nobody", "pw1")
	requireAPIError(t, err, http.StatusNotFound, "User not found")

	_, err = client.Login(ctx, "alice", "wrong")
	requireAPIError(t, err, http.StatusUnauthorized, "Invalid password")
}

func TestTokenRequiredOnProtectedEndpoints(t *testing.T) {
	client := startService(t)
	ctx := testContext(t)

	_, err := client.GetUser(ctx, "")
	requireAPIError(t, err, http.StatusUnauthorized, "No token provided")

	_, err = client.Update(ctx, "", accountsdk.UpdateRequest{Username: "x"})
	requireAPIError(t, err, http.StatusUnauthorized, "No token provided")

	_, err = client.Delete(ctx, "")
	requireAPIError(t, err, http.StatusUnauthorized, "No token provided")

	// A syntactically broken token is reported as a verification failure,
	// not as missing authentication.
	_, err = client.GetUser(ctx, "bogus.token.value")
	requireAPIError(t, err, http.StatusInternalServerError, "Failed to authenticate token.")
}

func TestUpdateProfileEndToEnd(t *testing.T) {
	client := startService(t)
	token := mustRegisterAndLogin(t, client, "alice", "pw1")
	ctx := testContext(t)

	msg, err := client.Update(ctx, token, accountsdk.UpdateRequest{
		Username: "alicia",
		Password: "pw2",
	})
	require.NoError(t, err)
	require.Equal(t, "User profile updated successfully", msg.Message)

	// Token is bound to the account id, so it keeps working after the rename.
	user, err := client.GetUser(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "alicia", user.Username)

	_, err = client.Login(ctx, "alice", "pw1")
	requireAPIError(t, err, http.StatusNotFound, "User not found")

	login, err := client.Login(ctx, "alicia", "pw2")
	require.NoError(t, err)
	require.True(t, login.Auth)
}

func TestDeleteIsNotIdempotent(t *testing.T) {
	client := startService(t)
	token := mustRegisterAndLogin(t, client, "alice", "pw1")
	ctx := testContext(t)

	_, err := client.Delete(ctx, token)
	require.NoError(t, err)

	_, err = client.Delete(ctx, token)
	requireAPIError(t, err, http.StatusNotFound, "User not found")
}

func TestTwoAccountsAreIsolated(t *testing.T) {
	client := startService(t)
	aliceToken := mustRegisterAndLogin(t, client, "alice", "pw-a")
	bobToken := mustRegisterAndLogin(t, client, "bob", "pw-b")
	ctx := testContext(t)

	// Deleting alice must not disturb bob.
	_, err := client.Delete(ctx, aliceToken)
	require.NoError(t, err)

	user, err := client.GetUser(ctx, bobToken)
	require.NoError(t, err)
	require.Equal(t, "bob", user.Username)
}
