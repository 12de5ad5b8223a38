package service_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quokkasoft/accounts/internal/accounts/service"
	"github.com/quokkasoft/accounts/internal/accounts/store/drivers/sqlite"
	"github.com/quokkasoft/accounts/pkg/cryptox"
	"github.com/quokkasoft/accounts/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "accounts-test"

var testSecret = []byte("test-secret-test-secret-test-secret!")

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "accounts-service-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

func newTestService(t *testing.T) *service.AccountService {
	return newTestServiceTTL(t, time.Hour)
}

func newTestServiceTTL(t *testing.T, ttl time.Duration) *service.AccountService {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)

	return &service.AccountService{
		Store: st,
		Tokens: &service.TokenService{
			Signer:   signer,
			Verifier: jwtx.NewVerifierHS256(testSecret, testIssuer),
			Issuer:   testIssuer,
			TTL:      ttl,
		},
	}
}

func TestRegisterThenAuthenticate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "pw1"))

	token, err := svc.Authenticate(ctx, "alice", "pw1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// The token resolves straight back to the account.
	account, err := svc.GetProfile(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "alice", account.Username)
}

func TestRegisterMissingFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"missing password", "alice", ""},
		{"missing username", "", "pw"},
		{"missing both", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Register(ctx, tt.username, tt.password)
			require.ErrorIs(t, err, service.ErrMissingField)
		})
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "pw1"))
	require.ErrorIs(t, svc.Register(ctx, "alice", "pw2"), service.ErrUsernameTaken)

	// The original credentials still authenticate; the duplicate attempt
	// must not have created or overwritten anything.
	_, err := svc.Authenticate(ctx, "alice", "pw1")
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, "alice", "pw2")
	require.ErrorIs(t, err, service.ErrInvalidPassword)
}

func TestAuthenticateFailureModesAreDistinguishable(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "pw1"))

	_, err := svc.Authenticate(ctx, "alice", "wrong")
	require.ErrorIs(t, err, service.ErrInvalidPassword)

	_, err = svc.Authenticate(ctx, "nobody", "pw1")
	require.ErrorIs(t, err, service.ErrUserNotFound)

	_, err = svc.Authenticate(ctx, "alice", "")
	require.ErrorIs(t, err, service.ErrMissingField)
}

func TestGetProfileTokenFailures(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.GetProfile(ctx, "")
	require.ErrorIs(t, err, service.ErrNoToken)

	_, err = svc.GetProfile(ctx, "not-a-token")
	require.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestGetProfileExpiredToken(t *testing.T) {
	// TTL in the past: issued tokens are already expired.
	svc := newTestServiceTTL(t, -time.Hour)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "pw1"))
	token, err := svc.Authenticate(ctx, "alice", "pw1")
	require.NoError(t, err)

	_, err = svc.GetProfile(ctx, token)
	require.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestDeletedAccountYieldsUserNotFoundNotTokenInvalid(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "pw1"))
	token, err := svc.Authenticate(ctx, "alice", "pw1")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProfile(ctx, token))

	// The token is still cryptographically valid; only the subject is gone.
	_, err = svc.GetProfile(ctx, token)
	require.ErrorIs(t, err, service.ErrUserNotFound)
	require.NotErrorIs(t, err, service.ErrTokenInvalid)

	_, err = svc.UpdateProfile(ctx, token, "bob", "")
	require.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestDeleteProfileNotIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "pw1"))
	token, err := svc.Authenticate(ctx, "alice", "pw1")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProfile(ctx, token))
	require.ErrorIs(t, svc.DeleteProfile(ctx, token), service.ErrUserNotFound)
}

func TestUpdateProfilePasswordOnly(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "old-pw"))
	token, err := svc.Authenticate(ctx, "alice", "old-pw")
	require.NoError(t, err)

	msg, err := svc.UpdateProfile(ctx, token, "", "new-pw")
	require.NoError(t, err)
	require.NotEmpty(t, msg)

	// Username unchanged, new password works, old one no longer does.
	account, err := svc.GetProfile(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "alice", account.Username)

	_, err = svc.Authenticate(ctx, "alice", "new-pw")
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, "alice", "old-pw")
	require.ErrorIs(t, err, service.ErrInvalidPassword)
}

func TestUpdateProfileUsernameOnly(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "pw1"))
	token, err := svc.Authenticate(ctx, "alice", "pw1")
	require.NoError(t, err)

	_, err = svc.UpdateProfile(ctx, token, "alicia", "")
	require.NoError(t, err)

	// The token stays valid across the rename: it is bound to the id,
	// not the username.
	account, err := svc.GetProfile(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "alicia", account.Username)

	_, err = svc.Authenticate(ctx, "alicia", "pw1")
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, "alice", "pw1")
	require.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestUpdateProfileTokenFailures(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.UpdateProfile(ctx, "", "x", "y")
	require.ErrorIs(t, err, service.ErrNoToken)

	_, err = svc.UpdateProfile(ctx, "garbage", "x", "y")
	require.ErrorIs(t, err, service.ErrTokenInvalid)
}
