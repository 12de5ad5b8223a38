package jwtx_test

import (
	"testing"
	"time"

	"github.com/quokkasoft/accounts/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestNewClaimsWindow(t *testing.T) {
	now := time.Now().UTC()
	claims := jwtx.NewClaims("subject-1", exampleIssuer, jwtx.DefaultTokenTTL, now)

	require.Equal(t, "subject-1", claims.Subject)
	require.Equal(t, exampleIssuer, claims.Issuer)
	require.Equal(t, now.Unix(), claims.IssuedAt.Unix())
	require.Equal(t, now.Add(24*time.Hour).Unix(), claims.ExpiresAt.Unix())
	require.NoError(t, claims.ValidateExpiry())
}

func TestValidateExpiry(t *testing.T) {
	expired := jwtx.NewClaims("s", exampleIssuer, time.Minute, time.Now().UTC().Add(-time.Hour))
	require.ErrorIs(t, expired.ValidateExpiry(), jwtx.ErrExpired)

	future := jwtx.NewClaims("s", exampleIssuer, time.Minute, time.Now().UTC().Add(time.Hour))
	require.ErrorIs(t, future.ValidateExpiry(), jwtx.ErrNotYetValid)
}

func TestNewJTIUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for range 64 {
		jti := jwtx.NewJTI()
		require.NotEmpty(t, jti)
		_, dup := seen[jti]
		require.False(t, dup, "jti collision")
		seen[jti] = struct{}{}
	}
}
