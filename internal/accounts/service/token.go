package service

import (
	"time"

	"github.com/quokkasoft/accounts/pkg/jwtx"
)

// TokenService issues and verifies the stateless identity tokens handed out
// at login. Tokens are never stored server-side; their validity is fully
// determined by the signature, the embedded claims and the clock. The only
// process state is the signing secret, loaded once at startup.
type TokenService struct {
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	Issuer   string
	TTL      time.Duration
}

// Issue mints a token bound to the given subject (the account id). The
// validity window is fixed at issuance: iat = now, exp = now + TTL. Only an
// unset TTL falls back to the default; a negative TTL is honoured as-is and
// yields a token that is already expired.
func (s *TokenService) Issue(subject string) (string, error) {
	ttl := s.TTL
	if ttl == 0 {
		ttl = jwtx.DefaultTokenTTL
	}
	claims := jwtx.NewClaims(subject, s.Issuer, ttl, time.Now().UTC())
	return s.Signer.Sign(claims)
}

// Verify checks the token and returns the embedded subject unchanged.
// Failures are jwtx sentinels: ErrMalformed, ErrInvalidSig or ErrExpired.
func (s *TokenService) Verify(token string) (string, error) {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}
