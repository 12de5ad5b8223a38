package jwtx

import "errors"

// Verifier validates a token string and gives you back the claims if it's
// legit. Verification is purely functional: the only state is the secret.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")

	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)

// NewVerifierHS256 creates a Verifier over the shared HMAC secret. The
// issuer is enforced when non-empty.
func NewVerifierHS256(secret []byte, issuer string) Verifier {
	return &HS256Verifier{secret: secret, issuer: issuer}
}
