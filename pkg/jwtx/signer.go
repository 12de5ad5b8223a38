package jwtx

// Signer is our interface for anything that can sign identity tokens.
// Alg and Validate exist so a future multi-algorithm setup can pick and
// sanity-check signers generically; the service itself only calls Sign.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
	Validate() error
}

// NewSignerHS256 creates an HS256 signer from a shared secret.
// The secret is process-wide and loaded once at startup.
func NewSignerHS256(secret []byte) (Signer, error) {
	return newHS256Signer(secret)
}
