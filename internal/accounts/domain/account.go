package domain

import "time"

// Account is the credential record for a single user. The ID is assigned at
// creation and never changes; it is what tokens are bound to. The username
// is only a human-facing lookup key for registration and login, so renaming
// an account does not invalidate tokens already in the wild.
type Account struct {
	ID           string
	Username     string
	PasswordHash string // argon2id encoded, never sent to clients
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
