package store

import (
	"context"
	"errors"

	"github.com/quokkasoft/accounts/internal/accounts/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today,
// maybe postgres later) implement this. Sub-repositories keep concerns tidy
// and let a Tx expose the same surface as the root store.
type Store interface {
	Accounts() Accounts

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Prefer this
	// over Tx for multi-step writes that must be atomic.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Accounts interface {
	// GetAccountByID returns an account by id. ErrNotFound when absent.
	GetAccountByID(ctx context.Context, id string) (domain.Account, error)

	// GetAccountByUsername is used during registration and login.
	GetAccountByUsername(ctx context.Context, username string) (domain.Account, error)

	// CreateAccount inserts a new account (id is provided by the app via
	// ULID). Returns ErrAlreadyExists when the username is taken; the
	// UNIQUE constraint makes this atomic, so two concurrent creates with
	// the same username cannot both succeed.
	CreateAccount(ctx context.Context, a domain.Account) error

	// UpdateUsername renames the account and bumps updated_at.
	// ErrNotFound when the id is absent, ErrAlreadyExists on collision.
	UpdateUsername(ctx context.Context, accountID, username string) error

	// UpdatePasswordHash sets the password_hash (argon2id) and bumps
	// updated_at. ErrNotFound when the id is absent.
	UpdatePasswordHash(ctx context.Context, accountID, newHash string) error

	// DeleteAccount removes the record. ErrNotFound when nothing was
	// deleted, which is how a second delete with a still-valid token is
	// told apart from the first.
	DeleteAccount(ctx context.Context, accountID string) error
}
