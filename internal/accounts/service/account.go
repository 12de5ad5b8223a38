package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/quokkasoft/accounts/internal/accounts/domain"
	"github.com/quokkasoft/accounts/internal/accounts/store"
	"github.com/quokkasoft/accounts/pkg/cryptox"
	"github.com/quokkasoft/accounts/pkg/idx"
	"github.com/quokkasoft/accounts/pkg/slogx"
)

var (
	ErrMissingField    = errors.New("username and password are required")
	ErrUsernameTaken   = errors.New("username already taken")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrNoToken         = errors.New("no token provided")
	ErrTokenInvalid    = errors.New("token verification failed")
)

// AccountService owns the business invariants around credentials: username
// uniqueness, password hashing and the binding between a token's subject and
// an account record. Handlers translate its sentinel errors into status
// codes and do nothing else.
type AccountService struct {
	Store  store.Store
	Tokens *TokenService
}

// Register creates a new account. The username pre-check gives the common
// case a friendly error; the store's UNIQUE constraint is the backstop that
// makes the invariant hold under concurrent registration.
func (s *AccountService) Register(ctx context.Context, username, password string) error {
	log := slogx.FromContext(ctx)

	if username == "" || password == "" {
		return ErrMissingField
	}

	_, err := s.Store.Accounts().GetAccountByUsername(ctx, username)
	switch {
	case err == nil:
		return ErrUsernameTaken
	case !errors.Is(err, store.ErrNotFound):
		log.Error("failed to look up username", slog.Any("error", err))
		return err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return err
	}

	account := domain.Account{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: hash,
	}

	if err := s.Store.Accounts().CreateAccount(ctx, account); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Lost a race with a concurrent registration.
			return ErrUsernameTaken
		}
		log.Error("failed to create account", slog.Any("error", err))
		return err
	}

	log.Info("account registered", slog.String("account_id", account.ID))
	return nil
}

// Authenticate checks the credentials and issues an identity token bound to
// the account id. An unknown username fails before the password is checked,
// so the two failure modes stay distinguishable; that is a deliberate
// usability trade-off carried over from the service's original contract.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (string, error) {
	log := slogx.FromContext(ctx)

	if username == "" || password == "" {
		return "", ErrMissingField
	}

	account, err := s.Store.Accounts().GetAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrUserNotFound
		}
		log.Error("failed to look up account", slog.Any("error", err))
		return "", err
	}

	if err := cryptox.VerifyPassword(password, account.PasswordHash); err != nil {
		return "", ErrInvalidPassword
	}

	token, err := s.Tokens.Issue(account.ID)
	if err != nil {
		log.Error("failed to issue token", slog.Any("error", err))
		return "", err
	}

	log.Info("login succeeded", slog.String("account_id", account.ID))
	return token, nil
}

// GetProfile resolves the token to its account and returns it. A valid token
// whose subject no longer exists yields ErrUserNotFound, not ErrTokenInvalid:
// tokens are stateless, so deleting an account does not invalidate the token,
// it just leaves the subject dangling.
func (s *AccountService) GetProfile(ctx context.Context, token string) (domain.Account, error) {
	return s.resolveToken(ctx, token)
}

// UpdateProfile applies whichever of username/password are non-empty and
// returns a confirmation message. A password change rehashes; it does not
// invalidate tokens already issued.
func (s *AccountService) UpdateProfile(ctx context.Context, token, username, password string) (string, error) {
	log := slogx.FromContext(ctx)

	account, err := s.resolveToken(ctx, token)
	if err != nil {
		return "", err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if username != "" {
			if err := tx.Accounts().UpdateUsername(ctx, account.ID, username); err != nil {
				return err
			}
			log.Info("username changed",
				slog.String("account_id", account.ID),
				slog.String("username", username),
			)
		}
		if password != "" {
			hash, err := cryptox.HashPassword(password)
			if err != nil {
				return err
			}
			if err := tx.Accounts().UpdatePasswordHash(ctx, account.ID, hash); err != nil {
				return err
			}
			log.Info("password changed", slog.String("account_id", account.ID))
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Deleted between token resolution and the write.
			return "", ErrUserNotFound
		}
		log.Error("failed to update account", slog.Any("error", err))
		return "", err
	}

	return "User profile updated successfully", nil
}

// DeleteProfile removes the account the token is bound to. Deletion is
// observably non-idempotent: a second call with the same (still valid)
// token reports ErrUserNotFound.
func (s *AccountService) DeleteProfile(ctx context.Context, token string) error {
	log := slogx.FromContext(ctx)

	account, err := s.resolveToken(ctx, token)
	if err != nil {
		return err
	}

	if err := s.Store.Accounts().DeleteAccount(ctx, account.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		log.Error("failed to delete account", slog.Any("error", err))
		return err
	}

	log.Info("account deleted", slog.String("account_id", account.ID))
	return nil
}

// resolveToken verifies the token and loads the account it is bound to.
// Every verification failure is collapsed into ErrTokenInvalid; the caller
// does not get to learn whether the token was malformed, forged or expired.
func (s *AccountService) resolveToken(ctx context.Context, token string) (domain.Account, error) {
	log := slogx.FromContext(ctx)

	if token == "" {
		return domain.Account{}, ErrNoToken
	}

	subject, err := s.Tokens.Verify(token)
	if err != nil {
		log.Warn("token verification failed", slog.Any("error", err))
		return domain.Account{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	account, err := s.Store.Accounts().GetAccountByID(ctx, subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, ErrUserNotFound
		}
		log.Error("failed to load account", slog.String("account_id", subject), slog.Any("error", err))
		return domain.Account{}, err
	}

	return account, nil
}
