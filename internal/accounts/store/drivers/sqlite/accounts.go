package sqlite

import (
	"context"
	"time"

	"github.com/quokkasoft/accounts/internal/accounts/domain"
	"github.com/quokkasoft/accounts/internal/accounts/store"
)

type accountsRepo struct {
	q querier
}

const accountColumns = `id, username, password_hash, created_at, updated_at`

func (r *accountsRepo) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id)
	return scanAccount(row)
}

func (r *accountsRepo) GetAccountByUsername(ctx context.Context, username string) (domain.Account, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE username = ?`, username)
	return scanAccount(row)
}

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO accounts (id, username, password_hash, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		a.ID, a.Username, a.PasswordHash, now, now)
	return mapConstraint(err)
}

func (r *accountsRepo) UpdateUsername(ctx context.Context, accountID, username string) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE accounts SET username = ?, updated_at = ? WHERE id = ?`,
		username, time.Now().UTC(), accountID)
	if err != nil {
		return mapConstraint(err)
	}
	return requireRow(res)
}

func (r *accountsRepo) UpdatePasswordHash(ctx context.Context, accountID, newHash string) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE accounts SET password_hash = ?, updated_at = ? WHERE id = ?`,
		newHash, time.Now().UTC(), accountID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *accountsRepo) DeleteAccount(ctx context.Context, accountID string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, accountID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}

// requireRow converts a zero-rows-affected write into ErrNotFound.
func requireRow(res interface{ RowsAffected() (int64, error) }) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
