package repositories

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/swiftbank/bank_records_app/internal/core/domain"
)

// AccountRepository defines persistence operations for customer accounts.
type AccountRepository interface {
	// SaveAccount inserts a new account row.
	SaveAccount(ctx context.Context, account domain.Account) error

	// FindAccountByID returns the full account record, or apperrors.ErrNotFound.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByNumber returns the full account record including credential
	// hashes. Callers exposing the record externally must project it first.
	FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error)

	// FindAccounts lists accounts ordered by creation time, newest first.
	FindAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error)

	// UpdateAccountByID applies a partial update; nil fields are left
	// untouched. Returns the updated record or apperrors.ErrNotFound.
	UpdateAccountByID(ctx context.Context, accountID string, upd domain.AccountUpdate) (*domain.Account, error)

	// UpdateAccountByNumber is UpdateAccountByID keyed by account number.
	UpdateAccountByNumber(ctx context.Context, accountNumber string, upd domain.AccountUpdate) (*domain.Account, error)

	// AdjustBalance atomically adds delta to the account balance at the store
	// (a single conditional add, never read-then-write) and returns the
	// updated record. There is no minimum-balance check.
	AdjustBalance(ctx context.Context, accountNumber string, delta decimal.Decimal) (*domain.Account, error)

	// SetPasswordHash unconditionally overwrites the stored password hash.
	SetPasswordHash(ctx context.Context, accountNumber string, passwordHash string) error

	// SetTransactionPinHash stores the PIN hash only if none is set yet.
	// Returns apperrors.ErrDuplicate if a PIN already exists (including when
	// a concurrent caller won the set race), apperrors.ErrNotFound if the
	// account is absent.
	SetTransactionPinHash(ctx context.Context, accountNumber string, pinHash string) error

	// DeleteAccountByID hard-deletes the account; its ledger rows go with it.
	DeleteAccountByID(ctx context.Context, accountID string) error
}
