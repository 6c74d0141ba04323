package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/swiftbank/bank_records_app/internal/core/domain"
	"github.com/swiftbank/bank_records_app/internal/dto"
)

// PinMode distinguishes the two effects of the set-or-verify PIN operation.
type PinMode string

const (
	PinModeSet    PinMode = "set"
	PinModeVerify PinMode = "verify"
)

// PinResult reports which effect SetOrVerifyPin had. Match is only
// meaningful in verify mode.
type PinResult struct {
	Mode  PinMode
	Match bool
}

// AccountSvcFacade is the account store and credential gate surface.
type AccountSvcFacade interface {
	// CreateAccount creates an empty record with balance 0 and no history.
	CreateAccount(ctx context.Context) (*domain.Account, error)

	// GetAccountByNumber returns the full record; callers must project
	// before exposing it.
	GetAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error)

	// GetAccountWithHistory returns the record plus its ledger newest-first.
	GetAccountWithHistory(ctx context.Context, accountNumber string) (*domain.Account, []domain.Transaction, error)

	// ListAccounts lists records for the admin surface.
	ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error)

	// UpdateAccountByID merges the supplied fields into the record.
	UpdateAccountByID(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// UpdateAccountByNumber merges the supplied fields into the record.
	UpdateAccountByNumber(ctx context.Context, accountNumber string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeleteAccountByID removes the record and its embedded history.
	DeleteAccountByID(ctx context.Context, accountID string) error

	// VerifyPassword reports whether candidate matches the stored password.
	VerifyPassword(ctx context.Context, accountNumber, candidate string) (bool, error)

	// ResetPassword overwrites the stored password without re-auth.
	ResetPassword(ctx context.Context, accountNumber, newPassword string) error

	// SetOrVerifyPin sets the transaction PIN when none exists, otherwise
	// verifies the supplied one. Which effect occurred is in the result.
	SetOrVerifyPin(ctx context.Context, accountNumber, pin string) (PinResult, error)

	// ApplyBalanceDelta adds delta (signed) to the balance atomically.
	ApplyBalanceDelta(ctx context.Context, accountNumber string, delta decimal.Decimal) (*domain.Account, error)
}
