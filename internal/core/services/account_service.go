package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/swiftbank/bank_records_app/internal/core/domain"
	portsrepo "github.com/swiftbank/bank_records_app/internal/core/ports/repositories"
	portssvc "github.com/swiftbank/bank_records_app/internal/core/ports/services"
	"github.com/swiftbank/bank_records_app/internal/dto"
	"github.com/swiftbank/bank_records_app/internal/utils"
)

// AccountService implements the account store and credential gate.
type AccountService struct {
	accountRepo portsrepo.AccountRepository
	txnRepo     portsrepo.TransactionRepository
}

// NewAccountService creates the account service.
func NewAccountService(accountRepo portsrepo.AccountRepository, txnRepo portsrepo.TransactionRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo, txnRepo: txnRepo}
}

var _ portssvc.AccountSvcFacade = (*AccountService)(nil)

// CreateAccount creates an empty record: no profile, no credentials, no
// account number, balance zero. No input is taken, so nothing is validated.
func (s *AccountService) CreateAccount(ctx context.Context) (*domain.Account, error) {
	now := time.Now().UTC()
	account := domain.Account{
		AccountID:      uuid.NewString(),
		AccountBalance: decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return &account, nil
}

func (s *AccountService) GetAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByNumber(ctx, accountNumber)
}

// GetAccountWithHistory returns the record plus its ledger in stored order
// (newest first).
func (s *AccountService) GetAccountWithHistory(ctx context.Context, accountNumber string) (*domain.Account, []domain.Transaction, error) {
	account, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		return nil, nil, err
	}
	history, err := s.txnRepo.FindByAccountID(ctx, account.AccountID, true)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load history for account %s: %w", accountNumber, err)
	}
	return account, history, nil
}

func (s *AccountService) ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error) {
	return s.accountRepo.FindAccounts(ctx, limit, offset)
}

func (s *AccountService) UpdateAccountByID(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	return s.accountRepo.UpdateAccountByID(ctx, accountID, req.ToAccountUpdate())
}

func (s *AccountService) UpdateAccountByNumber(ctx context.Context, accountNumber string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	return s.accountRepo.UpdateAccountByNumber(ctx, accountNumber, req.ToAccountUpdate())
}

func (s *AccountService) DeleteAccountByID(ctx context.Context, accountID string) error {
	return s.accountRepo.DeleteAccountByID(ctx, accountID)
}

// VerifyPassword reports whether candidate matches the stored password.
// An account that never had a password set matches nothing.
func (s *AccountService) VerifyPassword(ctx context.Context, accountNumber, candidate string) (bool, error) {
	account, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		return false, err
	}
	if account.PasswordHash == "" {
		return false, nil
	}
	return utils.CheckPasswordHash(candidate, account.PasswordHash), nil
}

// ResetPassword overwrites the stored password unconditionally. There is no
// old-password check on this path.
func (s *AccountService) ResetPassword(ctx context.Context, accountNumber, newPassword string) error {
	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.accountRepo.SetPasswordHash(ctx, accountNumber, hash)
}

// SetOrVerifyPin has two effects behind one operation: the first call stores
// the PIN, every later call verifies the candidate against it. Losing the
// first-set race degrades into a verify of the winner's PIN.
func (s *AccountService) SetOrVerifyPin(ctx context.Context, accountNumber, pin string) (portssvc.PinResult, error) {
	account, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		return portssvc.PinResult{}, err
	}

	if account.HasTransactionPin() {
		return portssvc.PinResult{
			Mode:  portssvc.PinModeVerify,
			Match: utils.CheckPasswordHash(pin, account.TransactionPinHash),
		}, nil
	}

	hash, err := utils.HashPassword(pin)
	if err != nil {
		return portssvc.PinResult{}, fmt.Errorf("failed to hash pin: %w", err)
	}
	err = s.accountRepo.SetTransactionPinHash(ctx, accountNumber, hash)
	if err == nil {
		return portssvc.PinResult{Mode: portssvc.PinModeSet}, nil
	}

	// A concurrent caller set the PIN between our read and write; fall back
	// to verifying against the stored one.
	refreshed, ferr := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if ferr == nil && refreshed.HasTransactionPin() {
		return portssvc.PinResult{
			Mode:  portssvc.PinModeVerify,
			Match: utils.CheckPasswordHash(pin, refreshed.TransactionPinHash),
		}, nil
	}
	return portssvc.PinResult{}, err
}

// ApplyBalanceDelta adds delta to the balance. The store applies the delta
// atomically and no floor is enforced, so the balance may go negative.
// Ledger writes are deliberately not coordinated with this.
func (s *AccountService) ApplyBalanceDelta(ctx context.Context, accountNumber string, delta decimal.Decimal) (*domain.Account, error) {
	return s.accountRepo.AdjustBalance(ctx, accountNumber, delta)
}
