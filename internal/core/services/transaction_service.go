package services

import (
	"context"
	"fmt"
	"time"

	"github.com/swiftbank/bank_records_app/internal/apperrors"
	"github.com/swiftbank/bank_records_app/internal/core/domain"
	portsrepo "github.com/swiftbank/bank_records_app/internal/core/ports/repositories"
	portssvc "github.com/swiftbank/bank_records_app/internal/core/ports/services"
	"github.com/swiftbank/bank_records_app/internal/dto"
)

// TransactionService implements the per-account ledger.
type TransactionService struct {
	txnRepo     portsrepo.TransactionRepository
	accountRepo portsrepo.AccountRepository
}

// NewTransactionService creates the ledger service.
func NewTransactionService(txnRepo portsrepo.TransactionRepository, accountRepo portsrepo.AccountRepository) *TransactionService {
	return &TransactionService{txnRepo: txnRepo, accountRepo: accountRepo}
}

var _ portssvc.TransactionSvcFacade = (*TransactionService)(nil)

// RecordTransaction appends a one-sided ledger entry to the sender's
// history. The recipient is not validated and not credited, and the sender's
// balance is untouched; deducting it is a separate call with no atomicity
// between the two.
func (s *TransactionService) RecordTransaction(ctx context.Context, req dto.RecordTransactionRequest) (*domain.Transaction, error) {
	sender, err := s.accountRepo.FindAccountByNumber(ctx, req.SenderAccount)
	if err != nil {
		return nil, err
	}

	txnType := domain.TransactionType(req.Type)
	if req.Type == "" {
		txnType = domain.TransactionTypeTransfer
	}
	if !domain.ValidTransactionType(txnType) {
		return nil, fmt.Errorf("unknown transaction type %q: %w", req.Type, apperrors.ErrValidation)
	}

	status := domain.TransactionStatus(req.Status)
	if req.Status == "" {
		status = domain.TransactionStatusPending
	}
	if !domain.ValidTransactionStatus(status) {
		return nil, fmt.Errorf("unknown transaction status %q: %w", req.Status, apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	date := now
	if req.Date != nil {
		date = *req.Date
	}

	txn := domain.Transaction{
		TransactionID:    req.TransactionID,
		AccountID:        sender.AccountID,
		Type:             txnType,
		Amount:           req.Amount,
		RecipientAccount: req.RecipientAccount,
		Date:             date,
		Status:           status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	return s.txnRepo.SaveTransaction(ctx, txn)
}

func (s *TransactionService) listTransactions(ctx context.Context, accountNumber string, newestFirst bool) ([]domain.Transaction, error) {
	account, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		return nil, err
	}
	return s.txnRepo.FindByAccountID(ctx, account.AccountID, newestFirst)
}

// ListTransactionsNewestFirst returns the stored order: latest entry first.
func (s *TransactionService) ListTransactionsNewestFirst(ctx context.Context, accountNumber string) ([]domain.Transaction, error) {
	return s.listTransactions(ctx, accountNumber, true)
}

// ListTransactionsOldestFirst returns the reversed order.
func (s *TransactionService) ListTransactionsOldestFirst(ctx context.Context, accountNumber string) ([]domain.Transaction, error) {
	return s.listTransactions(ctx, accountNumber, false)
}

func (s *TransactionService) GetByTransactionID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.txnRepo.FindByTransactionID(ctx, transactionID)
}

func validateStatus(status string) (domain.TransactionStatus, error) {
	st := domain.TransactionStatus(status)
	if !domain.ValidTransactionStatus(st) {
		return "", fmt.Errorf("unknown transaction status %q: %w", status, apperrors.ErrValidation)
	}
	return st, nil
}

// UpdateStatus sets an entry's status, locating it globally by id. Setting
// the same status twice yields the same observable record.
func (s *TransactionService) UpdateStatus(ctx context.Context, transactionID string, status string) (*domain.Transaction, error) {
	st, err := validateStatus(status)
	if err != nil {
		return nil, err
	}
	return s.txnRepo.UpdateStatus(ctx, "", transactionID, st)
}

// UpdateStatusForAccount sets an entry's status within a single account's
// history, resolving the account number first.
func (s *TransactionService) UpdateStatusForAccount(ctx context.Context, accountNumber, transactionID string, status string) (*domain.Transaction, error) {
	st, err := validateStatus(status)
	if err != nil {
		return nil, err
	}
	account, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		return nil, err
	}
	return s.txnRepo.UpdateStatus(ctx, account.AccountID, transactionID, st)
}

// DeleteTransaction removes exactly one entry matching the id.
func (s *TransactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	return s.txnRepo.DeleteByTransactionID(ctx, transactionID)
}
