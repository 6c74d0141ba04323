package services

import (
	"context"

	"github.com/swiftbank/bank_records_app/internal/core/domain"
	"github.com/swiftbank/bank_records_app/internal/dto"
)

// TransactionSvcFacade is the per-account ledger surface.
type TransactionSvcFacade interface {
	// RecordTransaction appends an entry to the sender's history. Status
	// defaults to pending and date to now; an explicit status is preserved.
	// The recipient is never validated and never credited.
	RecordTransaction(ctx context.Context, req dto.RecordTransactionRequest) (*domain.Transaction, error)

	// ListTransactionsNewestFirst returns the stored order (latest entry first).
	ListTransactionsNewestFirst(ctx context.Context, accountNumber string) ([]domain.Transaction, error)

	// ListTransactionsOldestFirst returns the reversed order.
	ListTransactionsOldestFirst(ctx context.Context, accountNumber string) ([]domain.Transaction, error)

	// GetByTransactionID finds an entry across all accounts.
	GetByTransactionID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// UpdateStatus sets an entry's status, located globally by id.
	UpdateStatus(ctx context.Context, transactionID string, status string) (*domain.Transaction, error)

	// UpdateStatusForAccount sets an entry's status within one account's history.
	UpdateStatusForAccount(ctx context.Context, accountNumber, transactionID string, status string) (*domain.Transaction, error)

	// DeleteTransaction removes exactly one entry matching the id.
	DeleteTransaction(ctx context.Context, transactionID string) error
}
