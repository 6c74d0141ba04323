package repositories

import (
	"context"

	"github.com/swiftbank/bank_records_app/internal/core/domain"
)

// TransactionRepository defines persistence operations for ledger entries.
type TransactionRepository interface {
	// SaveTransaction appends a new entry at the head of the owning
	// account's history (next seq) and returns it with Seq assigned.
	SaveTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)

	// FindByAccountID lists an account's history. newestFirst selects the
	// stored order (descending seq); otherwise ascending seq.
	FindByAccountID(ctx context.Context, accountID string, newestFirst bool) ([]domain.Transaction, error)

	// FindByTransactionID looks up an entry across all accounts. Transaction
	// ids are unique only by convention; when several rows match, the
	// earliest recorded one is returned.
	FindByTransactionID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// UpdateStatus sets the status of the earliest entry matching
	// transactionID, optionally scoped to one account (empty accountID means
	// global). Returns the updated entry or apperrors.ErrNotFound.
	UpdateStatus(ctx context.Context, accountID string, transactionID string, status domain.TransactionStatus) (*domain.Transaction, error)

	// DeleteByTransactionID removes exactly one entry (the earliest match).
	DeleteByTransactionID(ctx context.Context, transactionID string) error
}
