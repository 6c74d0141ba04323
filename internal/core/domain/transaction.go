package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger entry.
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
	TransactionTypeTransfer   TransactionType = "transfer"
)

// ValidTransactionType reports whether t is one of the enumerated types.
func ValidTransactionType(t TransactionType) bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeWithdrawal, TransactionTypeTransfer:
		return true
	}
	return false
}

// TransactionStatus is the mutable lifecycle state of a ledger entry.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// ValidTransactionStatus reports whether s is one of the enumerated statuses.
func ValidTransactionStatus(s TransactionStatus) bool {
	switch s {
	case TransactionStatusPending, TransactionStatusCompleted, TransactionStatusFailed:
		return true
	}
	return false
}

// Transaction is a single entry in an account's ledger. It is owned
// exclusively by its account; TransactionID is caller-supplied and unique
// only by convention across the whole ledger.
type Transaction struct {
	// Seq is the insertion-order key. Higher seq means recorded later,
	// so newest-first is descending seq.
	Seq              int64             `json:"-"`
	TransactionID    string            `json:"transactionId"`
	AccountID        string            `json:"-"` // owning account (internal id)
	Type             TransactionType   `json:"type"`
	Amount           decimal.Decimal   `json:"amount"`
	RecipientAccount string            `json:"recipientAccount,omitempty"`
	Date             time.Time         `json:"date"`
	Status           TransactionStatus `json:"status"`
	AuditFields
}
