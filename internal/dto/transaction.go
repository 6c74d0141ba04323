package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/swiftbank/bank_records_app/internal/core/domain"
)

// RecordTransactionRequest records a new ledger entry against the sender's
// account. Type defaults to transfer and status to pending when omitted.
type RecordTransactionRequest struct {
	SenderAccount    string          `json:"senderAccount" binding:"required"`
	RecipientAccount string          `json:"recipientAccount"`
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	TransactionID    string          `json:"transactionId" binding:"required"`
	Type             string          `json:"type" binding:"omitempty,oneof=deposit withdrawal transfer"`
	Status           string          `json:"status" binding:"omitempty,oneof=pending completed failed"`
	Date             *time.Time      `json:"date"`
}

// UpdateTransactionStatusRequest sets a ledger entry's lifecycle status.
// Unknown statuses are rejected on every entry point.
type UpdateTransactionStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending completed failed"`
}

// TransactionResponse is the external shape of a ledger entry.
type TransactionResponse struct {
	TransactionID    string          `json:"transactionId"`
	Type             string          `json:"type"`
	Amount           decimal.Decimal `json:"amount"`
	RecipientAccount string          `json:"recipientAccount,omitempty"`
	Date             time.Time       `json:"date"`
	Status           string          `json:"status"`
}

// ToTransactionResponse converts a domain ledger entry.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:    txn.TransactionID,
		Type:             string(txn.Type),
		Amount:           txn.Amount,
		RecipientAccount: txn.RecipientAccount,
		Date:             txn.Date,
		Status:           string(txn.Status),
	}
}

// ToTransactionResponses converts a history slice, preserving its order.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	if txns == nil {
		return nil
	}
	out := make([]TransactionResponse, len(txns))
	for i := range txns {
		out[i] = ToTransactionResponse(&txns[i])
	}
	return out
}

// TransactionHistoryResponse wraps a history the way the admin endpoint
// reports it.
type TransactionHistoryResponse struct {
	TransactionHistory []TransactionResponse `json:"transactionHistory"`
}
