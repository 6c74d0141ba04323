package mapping

import (
	"database/sql"

	"github.com/swiftbank/bank_records_app/internal/core/domain"
	"github.com/swiftbank/bank_records_app/internal/models"
)

// ToModelTransaction converts a domain ledger entry to its row shape.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		Seq:              d.Seq,
		TransactionID:    d.TransactionID,
		AccountID:        d.AccountID,
		Type:             string(d.Type),
		Amount:           d.Amount,
		RecipientAccount: sql.NullString{String: d.RecipientAccount, Valid: d.RecipientAccount != ""},
		Date:             d.Date,
		Status:           string(d.Status),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainTransaction converts a row to the domain shape.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		Seq:              m.Seq,
		TransactionID:    m.TransactionID,
		AccountID:        m.AccountID,
		Type:             domain.TransactionType(m.Type),
		Amount:           m.Amount,
		RecipientAccount: fromNullString(m.RecipientAccount),
		Date:             m.Date,
		Status:           domain.TransactionStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}
