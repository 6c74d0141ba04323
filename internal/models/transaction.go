package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the database row shape for a ledger entry. Seq is a
// bigserial assigned on insert; descending seq is the stored newest-first
// order of the owning account's history.
type Transaction struct {
	Seq              int64           `db:"seq"`
	TransactionID    string          `db:"transaction_id"`
	AccountID        string          `db:"account_id"`
	Type             string          `db:"type"`
	Amount           decimal.Decimal `db:"amount"`
	RecipientAccount sql.NullString  `db:"recipient_account"`
	Date             time.Time       `db:"date"`
	Status           string          `db:"status"`
	AuditFields
}
