package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/swiftbank/bank_records_app/internal/apperrors"
	"github.com/swiftbank/bank_records_app/internal/core/domain"
	portsrepo "github.com/swiftbank/bank_records_app/internal/core/ports/repositories"
	"github.com/swiftbank/bank_records_app/internal/models"
	"github.com/swiftbank/bank_records_app/internal/utils/mapping"
)

const transactionColumns = `seq, transaction_id, account_id, type, amount,
	recipient_account, date, status, created_at, last_updated_at`

type PgxTransactionRepository struct {
	BaseRepository
}

// NewTransactionRepository creates a new repository for ledger entries.
func NewTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.Seq,
		&m.TransactionID,
		&m.AccountID,
		&m.Type,
		&m.Amount,
		&m.RecipientAccount,
		&m.Date,
		&m.Status,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (transaction_id, account_id, type, amount, recipient_account, date, status, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING seq;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.TransactionID,
		m.AccountID,
		m.Type,
		m.Amount,
		m.RecipientAccount,
		m.Date,
		m.Status,
		m.CreatedAt,
		m.LastUpdatedAt,
	).Scan(&txn.Seq)
	if err != nil {
		return nil, fmt.Errorf("failed to save transaction %s: %w", txn.TransactionID, err)
	}
	return &txn, nil
}

func (r *PgxTransactionRepository) FindByAccountID(ctx context.Context, accountID string, newestFirst bool) ([]domain.Transaction, error) {
	order := "ASC"
	if newestFirst {
		order = "DESC"
	}
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE account_id = $1 ORDER BY seq ` + order + `;`

	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for account %s: %w", accountID, err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, *txn)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}
	return txns, nil
}

// FindByTransactionID resolves a transaction id to its entry across every
// account. Ids are unique by convention only; ties go to the earliest
// recorded row.
func (r *PgxTransactionRepository) FindByTransactionID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1 ORDER BY seq ASC LIMIT 1;`
	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

func (r *PgxTransactionRepository) UpdateStatus(ctx context.Context, accountID string, transactionID string, status domain.TransactionStatus) (*domain.Transaction, error) {
	// The subquery pins the update to a single row even when the id
	// collides across accounts.
	query := `
		UPDATE transactions
		SET status = $1, last_updated_at = $2
		WHERE seq = (
			SELECT seq FROM transactions
			WHERE transaction_id = $3 AND ($4 = '' OR account_id = $4)
			ORDER BY seq ASC LIMIT 1
		)
		RETURNING ` + transactionColumns + `;`

	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query, string(status), time.Now().UTC(), transactionID, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update status of transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

// DeleteByTransactionID removes exactly one entry, the earliest match.
func (r *PgxTransactionRepository) DeleteByTransactionID(ctx context.Context, transactionID string) error {
	query := `
		DELETE FROM transactions
		WHERE seq = (
			SELECT seq FROM transactions
			WHERE transaction_id = $1
			ORDER BY seq ASC LIMIT 1
		);
	`
	cmdTag, err := r.Pool.Exec(ctx, query, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
