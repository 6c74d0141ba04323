package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/swiftbank/bank_records_app/internal/apperrors"
	"github.com/swiftbank/bank_records_app/internal/core/domain"
	portsrepo "github.com/swiftbank/bank_records_app/internal/core/ports/repositories"
	"github.com/swiftbank/bank_records_app/internal/models"
	"github.com/swiftbank/bank_records_app/internal/utils/mapping"
)

const accountColumns = `account_id, account_number, title, first_name, middle_name, last_name,
	occupation, phone_number, ssn, dob, marital_status, email_address,
	state_of_origin, state_of_residence, house_address, next_of_kin,
	account_balance, password_hash, transaction_pin_hash, created_at, last_updated_at`

type PgxAccountRepository struct {
	BaseRepository
}

// NewAccountRepository creates a new repository for account data.
func NewAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.AccountNumber,
		&m.Title,
		&m.FirstName,
		&m.MiddleName,
		&m.LastName,
		&m.Occupation,
		&m.PhoneNumber,
		&m.SSN,
		&m.DOB,
		&m.MaritalStatus,
		&m.EmailAddress,
		&m.StateOfOrigin,
		&m.StateOfResidence,
		&m.HouseAddress,
		&m.NextOfKin,
		&m.AccountBalance,
		&m.PasswordHash,
		&m.TransactionPinHash,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainAccount(m)
	return &d, nil
}

// isUniqueViolation reports whether err is a unique constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (account_id, account_balance, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query, m.AccountID, m.AccountBalance, m.CreatedAt, m.LastUpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save account %s: %w", account.AccountID, err)
	}
	return nil
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`
	account, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}
	return account, nil
}

func (r *PgxAccountRepository) FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_number = $1;`
	account, err := scanAccount(r.Pool.QueryRow(ctx, query, accountNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by number %s: %w", accountNumber, err)
	}
	return account, nil
}

func (r *PgxAccountRepository) FindAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY created_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, *account)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", rows.Err())
	}
	return accounts, nil
}

// updateAccountByKey applies the partial update keyed by an arbitrary column.
// COALESCE keeps every omitted field at its stored value, so the update never
// clobbers fields the caller did not supply.
func (r *PgxAccountRepository) updateAccountByKey(ctx context.Context, keyColumn, keyValue string, upd domain.AccountUpdate) (*domain.Account, error) {
	query := `
		UPDATE accounts SET
			account_number     = COALESCE($1, account_number),
			title              = COALESCE($2, title),
			first_name         = COALESCE($3, first_name),
			middle_name        = COALESCE($4, middle_name),
			last_name          = COALESCE($5, last_name),
			occupation         = COALESCE($6, occupation),
			phone_number       = COALESCE($7, phone_number),
			ssn                = COALESCE($8, ssn),
			dob                = COALESCE($9, dob),
			marital_status     = COALESCE($10, marital_status),
			email_address      = COALESCE($11, email_address),
			state_of_origin    = COALESCE($12, state_of_origin),
			state_of_residence = COALESCE($13, state_of_residence),
			house_address      = COALESCE($14, house_address),
			next_of_kin        = COALESCE($15, next_of_kin),
			last_updated_at    = $16
		WHERE ` + keyColumn + ` = $17
		RETURNING ` + accountColumns + `;`

	account, err := scanAccount(r.Pool.QueryRow(ctx, query,
		upd.AccountNumber,
		upd.Title,
		upd.FirstName,
		upd.MiddleName,
		upd.LastName,
		upd.Occupation,
		upd.PhoneNumber,
		upd.SSN,
		upd.DOB,
		upd.MaritalStatus,
		upd.EmailAddress,
		upd.StateOfOrigin,
		upd.StateOfResidence,
		upd.HouseAddress,
		upd.NextOfKin,
		time.Now().UTC(),
		keyValue,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("account number already in use: %w", apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to update account by %s %s: %w", keyColumn, keyValue, err)
	}
	return account, nil
}

func (r *PgxAccountRepository) UpdateAccountByID(ctx context.Context, accountID string, upd domain.AccountUpdate) (*domain.Account, error) {
	return r.updateAccountByKey(ctx, "account_id", accountID, upd)
}

func (r *PgxAccountRepository) UpdateAccountByNumber(ctx context.Context, accountNumber string, upd domain.AccountUpdate) (*domain.Account, error) {
	return r.updateAccountByKey(ctx, "account_number", accountNumber, upd)
}

// AdjustBalance adds delta to the stored balance in a single statement, so
// concurrent deltas serialize at the store instead of racing read-then-write.
func (r *PgxAccountRepository) AdjustBalance(ctx context.Context, accountNumber string, delta decimal.Decimal) (*domain.Account, error) {
	query := `
		UPDATE accounts
		SET account_balance = account_balance + $1, last_updated_at = $2
		WHERE account_number = $3
		RETURNING ` + accountColumns + `;`

	account, err := scanAccount(r.Pool.QueryRow(ctx, query, delta, time.Now().UTC(), accountNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to adjust balance for account %s: %w", accountNumber, err)
	}
	return account, nil
}

func (r *PgxAccountRepository) SetPasswordHash(ctx context.Context, accountNumber string, passwordHash string) error {
	query := `
		UPDATE accounts
		SET password_hash = $1, last_updated_at = $2
		WHERE account_number = $3;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, passwordHash, time.Now().UTC(), accountNumber)
	if err != nil {
		return fmt.Errorf("failed to set password for account %s: %w", accountNumber, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SetTransactionPinHash stores the PIN hash only when none is set. The
// IS NULL guard makes set-once hold even when two first-time setters race.
func (r *PgxAccountRepository) SetTransactionPinHash(ctx context.Context, accountNumber string, pinHash string) error {
	query := `
		UPDATE accounts
		SET transaction_pin_hash = $1, last_updated_at = $2
		WHERE account_number = $3 AND transaction_pin_hash IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, pinHash, time.Now().UTC(), accountNumber)
	if err != nil {
		return fmt.Errorf("failed to set transaction pin for account %s: %w", accountNumber, err)
	}
	if cmdTag.RowsAffected() == 1 {
		return nil
	}

	// Zero rows: either the account is missing or a PIN already exists.
	var exists bool
	if err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE account_number = $1)`, accountNumber).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check account %s: %w", accountNumber, err)
	}
	if !exists {
		return apperrors.ErrNotFound
	}
	return apperrors.ErrDuplicate
}

func (r *PgxAccountRepository) DeleteAccountByID(ctx context.Context, accountID string) error {
	// Ledger rows are removed by the FK cascade, matching the embedded
	// ownership of the history.
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM accounts WHERE account_id = $1;`, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete account %s: %w", accountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
