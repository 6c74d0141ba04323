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

type PgxAdminRepository struct {
	BaseRepository
}

// NewAdminRepository creates a new repository for the admin directory.
func NewAdminRepository(pool *pgxpool.Pool) portsrepo.AdminRepository {
	return &PgxAdminRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AdminRepository = (*PgxAdminRepository)(nil)

func (r *PgxAdminRepository) SaveAdmin(ctx context.Context, admin domain.Admin) error {
	m := mapping.ToModelAdmin(admin)
	query := `
		INSERT INTO admins (admin_id, email, password_hash, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query, m.AdminID, m.Email, m.PasswordHash, m.CreatedAt, m.LastUpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("admin email %s already registered: %w", admin.Email, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save admin %s: %w", admin.AdminID, err)
	}
	return nil
}

func (r *PgxAdminRepository) FindAdminByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	query := `
		SELECT admin_id, email, password_hash, created_at, last_updated_at
		FROM admins
		WHERE email = $1;
	`
	var m models.Admin
	err := r.Pool.QueryRow(ctx, query, email).Scan(
		&m.AdminID,
		&m.Email,
		&m.PasswordHash,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find admin by email %s: %w", email, err)
	}
	admin := mapping.ToDomainAdmin(m)
	return &admin, nil
}

func (r *PgxAdminRepository) UpdatePasswordHash(ctx context.Context, email string, passwordHash string) error {
	query := `
		UPDATE admins
		SET password_hash = $1, last_updated_at = $2
		WHERE email = $3;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, passwordHash, time.Now().UTC(), email)
	if err != nil {
		return fmt.Errorf("failed to update password for admin %s: %w", email, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
