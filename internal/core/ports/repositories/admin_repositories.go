package repositories

import (
	"context"

	"github.com/swiftbank/bank_records_app/internal/core/domain"
)

// AdminRepository defines persistence operations for the admin directory.
type AdminRepository interface {
	// SaveAdmin inserts a new admin. Returns apperrors.ErrDuplicate if the
	// email is already registered.
	SaveAdmin(ctx context.Context, admin domain.Admin) error

	// FindAdminByEmail returns the admin record, or apperrors.ErrNotFound.
	FindAdminByEmail(ctx context.Context, email string) (*domain.Admin, error)

	// UpdatePasswordHash overwrites the stored password hash.
	UpdatePasswordHash(ctx context.Context, email string, passwordHash string) error
}
