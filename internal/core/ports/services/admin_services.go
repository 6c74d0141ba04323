package services

import (
	"context"

	"github.com/swiftbank/bank_records_app/internal/core/domain"
	"github.com/swiftbank/bank_records_app/internal/dto"
)

// AdminSvcFacade is the admin directory surface.
type AdminSvcFacade interface {
	// Signup registers a new admin; duplicate emails are a conflict.
	Signup(ctx context.Context, req dto.AdminSignupRequest) (*domain.Admin, error)

	// Login verifies credentials and issues a signed, time-limited token
	// carrying the admin id and email.
	Login(ctx context.Context, req dto.AdminLoginRequest) (string, error)

	// ChangePassword rotates the password after verifying the old one.
	ChangePassword(ctx context.Context, email, oldPassword, newPassword string) error

	// ChangePasswordByEmailOnly replaces the password with no old-password
	// check. Its route must sit behind the recovery-key gate.
	ChangePasswordByEmailOnly(ctx context.Context, email, newPassword string) error

	// EmailExists reports whether the email is registered.
	EmailExists(ctx context.Context, email string) (bool, error)
}
