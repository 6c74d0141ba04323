package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/swiftbank/bank_records_app/internal/apperrors"
	"github.com/swiftbank/bank_records_app/internal/core/domain"
	portsrepo "github.com/swiftbank/bank_records_app/internal/core/ports/repositories"
	portssvc "github.com/swiftbank/bank_records_app/internal/core/ports/services"
	"github.com/swiftbank/bank_records_app/internal/dto"
	"github.com/swiftbank/bank_records_app/internal/platform/config"
	"github.com/swiftbank/bank_records_app/internal/utils"
)

// AdminService implements the admin directory: signup, login and password
// management, with the JWT signing material sourced from configuration.
type AdminService struct {
	adminRepo portsrepo.AdminRepository
	cfg       *config.Config
}

// NewAdminService creates the admin service.
func NewAdminService(adminRepo portsrepo.AdminRepository, cfg *config.Config) *AdminService {
	return &AdminService{adminRepo: adminRepo, cfg: cfg}
}

var _ portssvc.AdminSvcFacade = (*AdminService)(nil)

func (s *AdminService) Signup(ctx context.Context, req dto.AdminSignupRequest) (*domain.Admin, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	admin := domain.Admin{
		AdminID:      uuid.NewString(),
		Email:        req.Email,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	// The unique index on email is the authority on duplicates; the repo
	// surfaces it as ErrDuplicate.
	if err := s.adminRepo.SaveAdmin(ctx, admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

// Login verifies credentials and issues a signed token carrying the admin id
// as subject and the email claim, expiring after the configured duration.
func (s *AdminService) Login(ctx context.Context, req dto.AdminLoginRequest) (string, error) {
	admin, err := s.adminRepo.FindAdminByEmail(ctx, req.Email)
	if err != nil {
		return "", err
	}
	if !utils.CheckPasswordHash(req.Password, admin.PasswordHash) {
		return "", fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
	}
	token, err := utils.GenerateAdminJWT(admin.AdminID, admin.Email, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

func (s *AdminService) ChangePassword(ctx context.Context, email, oldPassword, newPassword string) error {
	admin, err := s.adminRepo.FindAdminByEmail(ctx, email)
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(oldPassword, admin.PasswordHash) {
		return fmt.Errorf("old password is incorrect: %w", apperrors.ErrUnauthorized)
	}
	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.adminRepo.UpdatePasswordHash(ctx, email, hash)
}

// ChangePasswordByEmailOnly replaces the password with no old-password
// check. The route carrying it must sit behind the recovery-key gate.
func (s *AdminService) ChangePasswordByEmailOnly(ctx context.Context, email, newPassword string) error {
	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.adminRepo.UpdatePasswordHash(ctx, email, hash)
}

func (s *AdminService) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := s.adminRepo.FindAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
