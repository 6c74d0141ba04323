package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/swiftbank/bank_records_app/internal/apperrors"
	"github.com/swiftbank/bank_records_app/internal/core/domain"
	portssvc "github.com/swiftbank/bank_records_app/internal/core/ports/services"
	"github.com/swiftbank/bank_records_app/internal/core/services"
	"github.com/swiftbank/bank_records_app/internal/dto"
	"github.com/swiftbank/bank_records_app/internal/platform/config"
	"github.com/swiftbank/bank_records_app/internal/utils"
)

// --- Mock AdminRepository ---
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) SaveAdmin(ctx context.Context, admin domain.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *MockAdminRepository) FindAdminByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *MockAdminRepository) UpdatePasswordHash(ctx context.Context, email string, passwordHash string) error {
	args := m.Called(ctx, email, passwordHash)
	return args.Error(0)
}

// --- Test Suite ---
type AdminServiceTestSuite struct {
	suite.Suite
	mockAdminRepo *MockAdminRepository
	cfg           *config.Config
	service       portssvc.AdminSvcFacade
}

func (suite *AdminServiceTestSuite) SetupTest() {
	suite.mockAdminRepo = new(MockAdminRepository)
	suite.cfg = &config.Config{
		JWTSecret:         "test-signing-secret",
		JWTExpiryDuration: 2 * time.Hour,
		JWTIssuer:         "bank-records-app",
	}
	suite.service = services.NewAdminService(suite.mockAdminRepo, suite.cfg)
}

func (suite *AdminServiceTestSuite) storedAdmin(email, password string) *domain.Admin {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.Admin{AdminID: "admin-1", Email: email, PasswordHash: hash}
}

// --- Signup Tests ---

func (suite *AdminServiceTestSuite) TestSignup_Success() {
	ctx := context.Background()
	req := dto.AdminSignupRequest{Email: "ops@example.com", Password: "str0ng-password"}

	suite.mockAdminRepo.On("SaveAdmin", ctx, mock.MatchedBy(func(admin domain.Admin) bool {
		return admin.Email == req.Email &&
			admin.AdminID != "" &&
			admin.PasswordHash != req.Password &&
			utils.CheckPasswordHash(req.Password, admin.PasswordHash)
	})).Return(nil).Once()

	admin, err := suite.service.Signup(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(admin)
	suite.Equal(req.Email, admin.Email)
	suite.mockAdminRepo.AssertExpectations(suite.T())
}

func (suite *AdminServiceTestSuite) TestSignup_DuplicateEmail() {
	ctx := context.Background()
	req := dto.AdminSignupRequest{Email: "ops@example.com", Password: "str0ng-password"}

	suite.mockAdminRepo.On("SaveAdmin", ctx, mock.AnythingOfType("domain.Admin")).Return(apperrors.ErrDuplicate).Once()

	admin, err := suite.service.Signup(ctx, req)

	suite.Require().Error(err)
	suite.Nil(admin)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

// --- Login Tests ---

func (suite *AdminServiceTestSuite) TestLogin_IssuesValidToken() {
	ctx := context.Background()
	email := "ops@example.com"
	password := "str0ng-password"
	admin := suite.storedAdmin(email, password)

	suite.mockAdminRepo.On("FindAdminByEmail", ctx, email).Return(admin, nil).Once()

	token, err := suite.service.Login(ctx, dto.AdminLoginRequest{Email: email, Password: password})

	suite.Require().NoError(err)
	suite.Require().NotEmpty(token)

	claims, err := utils.ParseAndValidateAdminJWT(token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal(email, claims.Email)
	suite.Equal(admin.AdminID, claims.Subject)
	suite.Equal(suite.cfg.JWTIssuer, claims.Issuer)
	suite.WithinDuration(time.Now().Add(2*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func (suite *AdminServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	email := "ops@example.com"
	admin := suite.storedAdmin(email, "the-real-password")

	suite.mockAdminRepo.On("FindAdminByEmail", ctx, email).Return(admin, nil).Once()

	token, err := suite.service.Login(ctx, dto.AdminLoginRequest{Email: email, Password: "wrong"})

	suite.Require().Error(err)
	suite.Empty(token)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AdminServiceTestSuite) TestLogin_UnknownEmail() {
	ctx := context.Background()

	suite.mockAdminRepo.On("FindAdminByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	token, err := suite.service.Login(ctx, dto.AdminLoginRequest{Email: "nobody@example.com", Password: "anything"})

	suite.Require().Error(err)
	suite.Empty(token)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AdminServiceTestSuite) TestLogin_TokenRejectedWithWrongSecret() {
	ctx := context.Background()
	email := "ops@example.com"
	password := "str0ng-password"
	admin := suite.storedAdmin(email, password)

	suite.mockAdminRepo.On("FindAdminByEmail", ctx, email).Return(admin, nil).Once()

	token, err := suite.service.Login(ctx, dto.AdminLoginRequest{Email: email, Password: password})
	suite.Require().NoError(err)

	_, err = utils.ParseAndValidateAdminJWT(token, "some-other-secret")
	suite.Require().Error(err)
}

// --- ChangePassword Tests ---

func (suite *AdminServiceTestSuite) TestChangePassword_Success() {
	ctx := context.Background()
	email := "ops@example.com"
	oldPassword := "old-password-1"
	newPassword := "new-password-2"
	admin := suite.storedAdmin(email, oldPassword)

	suite.mockAdminRepo.On("FindAdminByEmail", ctx, email).Return(admin, nil).Once()
	suite.mockAdminRepo.On("UpdatePasswordHash", ctx, email, mock.MatchedBy(func(hash string) bool {
		return utils.CheckPasswordHash(newPassword, hash)
	})).Return(nil).Once()

	err := suite.service.ChangePassword(ctx, email, oldPassword, newPassword)

	suite.Require().NoError(err)
	suite.mockAdminRepo.AssertExpectations(suite.T())
}

func (suite *AdminServiceTestSuite) TestChangePassword_WrongOldPassword() {
	ctx := context.Background()
	email := "ops@example.com"
	admin := suite.storedAdmin(email, "the-real-password")

	suite.mockAdminRepo.On("FindAdminByEmail", ctx, email).Return(admin, nil).Once()

	err := suite.service.ChangePassword(ctx, email, "not-the-old-one", "new-password")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockAdminRepo.AssertNotCalled(suite.T(), "UpdatePasswordHash", mock.Anything, mock.Anything, mock.Anything)
}

// --- ChangePasswordByEmailOnly Tests ---

func (suite *AdminServiceTestSuite) TestChangePasswordByEmailOnly_NoOldPasswordCheck() {
	ctx := context.Background()
	email := "ops@example.com"
	newPassword := "recovered-password"

	suite.mockAdminRepo.On("UpdatePasswordHash", ctx, email, mock.MatchedBy(func(hash string) bool {
		return utils.CheckPasswordHash(newPassword, hash)
	})).Return(nil).Once()

	err := suite.service.ChangePasswordByEmailOnly(ctx, email, newPassword)

	suite.Require().NoError(err)
	suite.mockAdminRepo.AssertNotCalled(suite.T(), "FindAdminByEmail", mock.Anything, mock.Anything)
}

func (suite *AdminServiceTestSuite) TestChangePasswordByEmailOnly_UnknownEmail() {
	ctx := context.Background()

	suite.mockAdminRepo.On("UpdatePasswordHash", ctx, "nobody@example.com", mock.AnythingOfType("string")).Return(apperrors.ErrNotFound).Once()

	err := suite.service.ChangePasswordByEmailOnly(ctx, "nobody@example.com", "new-password")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- EmailExists Tests ---

func (suite *AdminServiceTestSuite) TestEmailExists_True() {
	ctx := context.Background()
	email := "ops@example.com"
	admin := suite.storedAdmin(email, "whatever-password")

	suite.mockAdminRepo.On("FindAdminByEmail", ctx, email).Return(admin, nil).Once()

	exists, err := suite.service.EmailExists(ctx, email)

	suite.Require().NoError(err)
	suite.True(exists)
}

func (suite *AdminServiceTestSuite) TestEmailExists_False() {
	ctx := context.Background()

	suite.mockAdminRepo.On("FindAdminByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	exists, err := suite.service.EmailExists(ctx, "nobody@example.com")

	suite.Require().NoError(err)
	suite.False(exists)
}

// --- Run Suite ---
func TestAdminService(t *testing.T) {
	suite.Run(t, new(AdminServiceTestSuite))
}
