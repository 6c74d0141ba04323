package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/swiftbank/bank_records_app/internal/apperrors"
	"github.com/swiftbank/bank_records_app/internal/core/domain"
	portssvc "github.com/swiftbank/bank_records_app/internal/core/ports/services"
	"github.com/swiftbank/bank_records_app/internal/core/services"
	"github.com/swiftbank/bank_records_app/internal/dto"
	"github.com/swiftbank/bank_records_app/internal/utils"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccountByID(ctx context.Context, accountID string, upd domain.AccountUpdate) (*domain.Account, error) {
	args := m.Called(ctx, accountID, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccountByNumber(ctx context.Context, accountNumber string, upd domain.AccountUpdate) (*domain.Account, error) {
	args := m.Called(ctx, accountNumber, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) AdjustBalance(ctx context.Context, accountNumber string, delta decimal.Decimal) (*domain.Account, error) {
	args := m.Called(ctx, accountNumber, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SetPasswordHash(ctx context.Context, accountNumber string, passwordHash string) error {
	args := m.Called(ctx, accountNumber, passwordHash)
	return args.Error(0)
}

func (m *MockAccountRepository) SetTransactionPinHash(ctx context.Context, accountNumber string, pinHash string) error {
	args := m.Called(ctx, accountNumber, pinHash)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccountByID(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindByAccountID(ctx context.Context, accountID string, newestFirst bool) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID, newestFirst)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindByTransactionID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateStatus(ctx context.Context, accountID string, transactionID string, status domain.TransactionStatus) (*domain.Transaction, error) {
	args := m.Called(ctx, accountID, transactionID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) DeleteByTransactionID(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Test Suite ---
type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockTxnRepo     *MockTransactionRepository
	service         portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo, suite.mockTxnRepo)
}

// --- CreateAccount Tests ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(account domain.Account) bool {
		return account.AccountID != "" &&
			account.AccountNumber == nil &&
			account.AccountBalance.IsZero() &&
			account.PasswordHash == "" &&
			account.TransactionPinHash == ""
	})).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.NotEmpty(account.AccountID)
	suite.True(account.AccountBalance.IsZero())
	suite.False(account.HasTransactionPin())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_SaveError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(expectedErr).Once()

	account, err := suite.service.CreateAccount(ctx)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, expectedErr)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

// --- GetAccountWithHistory Tests ---

func (suite *AccountServiceTestSuite) TestGetAccountWithHistory_NewestFirst() {
	ctx := context.Background()
	accountNumber := "1234567890"
	accountID := uuid.NewString()
	account := &domain.Account{AccountID: accountID, AccountNumber: &accountNumber}
	history := []domain.Transaction{
		{Seq: 3, TransactionID: "t3"},
		{Seq: 2, TransactionID: "t2"},
		{Seq: 1, TransactionID: "t1"},
	}

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, accountNumber).Return(account, nil).Once()
	suite.mockTxnRepo.On("FindByAccountID", ctx, accountID, true).Return(history, nil).Once()

	got, gotHistory, err := suite.service.GetAccountWithHistory(ctx, accountNumber)

	suite.Require().NoError(err)
	suite.Equal(account, got)
	suite.Require().Len(gotHistory, 3)
	suite.Equal("t3", gotHistory[0].TransactionID)
	suite.Equal("t1", gotHistory[2].TransactionID)
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountWithHistory_AccountNotFound() {
	ctx := context.Background()
	accountNumber := "0000000000"

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, accountNumber).Return(nil, apperrors.ErrNotFound).Once()

	account, history, err := suite.service.GetAccountWithHistory(ctx, accountNumber)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.Nil(history)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "FindByAccountID", mock.Anything, mock.Anything, mock.Anything)
}

// --- UpdateAccountByID Tests ---

func (suite *AccountServiceTestSuite) TestUpdateAccountByID_PartialMerge() {
	ctx := context.Background()
	accountID := uuid.NewString()
	firstName := "Ada"
	req := dto.UpdateAccountRequest{FirstName: &firstName}
	updated := &domain.Account{AccountID: accountID, FirstName: firstName, LastName: "Lovelace"}

	suite.mockAccountRepo.On("UpdateAccountByID", ctx, accountID, mock.MatchedBy(func(upd domain.AccountUpdate) bool {
		return upd.FirstName != nil && *upd.FirstName == firstName && upd.LastName == nil
	})).Return(updated, nil).Once()

	account, err := suite.service.UpdateAccountByID(ctx, accountID, req)

	suite.Require().NoError(err)
	suite.Equal(firstName, account.FirstName)
	suite.Equal("Lovelace", account.LastName)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccountByID_NotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()
	firstName := "Ada"
	req := dto.UpdateAccountRequest{FirstName: &firstName}

	suite.mockAccountRepo.On("UpdateAccountByID", ctx, accountID, mock.AnythingOfType("domain.AccountUpdate")).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.UpdateAccountByID(ctx, accountID, req)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- VerifyPassword Tests ---

func (suite *AccountServiceTestSuite) TestVerifyPassword_Match() {
	ctx := context.Background()
	accountNumber := "1234567890"
	password := "hunter2-but-longer"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	account := &domain.Account{AccountID: uuid.NewString(), PasswordHash: hash}

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, accountNumber).Return(account, nil).Once()

	match, err := suite.service.VerifyPassword(ctx, accountNumber, password)

	suite.Require().NoError(err)
	suite.True(match)
}

func (suite *AccountServiceTestSuite) TestVerifyPassword_Mismatch() {
	ctx := context.Background()
	accountNumber := "1234567890"
	hash, err := utils.HashPassword("the-real-password")
	suite.Require().NoError(err)
	account := &domain.Account{AccountID: uuid.NewString(), PasswordHash: hash}

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, accountNumber).Return(account, nil).Once()

	match, err := suite.service.VerifyPassword(ctx, accountNumber, "wrong-password")

	suite.Require().NoError(err)
	suite.False(match)
}

func (suite *AccountServiceTestSuite) TestVerifyPassword_NoPasswordSet() {
	ctx := context.Background()
	accountNumber := "1234567890"
	account := &domain.Account{AccountID: uuid.NewString()}

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, accountNumber).Return(account, nil).Once()

	match, err := suite.service.VerifyPassword(ctx, accountNumber, "anything")

	suite.Require().NoError(err)
	suite.False(match)
}

func (suite *AccountServiceTestSuite) TestVerifyPassword_AccountNotFound() {
	ctx := context.Background()
	accountNumber := "0000000000"

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, accountNumber).Return(nil, apperrors.ErrNotFound).Once()

	match, err := suite.service.VerifyPassword(ctx, accountNumber, "anything")

	suite.Require().Error(err)
	suite.False(match)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- ResetPassword Tests ---

func (suite *AccountServiceTestSuite) TestResetPassword_StoresHash() {
	ctx := context.Background()
	accountNumber := "1234567890"
	newPassword := "new-password-123"

	suite.mockAccountRepo.On("SetPasswordHash", ctx, accountNumber, mock.MatchedBy(func(hash string) bool {
		return hash != newPassword && utils.CheckPasswordHash(newPassword, hash)
	})).Return(nil).Once()

	err := suite.service.ResetPassword(ctx, accountNumber, newPassword)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestResetPassword_AccountNotFound() {
	ctx := context.Background()
	accountNumber := "0000000000"

	suite.mockAccountRepo.On("SetPasswordHash", ctx, accountNumber, mock.AnythingOfType("string")).Return(apperrors.ErrNotFound).Once()

	err := suite.service.ResetPassword(ctx, accountNumber, "new-password")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- SetOrVerifyPin Tests ---

func (suite *AccountServiceTestSuite) TestSetOrVerifyPin_FirstCallSets() {
	ctx := context.Background()
	accountNumber := "1234567890"
	pin := "4321"
	account := &domain.Account{AccountID: uuid.NewString()}

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, accountNumber).Return(account, nil).Once()
	suite.mockAccountRepo.On("SetTransactionPinHash", ctx, accountNumber, mock.MatchedBy(func(hash string) bool {
		return hash != pin && utils.CheckPasswordHash(pin, hash)
	})).Return(nil).Once()

	result, err := suite.service.SetOrVerifyPin(ctx, accountNumber, pin)

	suite.Require().NoError(err)
	suite.Equal(portssvc.PinModeSet, result.Mode)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestSetOrVerifyPin_SecondCallVerifies() {
	ctx := context.Background()
	accountNumber := "1234567890"
	pin := "4321"
	hash, err := utils.HashPassword(pin)
	suite.Require().NoError(err)
	account := &domain.Account{AccountID: uuid.NewString(), TransactionPinHash: hash}

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, accountNumber).Return(account, nil).Once()

	result, serr := suite.service.SetOrVerifyPin(ctx, accountNumber, pin)

	suite.Require().NoError(serr)
	suite.Equal(portssvc.PinModeVerify, result.Mode)
	suite.True(result.Match)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SetTransactionPinHash", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestSetOrVerifyPin_WrongPin() {
	ctx := context.Background()
	accountNumber := "1234567890"
	hash, err := utils.HashPassword("4321")
	suite.Require().NoError(err)
	account := &domain.Account{AccountID: uuid.NewString(), TransactionPinHash: hash}

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, accountNumber).Return(account, nil).Once()

	result, serr := suite.service.SetOrVerifyPin(ctx, accountNumber, "9999")

	suite.Require().NoError(serr)
	suite.Equal(portssvc.PinModeVerify, result.Mode)
	suite.False(result.Match)
}

func (suite *AccountServiceTestSuite) TestSetOrVerifyPin_LostSetRaceVerifiesWinner() {
	ctx := context.Background()
	accountNumber := "1234567890"
	pin := "4321"
	winnerHash, err := utils.HashPassword(pin)
	suite.Require().NoError(err)
	bare := &domain.Account{AccountID: uuid.NewString()}
	withPin := &domain.Account{AccountID: bare.AccountID, TransactionPinHash: winnerHash}

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, accountNumber).Return(bare, nil).Once()
	suite.mockAccountRepo.On("SetTransactionPinHash", ctx, accountNumber, mock.AnythingOfType("string")).Return(apperrors.ErrDuplicate).Once()
	suite.mockAccountRepo.On("FindAccountByNumber", ctx, accountNumber).Return(withPin, nil).Once()

	result, serr := suite.service.SetOrVerifyPin(ctx, accountNumber, pin)

	suite.Require().NoError(serr)
	suite.Equal(portssvc.PinModeVerify, result.Mode)
	suite.True(result.Match)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

// --- ApplyBalanceDelta Tests ---

func (suite *AccountServiceTestSuite) TestApplyBalanceDelta_NegativeBalanceAllowed() {
	ctx := context.Background()
	accountNumber := "1234567890"
	delta := decimal.NewFromInt(-50)
	updated := &domain.Account{AccountID: uuid.NewString(), AccountBalance: decimal.NewFromInt(-50)}

	suite.mockAccountRepo.On("AdjustBalance", ctx, accountNumber, delta).Return(updated, nil).Once()

	account, err := suite.service.ApplyBalanceDelta(ctx, accountNumber, delta)

	suite.Require().NoError(err)
	suite.True(account.AccountBalance.Equal(decimal.NewFromInt(-50)))
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestApplyBalanceDelta_NotFound() {
	ctx := context.Background()
	accountNumber := "0000000000"
	delta := decimal.NewFromInt(-10)

	suite.mockAccountRepo.On("AdjustBalance", ctx, accountNumber, delta).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.ApplyBalanceDelta(ctx, accountNumber, delta)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- DeleteAccountByID Tests ---

func (suite *AccountServiceTestSuite) TestDeleteAccountByID_Success() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("DeleteAccountByID", ctx, accountID).Return(nil).Once()

	err := suite.service.DeleteAccountByID(ctx, accountID)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccountByID_NotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("DeleteAccountByID", ctx, accountID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteAccountByID(ctx, accountID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Run Suite ---
func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
