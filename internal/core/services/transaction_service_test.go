package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/swiftbank/bank_records_app/internal/apperrors"
	"github.com/swiftbank/bank_records_app/internal/core/domain"
	portssvc "github.com/swiftbank/bank_records_app/internal/core/ports/services"
	"github.com/swiftbank/bank_records_app/internal/core/services"
	"github.com/swiftbank/bank_records_app/internal/dto"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockTransactionRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewTransactionService(suite.mockTxnRepo, suite.mockAccountRepo)
}

func (suite *TransactionServiceTestSuite) senderAccount(accountNumber string) *domain.Account {
	return &domain.Account{AccountID: uuid.NewString(), AccountNumber: &accountNumber}
}

// --- RecordTransaction Tests ---

func (suite *TransactionServiceTestSuite) TestRecordTransaction_DefaultsApplied() {
	ctx := context.Background()
	accountNumber := "1234567890"
	sender := suite.senderAccount(accountNumber)
	req := dto.RecordTransactionRequest{
		SenderAccount:    accountNumber,
		RecipientAccount: "9876543210",
		Amount:           decimal.NewFromInt(250),
		TransactionID:    "TXN-001",
	}
	before := time.Now().UTC()

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, accountNumber).Return(sender, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.AccountID == sender.AccountID &&
			txn.Status == domain.TransactionStatusPending &&
			txn.Type == domain.TransactionTypeTransfer &&
			!txn.Date.Before(before)
	})).Return(&domain.Transaction{Seq: 1, TransactionID: "TXN-001", Status: domain.TransactionStatusPending}, nil).Once()

	txn, err := suite.service.RecordTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.TransactionStatusPending, txn.Status)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_ExplicitStatusPreserved() {
	ctx := context.Background()
	accountNumber := "1234567890"
	sender := suite.senderAccount(accountNumber)
	req := dto.RecordTransactionRequest{
		SenderAccount: accountNumber,
		Amount:        decimal.NewFromInt(100),
		TransactionID: "TXN-002",
		Status:        "completed",
	}

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, accountNumber).Return(sender, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Status == domain.TransactionStatusCompleted
	})).Return(&domain.Transaction{Seq: 2, TransactionID: "TXN-002", Status: domain.TransactionStatusCompleted}, nil).Once()

	txn, err := suite.service.RecordTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.TransactionStatusCompleted, txn.Status)
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_UnknownStatusRejected() {
	ctx := context.Background()
	accountNumber := "1234567890"
	sender := suite.senderAccount(accountNumber)
	req := dto.RecordTransactionRequest{
		SenderAccount: accountNumber,
		Amount:        decimal.NewFromInt(100),
		TransactionID: "TXN-003",
		Status:        "reversed",
	}

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, accountNumber).Return(sender, nil).Once()

	txn, err := suite.service.RecordTransaction(ctx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_SenderNotFound() {
	ctx := context.Background()
	req := dto.RecordTransactionRequest{
		SenderAccount: "0000000000",
		Amount:        decimal.NewFromInt(100),
		TransactionID: "TXN-004",
	}

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, "0000000000").Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.RecordTransaction(ctx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

// --- Listing Tests ---

func (suite *TransactionServiceTestSuite) TestListTransactionsNewestFirst() {
	ctx := context.Background()
	accountNumber := "1234567890"
	sender := suite.senderAccount(accountNumber)
	history := []domain.Transaction{
		{Seq: 2, TransactionID: "t2"},
		{Seq: 1, TransactionID: "t1"},
	}

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, accountNumber).Return(sender, nil).Once()
	suite.mockTxnRepo.On("FindByAccountID", ctx, sender.AccountID, true).Return(history, nil).Once()

	list, err := suite.service.ListTransactionsNewestFirst(ctx, accountNumber)

	suite.Require().NoError(err)
	suite.Require().Len(list, 2)
	suite.Equal("t2", list[0].TransactionID)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactionsOldestFirst() {
	ctx := context.Background()
	accountNumber := "1234567890"
	sender := suite.senderAccount(accountNumber)
	history := []domain.Transaction{
		{Seq: 1, TransactionID: "t1"},
		{Seq: 2, TransactionID: "t2"},
	}

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, accountNumber).Return(sender, nil).Once()
	suite.mockTxnRepo.On("FindByAccountID", ctx, sender.AccountID, false).Return(history, nil).Once()

	list, err := suite.service.ListTransactionsOldestFirst(ctx, accountNumber)

	suite.Require().NoError(err)
	suite.Require().Len(list, 2)
	suite.Equal("t1", list[0].TransactionID)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_AccountNotFound() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, "0000000000").Return(nil, apperrors.ErrNotFound).Once()

	list, err := suite.service.ListTransactionsNewestFirst(ctx, "0000000000")

	suite.Require().Error(err)
	suite.Nil(list)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- GetByTransactionID Tests ---

func (suite *TransactionServiceTestSuite) TestGetByTransactionID_EarliestMatch() {
	ctx := context.Background()
	transactionID := "TXN-005"
	earliest := &domain.Transaction{Seq: 1, TransactionID: transactionID}

	suite.mockTxnRepo.On("FindByTransactionID", ctx, transactionID).Return(earliest, nil).Once()

	txn, err := suite.service.GetByTransactionID(ctx, transactionID)

	suite.Require().NoError(err)
	suite.Equal(int64(1), txn.Seq)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestGetByTransactionID_NotFound() {
	ctx := context.Background()

	suite.mockTxnRepo.On("FindByTransactionID", ctx, "TXN-006").Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.GetByTransactionID(ctx, "TXN-006")

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- UpdateStatus Tests ---

func (suite *TransactionServiceTestSuite) TestUpdateStatus_Global() {
	ctx := context.Background()
	transactionID := "TXN-010"
	updated := &domain.Transaction{Seq: 1, TransactionID: transactionID, Status: domain.TransactionStatusCompleted}

	suite.mockTxnRepo.On("UpdateStatus", ctx, "", transactionID, domain.TransactionStatusCompleted).Return(updated, nil).Once()

	txn, err := suite.service.UpdateStatus(ctx, transactionID, "completed")

	suite.Require().NoError(err)
	suite.Equal(domain.TransactionStatusCompleted, txn.Status)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateStatus_UnknownStatusRejected() {
	ctx := context.Background()

	txn, err := suite.service.UpdateStatus(ctx, "TXN-010", "settled")

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestUpdateStatus_Idempotent() {
	ctx := context.Background()
	transactionID := "TXN-011"
	completed := &domain.Transaction{Seq: 5, TransactionID: transactionID, Status: domain.TransactionStatusCompleted}

	suite.mockTxnRepo.On("UpdateStatus", ctx, "", transactionID, domain.TransactionStatusCompleted).Return(completed, nil).Twice()

	first, err := suite.service.UpdateStatus(ctx, transactionID, "completed")
	suite.Require().NoError(err)
	second, err := suite.service.UpdateStatus(ctx, transactionID, "completed")
	suite.Require().NoError(err)

	suite.Equal(first, second)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateStatusForAccount_ScopedToAccount() {
	ctx := context.Background()
	accountNumber := "1234567890"
	sender := suite.senderAccount(accountNumber)
	transactionID := "TXN-012"
	updated := &domain.Transaction{Seq: 7, TransactionID: transactionID, Status: domain.TransactionStatusFailed}

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, accountNumber).Return(sender, nil).Once()
	suite.mockTxnRepo.On("UpdateStatus", ctx, sender.AccountID, transactionID, domain.TransactionStatusFailed).Return(updated, nil).Once()

	txn, err := suite.service.UpdateStatusForAccount(ctx, accountNumber, transactionID, "failed")

	suite.Require().NoError(err)
	suite.Equal(domain.TransactionStatusFailed, txn.Status)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateStatusForAccount_UnknownStatusRejectedBeforeLookup() {
	ctx := context.Background()

	txn, err := suite.service.UpdateStatusForAccount(ctx, "1234567890", "TXN-013", "bogus")

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountByNumber", mock.Anything, mock.Anything)
}

// --- DeleteTransaction Tests ---

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_Success() {
	ctx := context.Background()
	transactionID := "TXN-020"

	suite.mockTxnRepo.On("DeleteByTransactionID", ctx, transactionID).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, transactionID)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_NotFound() {
	ctx := context.Background()
	transactionID := "TXN-021"

	suite.mockTxnRepo.On("DeleteByTransactionID", ctx, transactionID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTransaction(ctx, transactionID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Run Suite ---
func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
