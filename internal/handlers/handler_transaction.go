package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/swiftbank/bank_records_app/internal/core/ports/services"
	"github.com/swiftbank/bank_records_app/internal/dto"
	"github.com/swiftbank/bank_records_app/internal/middleware"
)

// transactionHandler handles ledger routes on both the user and admin surfaces.
type transactionHandler struct {
	txnService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{txnService: ts}
}

// recordTransaction godoc
// @Summary Record a transaction
// @Description Appends a ledger entry to the sender's history; status defaults to pending, date to now. One-sided: the recipient is neither validated nor credited
// @Tags transactions
// @Accept json
// @Produce json
// @Param body body dto.RecordTransactionRequest true "Transaction to record"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Sender not found"
// @Router /users/transactions [post]
func (h *transactionHandler) recordTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.txnService.RecordTransaction(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Sender not found", "Transaction could not be recorded.")
		return
	}

	logger.Info("Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("sender_account", req.SenderAccount),
	)
	c.JSON(http.StatusOK, gin.H{
		"message":     "Transaction recorded successfully.",
		"transaction": dto.ToTransactionResponse(txn),
	})
}

// getTransactionHistory godoc
// @Summary List an account's transactions
// @Description Returns the history newest-first; pass order=oldest-first for the reversed contract
// @Tags transactions
// @Produce json
// @Param accountNumber path string true "Account number"
// @Param order query string false "oldest-first or newest-first (default)"
// @Success 200 {array} dto.TransactionResponse
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/transactions/{accountNumber} [get]
func (h *transactionHandler) getTransactionHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountNumber := c.Param("accountNumber")

	if c.Query("order") == "oldest-first" {
		list, lerr := h.txnService.ListTransactionsOldestFirst(c.Request.Context(), accountNumber)
		if lerr != nil {
			respondServiceError(c, logger, lerr, "User not found", "Unable to fetch transaction history")
			return
		}
		c.JSON(http.StatusOK, dto.ToTransactionResponses(list))
		return
	}

	list, err := h.txnService.ListTransactionsNewestFirst(c.Request.Context(), accountNumber)
	if err != nil {
		respondServiceError(c, logger, err, "User not found", "Unable to fetch transaction history")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponses(list))
}

// updateStatusForAccount godoc
// @Summary Update a transaction's status within one account
// @Description Sets the status of the entry identified by account number and transaction id; unknown statuses are rejected
// @Tags transactions
// @Accept json
// @Produce json
// @Param accountNumber path string true "Account number"
// @Param transactionId path string true "Transaction ID"
// @Param body body dto.UpdateTransactionStatusRequest true "New status"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Invalid or missing status"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Router /users/transactions/{accountNumber}/{transactionId} [put]
func (h *transactionHandler) updateStatusForAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountNumber := c.Param("accountNumber")
	transactionID := c.Param("transactionId")

	var req dto.UpdateTransactionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing status"})
		return
	}

	txn, err := h.txnService.UpdateStatusForAccount(c.Request.Context(), accountNumber, transactionID, req.Status)
	if err != nil {
		respondServiceError(c, logger, err, "Transaction not found", "Failed to update transaction status")
		return
	}

	logger.Info("Transaction status updated", slog.String("transaction_id", transactionID), slog.String("status", req.Status))
	c.JSON(http.StatusOK, gin.H{
		"message":     "Transaction status updated",
		"transaction": dto.ToTransactionResponse(txn),
	})
}

// getUserTransactions godoc
// @Summary List a user's transactions (admin)
// @Description Returns the account's history newest-first
// @Tags admin
// @Produce json
// @Param accountNumber path string true "Account number"
// @Success 200 {object} dto.TransactionHistoryResponse
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /admin/user/{accountNumber}/transactions [get]
func (h *transactionHandler) getUserTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountNumber := c.Param("accountNumber")

	list, err := h.txnService.ListTransactionsNewestFirst(c.Request.Context(), accountNumber)
	if err != nil {
		respondServiceError(c, logger, err, "User not found", "Failed to fetch transactions")
		return
	}

	history := dto.ToTransactionResponses(list)
	if history == nil {
		history = []dto.TransactionResponse{}
	}
	c.JSON(http.StatusOK, dto.TransactionHistoryResponse{TransactionHistory: history})
}

// updateStatus godoc
// @Summary Update a transaction's status (admin)
// @Description Locates the entry globally by transaction id and sets its status; unknown statuses are rejected
// @Tags admin
// @Accept json
// @Produce json
// @Param transactionId path string true "Transaction ID"
// @Param body body dto.UpdateTransactionStatusRequest true "New status"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Invalid or missing status"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /admin/transaction/{transactionId}/status [put]
func (h *transactionHandler) updateStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionId")

	var req dto.UpdateTransactionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing status"})
		return
	}

	txn, err := h.txnService.UpdateStatus(c.Request.Context(), transactionID, req.Status)
	if err != nil {
		respondServiceError(c, logger, err, "Transaction not found", "Failed to update status")
		return
	}

	logger.Info("Transaction status updated", slog.String("transaction_id", transactionID), slog.String("status", req.Status))
	c.JSON(http.StatusOK, gin.H{
		"message":     "Transaction status updated",
		"transaction": dto.ToTransactionResponse(txn),
	})
}

// deleteTransaction godoc
// @Summary Delete a transaction (admin)
// @Description Removes exactly one ledger entry matching the transaction id
// @Tags admin
// @Produce json
// @Param transactionId path string true "Transaction ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /admin/transaction/{transactionId} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionId")

	if err := h.txnService.DeleteTransaction(c.Request.Context(), transactionID); err != nil {
		respondServiceError(c, logger, err, "Transaction not found", "Failed to delete transaction")
		return
	}

	logger.Info("Transaction deleted", slog.String("transaction_id", transactionID))
	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted"})
}
