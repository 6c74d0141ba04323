package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/swiftbank/bank_records_app/internal/core/ports/services"
	"github.com/swiftbank/bank_records_app/internal/dto"
	"github.com/swiftbank/bank_records_app/internal/middleware"
)

// accountHandler handles the customer-facing account routes.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{accountService: as}
}

// createAccount godoc
// @Summary Create a new account record
// @Description Creates an empty account with balance 0 and no profile fields
// @Tags users
// @Produce json
// @Success 201 {object} dto.CreateAccountResponse
// @Failure 500 {object} map[string]string "Failed to create account"
// @Router /users/create [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	account, err := h.accountService.CreateAccount(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Account not found", "Failed to create account")
		return
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID))
	c.JSON(http.StatusCreated, dto.CreateAccountResponse{UserID: account.AccountID})
}

// updateAccount godoc
// @Summary Update account information
// @Description Merges the supplied fields into the record; omitted fields are untouched, unknown fields are rejected
// @Tags users
// @Accept json
// @Produce json
// @Param userId path string true "Account ID"
// @Param user body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/update/{userId} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("userId")

	var req dto.UpdateAccountRequest
	if err := bindStrictJSON(c, &req); err != nil {
		logger.Warn("Failed to bind update request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.accountService.UpdateAccountByID(c.Request.Context(), accountID, req)
	if err != nil {
		respondServiceError(c, logger, err, "User not found.", "Failed to update user")
		return
	}

	logger.Info("Account updated", slog.String("account_id", accountID))
	c.JSON(http.StatusOK, gin.H{
		"message": "User information updated successfully.",
		"user":    dto.ToAccountResponse(account, nil),
	})
}

// getAccount godoc
// @Summary Get account by account number
// @Description Returns the account projection (no credentials) with its transaction history, newest first
// @Tags users
// @Produce json
// @Param accountNumber path string true "Account number"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/account/{accountNumber} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountNumber := c.Param("accountNumber")

	account, history, err := h.accountService.GetAccountWithHistory(c.Request.Context(), accountNumber)
	if err != nil {
		respondServiceError(c, logger, err, "User not found.", "Failed to fetch account")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account, history))
}

// verifyPassword godoc
// @Summary Verify an account password
// @Description Compares the candidate against the stored credential; the contract is match/no-match
// @Tags users
// @Accept json
// @Produce json
// @Param body body dto.VerifyPasswordRequest true "Account number and password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Incorrect password"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /users/verify-password [post]
func (h *accountHandler) verifyPassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.VerifyPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	match, err := h.accountService.VerifyPassword(c.Request.Context(), req.AccountNumber, req.Password)
	if err != nil {
		respondServiceError(c, logger, err, "Account not found.", "Server error. Please try again.")
		return
	}

	if !match {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Incorrect password."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password is correct."})
}

// checkAccount godoc
// @Summary Check an account number
// @Description Reports the holder's full name for an account number
// @Tags users
// @Produce json
// @Param accountNumber path string true "Account number"
// @Success 200 {object} dto.CheckAccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Router /users/check-account/{accountNumber} [get]
func (h *accountHandler) checkAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountNumber := c.Param("accountNumber")

	account, err := h.accountService.GetAccountByNumber(c.Request.Context(), accountNumber)
	if err != nil {
		respondServiceError(c, logger, err, "Account not found", "Failed to look up account")
		return
	}

	c.JSON(http.StatusOK, dto.CheckAccountResponse{FullName: account.FullName()})
}

// updateBalance godoc
// @Summary Deduct from an account balance
// @Description Applies the supplied amount as a deduction; no minimum balance is enforced
// @Tags users
// @Accept json
// @Produce json
// @Param accountNumber path string true "Account number"
// @Param body body dto.UpdateBalanceRequest true "Amount to deduct"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/update-balance/{accountNumber} [patch]
func (h *accountHandler) updateBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountNumber := c.Param("accountNumber")

	var req dto.UpdateBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	// The public contract is "deduct amount"; the store applies a signed delta.
	account, err := h.accountService.ApplyBalanceDelta(c.Request.Context(), accountNumber, req.Amount.Neg())
	if err != nil {
		respondServiceError(c, logger, err, "User not found", "Error updating balance")
		return
	}

	logger.Info("Balance updated", slog.String("account_number", accountNumber))
	c.JSON(http.StatusOK, dto.ToAccountResponse(account, nil))
}

// setOrVerifyPin godoc
// @Summary Set or verify the transaction PIN
// @Description First call stores the PIN; every later call verifies it. The effect depends on stored state, not request shape
// @Tags users
// @Accept json
// @Produce json
// @Param body body dto.SetOrVerifyPinRequest true "Account number and PIN"
// @Success 200 {object} map[string]string "PIN verified"
// @Success 201 {object} map[string]interface{} "PIN set"
// @Failure 400 {object} map[string]string "Incorrect PIN"
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/set-or-verify-pin [post]
func (h *accountHandler) setOrVerifyPin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SetOrVerifyPinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.accountService.SetOrVerifyPin(c.Request.Context(), req.AccountNumber, req.TransactionPin)
	if err != nil {
		respondServiceError(c, logger, err, "User not found.", "Server error. Please try again.")
		return
	}

	if result.Mode == portssvc.PinModeSet {
		logger.Info("Transaction PIN set", slog.String("account_number", req.AccountNumber))
		c.JSON(http.StatusCreated, gin.H{
			"message": "Transaction PIN set successfully.",
			"user":    gin.H{"accountNumber": req.AccountNumber},
		})
		return
	}

	if !result.Match {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Incorrect PIN."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "PIN is correct."})
}

// resetPassword godoc
// @Summary Reset an account password
// @Description Unconditionally overwrites the stored password for the account number
// @Tags users
// @Accept json
// @Produce json
// @Param body body dto.ResetPasswordRequest true "Account number and new password"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Account number does not exist"
// @Router /users/reset-password [post]
func (h *accountHandler) resetPassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.accountService.ResetPassword(c.Request.Context(), req.AccountNumber, req.NewPassword); err != nil {
		respondServiceError(c, logger, err, "Account number does not exist.", "Server error. Please try again.")
		return
	}

	logger.Info("Password reset", slog.String("account_number", req.AccountNumber))
	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully."})
}
