package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/swiftbank/bank_records_app/internal/core/ports/services"
	"github.com/swiftbank/bank_records_app/internal/dto"
	"github.com/swiftbank/bank_records_app/internal/middleware"
)

// adminHandler handles the admin directory and the admin user-management routes.
type adminHandler struct {
	adminService   portssvc.AdminSvcFacade
	accountService portssvc.AccountSvcFacade
}

func newAdminHandler(as portssvc.AdminSvcFacade, accs portssvc.AccountSvcFacade) *adminHandler {
	return &adminHandler{adminService: as, accountService: accs}
}

// signup godoc
// @Summary Register a new admin
// @Tags admin
// @Accept json
// @Produce json
// @Param body body dto.AdminSignupRequest true "Email and password"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Admin already exists"
// @Router /admin/signup [post]
func (h *adminHandler) signup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AdminSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	admin, err := h.adminService.Signup(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Admin not found", "Server error")
		return
	}

	logger.Info("Admin created", slog.String("admin_id", admin.AdminID))
	c.JSON(http.StatusCreated, gin.H{"message": "Admin created successfully"})
}

// login godoc
// @Summary Authenticate an admin
// @Description Issues a signed, time-limited token carrying the admin id and email
// @Tags admin
// @Accept json
// @Produce json
// @Param body body dto.AdminLoginRequest true "Email and password"
// @Success 200 {object} dto.AdminLoginResponse
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 404 {object} map[string]string "Admin not found"
// @Router /admin/login [post]
func (h *adminHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	token, err := h.adminService.Login(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Admin not found", "Server error")
		return
	}

	logger.Info("Admin logged in", slog.String("email", req.Email))
	c.JSON(http.StatusOK, dto.AdminLoginResponse{Message: "Login successful", Token: token})
}

// changePassword godoc
// @Summary Change an admin password
// @Description Rotates the password after verifying the old one
// @Tags admin
// @Accept json
// @Produce json
// @Param body body dto.AdminChangePasswordRequest true "Email, old and new password"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string "Old password is incorrect"
// @Failure 404 {object} map[string]string "Admin not found"
// @Router /admin/change-password [post]
func (h *adminHandler) changePassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AdminChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.adminService.ChangePassword(c.Request.Context(), req.Email, req.OldPassword, req.NewPassword); err != nil {
		respondServiceError(c, logger, err, "Admin not found", "Server error")
		return
	}

	logger.Info("Admin password changed", slog.String("email", req.Email))
	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

// recoverPassword godoc
// @Summary Change an admin password without the old one
// @Description Recovery path; only reachable through the recovery-key gate
// @Tags admin
// @Accept json
// @Produce json
// @Param body body dto.AdminRecoverPasswordRequest true "Email and new password"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Admin not found"
// @Router /admin/change-password-email-only [post]
func (h *adminHandler) recoverPassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AdminRecoverPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.adminService.ChangePasswordByEmailOnly(c.Request.Context(), req.Email, req.NewPassword); err != nil {
		respondServiceError(c, logger, err, "Admin not found", "Server error")
		return
	}

	logger.Info("Admin password recovered", slog.String("email", req.Email))
	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

// checkEmail godoc
// @Summary Check whether an admin email is registered
// @Tags admin
// @Accept json
// @Produce json
// @Param body body dto.CheckEmailRequest true "Email"
// @Success 200 {object} dto.CheckEmailResponse
// @Router /admin/check-email [post]
func (h *adminHandler) checkEmail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CheckEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	exists, err := h.adminService.EmailExists(c.Request.Context(), req.Email)
	if err != nil {
		respondServiceError(c, logger, err, "Admin not found", "Server error")
		return
	}

	c.JSON(http.StatusOK, dto.CheckEmailResponse{Exists: exists})
}

// listUsers godoc
// @Summary List all accounts (admin)
// @Description Returns account projections without credentials or history
// @Tags admin
// @Produce json
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {array} dto.AccountResponse
// @Failure 500 {object} map[string]string "Failed to fetch users"
// @Security BearerAuth
// @Router /admin/users [get]
func (h *adminHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, logger, err, "Users not found", "Failed to fetch users")
		return
	}

	responses := make([]dto.AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = dto.ToAccountResponse(&accounts[i], nil)
	}
	c.JSON(http.StatusOK, responses)
}

// updateUser godoc
// @Summary Update an account by account number (admin)
// @Description Merges the supplied fields; omitted fields untouched, unknown fields rejected
// @Tags admin
// @Accept json
// @Produce json
// @Param accountNumber path string true "Account number"
// @Param user body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /admin/user/{accountNumber} [put]
func (h *adminHandler) updateUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountNumber := c.Param("accountNumber")

	var req dto.UpdateAccountRequest
	if err := bindStrictJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.accountService.UpdateAccountByNumber(c.Request.Context(), accountNumber, req)
	if err != nil {
		respondServiceError(c, logger, err, "User not found", "Failed to update user")
		return
	}

	logger.Info("Account updated by admin", slog.String("account_number", accountNumber))
	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"user":    dto.ToAccountResponse(account, nil),
	})
}

// getUser godoc
// @Summary Get an account by account number (admin)
// @Description Returns the account projection with its history; credentials are never exposed
// @Tags admin
// @Produce json
// @Param accountNumber path string true "Account number"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /admin/user/{accountNumber} [get]
func (h *adminHandler) getUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountNumber := c.Param("accountNumber")

	account, history, err := h.accountService.GetAccountWithHistory(c.Request.Context(), accountNumber)
	if err != nil {
		respondServiceError(c, logger, err, "User not found", "Failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account, history))
}

// deleteUserByID godoc
// @Summary Delete an account by internal id (admin)
// @Description Hard-deletes the record; the embedded history goes with it
// @Tags admin
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /admin/delete-user-by-id/{id} [delete]
func (h *adminHandler) deleteUserByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")

	if err := h.accountService.DeleteAccountByID(c.Request.Context(), accountID); err != nil {
		respondServiceError(c, logger, err, "User not found", "Failed to delete user")
		return
	}

	logger.Info("Account deleted", slog.String("account_id", accountID))
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
