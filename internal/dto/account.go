package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/swiftbank/bank_records_app/internal/core/domain"
)

// CreateAccountResponse carries the identity of a freshly created record.
type CreateAccountResponse struct {
	UserID string `json:"userId"`
}

// UpdateAccountRequest enumerates every field a partial update may set.
// Pointers distinguish omitted fields from zero values; omitted fields are
// never overwritten. Unknown fields are rejected at bind time.
type UpdateAccountRequest struct {
	AccountNumber    *string `json:"accountNumber"`
	Title            *string `json:"title"`
	FirstName        *string `json:"firstName"`
	MiddleName       *string `json:"middleName"`
	LastName         *string `json:"lastName"`
	Occupation       *string `json:"occupation"`
	PhoneNumber      *string `json:"phoneNumber"`
	SSN              *string `json:"ssn"`
	DOB              *string `json:"dob"`
	MaritalStatus    *string `json:"maritalStatus"`
	EmailAddress     *string `json:"emailAddress"`
	StateOfOrigin    *string `json:"stateOfOrigin"`
	StateOfResidence *string `json:"stateOfResidence"`
	HouseAddress     *string `json:"houseAddress"`
	NextOfKin        *string `json:"nextOfKin"`
}

// ToAccountUpdate converts the request into the domain partial-update shape.
func (r UpdateAccountRequest) ToAccountUpdate() domain.AccountUpdate {
	return domain.AccountUpdate{
		AccountNumber:    r.AccountNumber,
		Title:            r.Title,
		FirstName:        r.FirstName,
		MiddleName:       r.MiddleName,
		LastName:         r.LastName,
		Occupation:       r.Occupation,
		PhoneNumber:      r.PhoneNumber,
		SSN:              r.SSN,
		DOB:              r.DOB,
		MaritalStatus:    r.MaritalStatus,
		EmailAddress:     r.EmailAddress,
		StateOfOrigin:    r.StateOfOrigin,
		StateOfResidence: r.StateOfResidence,
		HouseAddress:     r.HouseAddress,
		NextOfKin:        r.NextOfKin,
	}
}

// AccountResponse is the external projection of an account record.
// Credential hashes are never included.
type AccountResponse struct {
	AccountID          string                `json:"accountID"`
	AccountNumber      *string               `json:"accountNumber,omitempty"`
	Title              string                `json:"title,omitempty"`
	FirstName          string                `json:"firstName,omitempty"`
	MiddleName         string                `json:"middleName,omitempty"`
	LastName           string                `json:"lastName,omitempty"`
	Occupation         string                `json:"occupation,omitempty"`
	PhoneNumber        string                `json:"phoneNumber,omitempty"`
	SSN                string                `json:"ssn,omitempty"`
	DOB                string                `json:"dob,omitempty"`
	MaritalStatus      string                `json:"maritalStatus,omitempty"`
	EmailAddress       string                `json:"emailAddress,omitempty"`
	StateOfOrigin      string                `json:"stateOfOrigin,omitempty"`
	StateOfResidence   string                `json:"stateOfResidence,omitempty"`
	HouseAddress       string                `json:"houseAddress,omitempty"`
	NextOfKin          string                `json:"nextOfKin,omitempty"`
	AccountBalance     decimal.Decimal       `json:"accountBalance"`
	TransactionHistory []TransactionResponse `json:"transactionHistory,omitempty"`
	CreatedAt          time.Time             `json:"createdAt"`
}

// ToAccountResponse projects an account and its history for external callers.
// Pass nil history for summary views (e.g. admin listings).
func ToAccountResponse(account *domain.Account, history []domain.Transaction) AccountResponse {
	return AccountResponse{
		AccountID:          account.AccountID,
		AccountNumber:      account.AccountNumber,
		Title:              account.Title,
		FirstName:          account.FirstName,
		MiddleName:         account.MiddleName,
		LastName:           account.LastName,
		Occupation:         account.Occupation,
		PhoneNumber:        account.PhoneNumber,
		SSN:                account.SSN,
		DOB:                account.DOB,
		MaritalStatus:      account.MaritalStatus,
		EmailAddress:       account.EmailAddress,
		StateOfOrigin:      account.StateOfOrigin,
		StateOfResidence:   account.StateOfResidence,
		HouseAddress:       account.HouseAddress,
		NextOfKin:          account.NextOfKin,
		AccountBalance:     account.AccountBalance,
		TransactionHistory: ToTransactionResponses(history),
		CreatedAt:          account.CreatedAt,
	}
}

// ListAccountsParams defines query parameters for the admin account listing.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// VerifyPasswordRequest carries a password check against an account.
type VerifyPasswordRequest struct {
	AccountNumber string `json:"accountNumber" binding:"required"`
	Password      string `json:"password" binding:"required"`
}

// ResetPasswordRequest unconditionally replaces an account password.
type ResetPasswordRequest struct {
	AccountNumber string `json:"accountNumber" binding:"required"`
	NewPassword   string `json:"newPassword" binding:"required"`
}

// SetOrVerifyPinRequest either sets the transaction PIN (first call) or
// verifies it (every call after).
type SetOrVerifyPinRequest struct {
	AccountNumber  string `json:"accountNumber" binding:"required"`
	TransactionPin string `json:"transactionPin" binding:"required"`
}

// UpdateBalanceRequest carries the amount to deduct from an account balance.
type UpdateBalanceRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// CheckAccountResponse reports the holder's name for an account number.
type CheckAccountResponse struct {
	FullName string `json:"fullName"`
}
