package domain

import "github.com/shopspring/decimal"

// Account represents a customer banking record. The account number is
// assigned out-of-band after creation, so it is nullable and only unique
// among accounts that carry one.
type Account struct {
	AccountID     string  `json:"accountID"` // Primary Key (UUID)
	AccountNumber *string `json:"accountNumber,omitempty"`

	// Profile fields, all optional and independently settable.
	Title            string `json:"title,omitempty"`
	FirstName        string `json:"firstName,omitempty"`
	MiddleName       string `json:"middleName,omitempty"`
	LastName         string `json:"lastName,omitempty"`
	Occupation       string `json:"occupation,omitempty"`
	PhoneNumber      string `json:"phoneNumber,omitempty"`
	SSN              string `json:"ssn,omitempty"`
	DOB              string `json:"dob,omitempty"`
	MaritalStatus    string `json:"maritalStatus,omitempty"`
	EmailAddress     string `json:"emailAddress,omitempty"`
	StateOfOrigin    string `json:"stateOfOrigin,omitempty"`
	StateOfResidence string `json:"stateOfResidence,omitempty"`
	HouseAddress     string `json:"houseAddress,omitempty"`
	NextOfKin        string `json:"nextOfKin,omitempty"`

	// AccountBalance is signed and has no floor; it may go negative.
	AccountBalance decimal.Decimal `json:"accountBalance"`

	// Credentials are bcrypt hashes and must never be serialized.
	PasswordHash       string `json:"-"`
	TransactionPinHash string `json:"-"`

	AuditFields
}

// HasTransactionPin reports whether a transaction PIN has been set.
// Once set, the PIN is immutable; subsequent set attempts become verifies.
func (a *Account) HasTransactionPin() bool {
	return a.TransactionPinHash != ""
}

// FullName joins the name parts the way the account lookup endpoint reports them.
func (a *Account) FullName() string {
	return a.FirstName + " " + a.MiddleName + " " + a.LastName
}

// AccountUpdate enumerates every field a partial update may touch.
// Nil means "leave the stored value untouched".
type AccountUpdate struct {
	AccountNumber    *string
	Title            *string
	FirstName        *string
	MiddleName       *string
	LastName         *string
	Occupation       *string
	PhoneNumber      *string
	SSN              *string
	DOB              *string
	MaritalStatus    *string
	EmailAddress     *string
	StateOfOrigin    *string
	StateOfResidence *string
	HouseAddress     *string
	NextOfKin        *string
}
