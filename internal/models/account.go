package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Account is the database row shape for a customer banking record.
// Optional text columns are nullable in the schema, so they scan through
// sql.NullString.
type Account struct {
	AccountID     string         `db:"account_id"`
	AccountNumber sql.NullString `db:"account_number"`

	Title            sql.NullString `db:"title"`
	FirstName        sql.NullString `db:"first_name"`
	MiddleName       sql.NullString `db:"middle_name"`
	LastName         sql.NullString `db:"last_name"`
	Occupation       sql.NullString `db:"occupation"`
	PhoneNumber      sql.NullString `db:"phone_number"`
	SSN              sql.NullString `db:"ssn"`
	DOB              sql.NullString `db:"dob"`
	MaritalStatus    sql.NullString `db:"marital_status"`
	EmailAddress     sql.NullString `db:"email_address"`
	StateOfOrigin    sql.NullString `db:"state_of_origin"`
	StateOfResidence sql.NullString `db:"state_of_residence"`
	HouseAddress     sql.NullString `db:"house_address"`
	NextOfKin        sql.NullString `db:"next_of_kin"`

	AccountBalance     decimal.Decimal `db:"account_balance"`
	PasswordHash       sql.NullString  `db:"password_hash"`
	TransactionPinHash sql.NullString  `db:"transaction_pin_hash"`

	AuditFields
}
