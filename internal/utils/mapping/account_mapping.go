package mapping

import (
	"database/sql"

	"github.com/swiftbank/bank_records_app/internal/core/domain"
	"github.com/swiftbank/bank_records_app/internal/models"
)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func fromNullString(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}

// ToModelAccount converts a domain account to its row shape.
func ToModelAccount(d domain.Account) models.Account {
	m := models.Account{
		AccountID:          d.AccountID,
		Title:              nullString(d.Title),
		FirstName:          nullString(d.FirstName),
		MiddleName:         nullString(d.MiddleName),
		LastName:           nullString(d.LastName),
		Occupation:         nullString(d.Occupation),
		PhoneNumber:        nullString(d.PhoneNumber),
		SSN:                nullString(d.SSN),
		DOB:                nullString(d.DOB),
		MaritalStatus:      nullString(d.MaritalStatus),
		EmailAddress:       nullString(d.EmailAddress),
		StateOfOrigin:      nullString(d.StateOfOrigin),
		StateOfResidence:   nullString(d.StateOfResidence),
		HouseAddress:       nullString(d.HouseAddress),
		NextOfKin:          nullString(d.NextOfKin),
		AccountBalance:     d.AccountBalance,
		PasswordHash:       nullString(d.PasswordHash),
		TransactionPinHash: nullString(d.TransactionPinHash),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
	if d.AccountNumber != nil {
		m.AccountNumber = sql.NullString{String: *d.AccountNumber, Valid: true}
	}
	return m
}

// ToDomainAccount converts a row to the domain shape.
func ToDomainAccount(m models.Account) domain.Account {
	d := domain.Account{
		AccountID:          m.AccountID,
		Title:              fromNullString(m.Title),
		FirstName:          fromNullString(m.FirstName),
		MiddleName:         fromNullString(m.MiddleName),
		LastName:           fromNullString(m.LastName),
		Occupation:         fromNullString(m.Occupation),
		PhoneNumber:        fromNullString(m.PhoneNumber),
		SSN:                fromNullString(m.SSN),
		DOB:                fromNullString(m.DOB),
		MaritalStatus:      fromNullString(m.MaritalStatus),
		EmailAddress:       fromNullString(m.EmailAddress),
		StateOfOrigin:      fromNullString(m.StateOfOrigin),
		StateOfResidence:   fromNullString(m.StateOfResidence),
		HouseAddress:       fromNullString(m.HouseAddress),
		NextOfKin:          fromNullString(m.NextOfKin),
		AccountBalance:     m.AccountBalance,
		PasswordHash:       fromNullString(m.PasswordHash),
		TransactionPinHash: fromNullString(m.TransactionPinHash),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
	if m.AccountNumber.Valid {
		n := m.AccountNumber.String
		d.AccountNumber = &n
	}
	return d
}
