package models

// Admin is the database row shape for an administrator credential record.
type Admin struct {
	AdminID      string `db:"admin_id"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	AuditFields
}
