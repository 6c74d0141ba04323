package domain

// Admin is an administrator credential record. Admins live in their own
// directory and have no relationship to customer accounts.
type Admin struct {
	AdminID      string `json:"adminID"` // Primary Key (UUID)
	Email        string `json:"email"`   // Unique
	PasswordHash string `json:"-"`
	AuditFields
}
