package mapping

import (
	"github.com/swiftbank/bank_records_app/internal/core/domain"
	"github.com/swiftbank/bank_records_app/internal/models"
)

// ToModelAdmin converts a domain admin to its row shape.
func ToModelAdmin(d domain.Admin) models.Admin {
	return models.Admin{
		AdminID:      d.AdminID,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainAdmin converts a row to the domain shape.
func ToDomainAdmin(m models.Admin) domain.Admin {
	return domain.Admin{
		AdminID:      m.AdminID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}
