package domain

import "time"

// AuditFields holds the creation and last-update timestamps shared by all aggregates.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
