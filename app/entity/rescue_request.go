package entity

import "time"

const (
	RescueStatusPending  = "pending"
	RescueStatusApproved = "approved"
	RescueStatusRejected = "rejected"
)

type RescueRequest struct {
	ID                    uint64
	SubscriptionID        uint64
	Description           string
	RescueValueFCFA       int64
	TokenBalanceAtRequest int64
	Status                string
	AdminNotes            *string
	ProcessedBy           *string
	ProcessedAt           *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
