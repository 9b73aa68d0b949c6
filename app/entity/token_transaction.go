package entity

import "time"

const (
	TransactionKindPurchase    = "purchase"
	TransactionKindRescueClaim = "rescue_claim"
)

// TokenTransaction rows are append-only.
type TokenTransaction struct {
	ID             uint64
	SubscriptionID uint64
	Kind           string
	TokenAmount    int64
	TokenValueFCFA int64
	PaymentMethod  *string
	Reference      *string
	CreatedAt      time.Time
}
