package events

import "time"

type SubscriptionEvent struct {
	SubscriptionID uint64    `json:"subscription_id"`
	UserID         string    `json:"user_id"`
	Category       string    `json:"category"`
	OccurredAt     time.Time `json:"occurred_at"`
}

type TokensPurchasedEvent struct {
	SubscriptionID uint64    `json:"subscription_id"`
	UserID         string    `json:"user_id"`
	TransactionID  uint64    `json:"transaction_id"`
	TokenAmount    int64     `json:"token_amount"`
	TokenValueFCFA int64     `json:"token_value_fcfa"`
	Balance        int64     `json:"balance"`
	OccurredAt     time.Time `json:"occurred_at"`
}

type RescueEvent struct {
	RescueRequestID uint64    `json:"rescue_request_id"`
	SubscriptionID  uint64    `json:"subscription_id"`
	UserID          string    `json:"user_id"`
	RescueValueFCFA int64     `json:"rescue_value_fcfa"`
	RequiredTokens  int64     `json:"required_tokens"`
	Status          string    `json:"status"`
	Balance         int64     `json:"balance"`
	OccurredAt      time.Time `json:"occurred_at"`
}
