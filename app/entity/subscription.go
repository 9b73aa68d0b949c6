package entity

import (
	"time"

	"github.com/vibast-solutions/ms-go-secours/app/policy"
)

type Subscription struct {
	ID           uint64
	UserID       string
	Category     policy.Category
	Active       bool
	TokenBalance int64
	StartedAt    time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
