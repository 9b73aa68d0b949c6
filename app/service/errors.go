package service

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrSubscriptionNotFound  = errors.New("subscription not found")
	ErrRescueRequestNotFound = errors.New("rescue request not found")
	ErrAlreadySubscribed     = errors.New("already subscribed to this category")
	ErrUnknownCategory       = errors.New("unknown category")
	ErrOutOfBounds           = errors.New("token amount out of bounds")
	ErrInvalidPaymentMethod  = errors.New("invalid payment method")
	ErrInvalidRequest        = errors.New("invalid request")
	ErrInvalidAction         = errors.New("invalid adjudication action")
	ErrInsufficientTokens    = errors.New("insufficient tokens")
	ErrRescueNotPending      = errors.New("rescue request is not pending")
	ErrRateLimited           = errors.New("too many rescue requests")
	ErrUnauthenticated       = errors.New("unauthenticated")
	ErrBalanceDrift          = errors.New("stored balances disagree with the ledger")
)

// InsufficientTokensError reports how many tokens an operation needed and
// how many the subscription held when it was checked.
type InsufficientTokensError struct {
	Required int64
	Current  int64
}

func (e *InsufficientTokensError) Error() string {
	return fmt.Sprintf("%s: required=%d current=%d", ErrInsufficientTokens, e.Required, e.Current)
}

func (e *InsufficientTokensError) Is(target error) bool {
	return target == ErrInsufficientTokens
}

type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("%s: retry after %s", ErrRateLimited, e.RetryAfter)
}

func (e *RateLimitedError) Is(target error) bool {
	return target == ErrRateLimited
}
