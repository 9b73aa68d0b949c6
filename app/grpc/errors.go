package grpc

import (
	"context"
	"errors"
	"strconv"

	"github.com/vibast-solutions/ms-go-secours/app/service"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	errorDomain = "secours"

	ReasonInsufficientTokens = "INSUFFICIENT_TOKENS"
	ReasonRateLimited        = "RATE_LIMITED"
)

// toStatusError maps service errors onto gRPC status codes. Only unexpected
// errors are logged.
func toStatusError(ctx context.Context, err error, operation string) error {
	var insufficient *service.InsufficientTokensError
	var limited *service.RateLimitedError

	switch {
	case errors.As(err, &insufficient):
		return statusWithInfo(codes.FailedPrecondition, "insufficient tokens", ReasonInsufficientTokens, map[string]string{
			"required_tokens": strconv.FormatInt(insufficient.Required, 10),
			"current_balance": strconv.FormatInt(insufficient.Current, 10),
		})
	case errors.As(err, &limited):
		return statusWithInfo(codes.ResourceExhausted, "too many rescue requests", ReasonRateLimited, map[string]string{
			"retry_after_seconds": strconv.Itoa(int(limited.RetryAfter.Seconds())),
		})
	case errors.Is(err, service.ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, service.ErrInvalidRequest),
		errors.Is(err, service.ErrUnknownCategory),
		errors.Is(err, service.ErrOutOfBounds),
		errors.Is(err, service.ErrInvalidPaymentMethod),
		errors.Is(err, service.ErrInvalidAction):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, service.ErrSubscriptionNotFound):
		return status.Error(codes.NotFound, "subscription not found")
	case errors.Is(err, service.ErrRescueRequestNotFound):
		return status.Error(codes.NotFound, "rescue request not found")
	case errors.Is(err, service.ErrAlreadySubscribed):
		return status.Error(codes.AlreadyExists, "already subscribed to this category")
	case errors.Is(err, service.ErrRescueNotPending):
		return status.Error(codes.FailedPrecondition, "rescue request is not pending")
	default:
		loggerWithContext(ctx).WithError(err).Error(operation + " failed")
		return status.Error(codes.Internal, "internal server error")
	}
}

func statusWithInfo(code codes.Code, message, reason string, meta map[string]string) error {
	st := status.New(code, message)
	detailed, err := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   reason,
		Domain:   errorDomain,
		Metadata: meta,
	})
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}

// ErrorInfoFromStatus returns the ErrorInfo detail attached to err, if any.
func ErrorInfoFromStatus(err error) (*errdetails.ErrorInfo, bool) {
	st, ok := status.FromError(err)
	if !ok {
		return nil, false
	}
	for _, detail := range st.Details() {
		if info, ok := detail.(*errdetails.ErrorInfo); ok {
			return info, true
		}
	}
	return nil, false
}
