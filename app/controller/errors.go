package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-secours/app/factory"
	"github.com/vibast-solutions/ms-go-secours/app/service"
	"github.com/vibast-solutions/ms-go-secours/app/types"
)

func writeError(ctx echo.Context, statusCode int, message string) error {
	return ctx.JSON(statusCode, &types.ErrorResponse{Error: message})
}

// writeServiceError maps service errors onto HTTP responses. Only
// unexpected errors are logged.
func writeServiceError(ctx echo.Context, logger logrus.FieldLogger, err error, operation string) error {
	var insufficient *service.InsufficientTokensError
	var limited *service.RateLimitedError

	switch {
	case errors.As(err, &insufficient):
		return ctx.JSON(http.StatusConflict, &types.InsufficientTokensResponse{
			Error:          "insufficient tokens",
			RequiredTokens: insufficient.Required,
			CurrentBalance: insufficient.Current,
		})
	case errors.As(err, &limited):
		ctx.Response().Header().Set("Retry-After", strconv.Itoa(int(limited.RetryAfter.Seconds())))
		return writeError(ctx, http.StatusTooManyRequests, "too many rescue requests")
	case errors.Is(err, service.ErrUnauthenticated):
		return writeError(ctx, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, service.ErrInvalidRequest),
		errors.Is(err, service.ErrUnknownCategory),
		errors.Is(err, service.ErrOutOfBounds),
		errors.Is(err, service.ErrInvalidPaymentMethod),
		errors.Is(err, service.ErrInvalidAction):
		return writeError(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrSubscriptionNotFound):
		return writeError(ctx, http.StatusNotFound, "subscription not found")
	case errors.Is(err, service.ErrRescueRequestNotFound):
		return writeError(ctx, http.StatusNotFound, "rescue request not found")
	case errors.Is(err, service.ErrAlreadySubscribed):
		return writeError(ctx, http.StatusConflict, "already subscribed to this category")
	case errors.Is(err, service.ErrRescueNotPending):
		return writeError(ctx, http.StatusConflict, "rescue request is not pending")
	default:
		factory.LoggerWithContext(logger, ctx).WithError(err).Error(operation + " failed")
		return writeError(ctx, http.StatusInternalServerError, "internal server error")
	}
}
