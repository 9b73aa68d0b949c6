package factory

import (
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-secours/app/auth"
)

func NewModuleLogger(module string) logrus.FieldLogger {
	return logrus.WithField("module", module)
}

// LoggerWithContext tags the logger with the request id echo generated (or
// the client sent) and the authenticated caller, when there is one.
func LoggerWithContext(logger logrus.FieldLogger, ctx echo.Context) logrus.FieldLogger {
	requestID := ctx.Response().Header().Get(echo.HeaderXRequestID)
	if requestID == "" {
		requestID = ctx.Request().Header.Get(echo.HeaderXRequestID)
	}
	fields := logrus.Fields{"request_id": requestID}
	if caller, ok := auth.CallerFromContext(ctx.Request().Context()); ok {
		fields["user_id"] = caller.UserID
	}
	return logger.WithFields(fields)
}
