package factory

import (
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-secours/app/auth"
)

func TestNewModuleLogger(t *testing.T) {
	logger := NewModuleLogger("rescue-service")
	entry, ok := logger.(*logrus.Entry)
	if !ok {
		t.Fatalf("expected *logrus.Entry, got %T", logger)
	}
	if entry.Data["module"] != "rescue-service" {
		t.Fatalf("expected module field, got %+v", entry.Data)
	}
}

func TestLoggerWithContextUsesClientRequestID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "rest-test-123")
	ctx := e.NewContext(req, httptest.NewRecorder())

	entry, ok := LoggerWithContext(logrus.NewEntry(logrus.StandardLogger()), ctx).(*logrus.Entry)
	if !ok {
		t.Fatal("expected *logrus.Entry")
	}
	if entry.Data["request_id"] != "rest-test-123" {
		t.Fatalf("expected request_id field, got %+v", entry.Data)
	}
	if _, ok := entry.Data["user_id"]; ok {
		t.Fatalf("expected no user_id without caller, got %+v", entry.Data)
	}
}

func TestLoggerWithContextPrefersGeneratedRequestIDAndCaller(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest("GET", "/", nil)
	req = req.WithContext(auth.WithCaller(req.Context(), auth.Caller{UserID: "u-9"}))
	ctx := e.NewContext(req, httptest.NewRecorder())
	ctx.Response().Header().Set(echo.HeaderXRequestID, "rest-generated")

	entry := LoggerWithContext(logrus.NewEntry(logrus.StandardLogger()), ctx).(*logrus.Entry)
	if entry.Data["request_id"] != "rest-generated" || entry.Data["user_id"] != "u-9" {
		t.Fatalf("unexpected fields: %+v", entry.Data)
	}
}
