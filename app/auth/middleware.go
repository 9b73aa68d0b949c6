package auth

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const authorizationHeader = "authorization"

// EchoCallerMiddleware resolves the caller from the Authorization header.
// Requests without a valid token are rejected with 401.
func EchoCallerMiddleware(verifier *TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			caller, err := verifier.Verify(bearerToken(ctx.Request().Header.Get(echo.HeaderAuthorization)))
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			}
			req := ctx.Request()
			ctx.SetRequest(req.WithContext(WithCaller(req.Context(), caller)))
			return next(ctx)
		}
	}
}

// UnaryCallerInterceptor attaches the caller when an authorization metadata
// entry is present. Handlers decide whether a caller is required.
func UnaryCallerInterceptor(verifier *TokenVerifier) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return handler(ctx, req)
		}
		values := md.Get(authorizationHeader)
		if len(values) == 0 {
			return handler(ctx, req)
		}

		caller, err := verifier.Verify(bearerToken(values[0]))
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "unauthorized")
		}
		return handler(WithCaller(ctx, caller), req)
	}
}
