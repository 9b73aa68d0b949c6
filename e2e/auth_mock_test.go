//go:build e2e
// +build e2e

package e2e

import (
	"context"
	"fmt"
	"net"
	"os"
	"strings"
	"testing"

	authpb "github.com/vibast-solutions/ms-go-auth/app/types"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	defaultSecoursCallerAPIKey   = "secours-caller-key"
	defaultSecoursNoAccessAPIKey = "secours-no-access-key"
	defaultSecoursAppAPIKey      = "secours-app-api-key"
	defaultSecoursJWTSecret      = "secours-e2e-secret"
	secoursAuthMockAddr          = "127.0.0.1:38093"
)

func secoursCallerAPIKey() string {
	if value := strings.TrimSpace(os.Getenv("SECOURS_CALLER_API_KEY")); value != "" {
		return value
	}
	return defaultSecoursCallerAPIKey
}

func secoursNoAccessAPIKey() string {
	if value := strings.TrimSpace(os.Getenv("SECOURS_NO_ACCESS_API_KEY")); value != "" {
		return value
	}
	return defaultSecoursNoAccessAPIKey
}

func secoursAppAPIKey() string {
	if value := strings.TrimSpace(os.Getenv("SECOURS_APP_API_KEY")); value != "" {
		return value
	}
	return defaultSecoursAppAPIKey
}

type secoursAuthGRPCServer struct {
	authpb.UnimplementedAuthServiceServer
}

func (s *secoursAuthGRPCServer) ValidateInternalAccess(ctx context.Context, req *authpb.ValidateInternalAccessRequest) (*authpb.ValidateInternalAccessResponse, error) {
	if incomingSecoursAPIKey(ctx) != secoursAppAPIKey() {
		return nil, status.Error(codes.Unauthenticated, "unauthorized caller")
	}

	apiKey := strings.TrimSpace(req.GetApiKey())
	switch apiKey {
	case secoursCallerAPIKey():
		return &authpb.ValidateInternalAccessResponse{
			ServiceName:   "mobile-gateway",
			AllowedAccess: []string{"secours-service", "payments-service"},
		}, nil
	case secoursNoAccessAPIKey():
		return &authpb.ValidateInternalAccessResponse{
			ServiceName:   "mobile-gateway",
			AllowedAccess: []string{"payments-service"},
		}, nil
	default:
		return nil, status.Error(codes.Unauthenticated, "invalid api key")
	}
}

func incomingSecoursAPIKey(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get("x-api-key")
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}

func TestMain(m *testing.M) {
	if os.Getenv("SECOURS_CALLER_API_KEY") == "" {
		_ = os.Setenv("SECOURS_CALLER_API_KEY", defaultSecoursCallerAPIKey)
	}
	if os.Getenv("SECOURS_NO_ACCESS_API_KEY") == "" {
		_ = os.Setenv("SECOURS_NO_ACCESS_API_KEY", defaultSecoursNoAccessAPIKey)
	}
	if os.Getenv("SECOURS_APP_API_KEY") == "" {
		_ = os.Setenv("SECOURS_APP_API_KEY", defaultSecoursAppAPIKey)
	}
	if os.Getenv("SECOURS_JWT_SECRET") == "" {
		_ = os.Setenv("SECOURS_JWT_SECRET", defaultSecoursJWTSecret)
	}

	listener, err := net.Listen("tcp", secoursAuthMockAddr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start auth grpc mock: %v\n", err)
		os.Exit(1)
	}

	grpcServer := grpc.NewServer()
	authpb.RegisterAuthServiceServer(grpcServer, &secoursAuthGRPCServer{})

	go func() {
		_ = grpcServer.Serve(listener)
	}()

	exitCode := m.Run()

	grpcServer.GracefulStop()
	_ = listener.Close()

	os.Exit(exitCode)
}
