package cmd

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	authclient "github.com/vibast-solutions/lib-go-auth/client"
	authmiddleware "github.com/vibast-solutions/lib-go-auth/middleware"
	authlibservice "github.com/vibast-solutions/lib-go-auth/service"
	"github.com/vibast-solutions/ms-go-secours/app/auth"
	"github.com/vibast-solutions/ms-go-secours/app/controller"
	"github.com/vibast-solutions/ms-go-secours/app/events"
	grpcserver "github.com/vibast-solutions/ms-go-secours/app/grpc"
	"github.com/vibast-solutions/ms-go-secours/app/metrics"
	"github.com/vibast-solutions/ms-go-secours/app/ratelimit"
	"github.com/vibast-solutions/ms-go-secours/app/repository"
	"github.com/vibast-solutions/ms-go-secours/app/service"
	"github.com/vibast-solutions/ms-go-secours/app/types"
	"github.com/vibast-solutions/ms-go-secours/config"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP and gRPC servers",
	Long:  "Start both HTTP (Echo) and gRPC servers for the secours service.",
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

type httpControllers struct {
	subscriptions *controller.SubscriptionController
	tokens        *controller.TokenController
	rescues       *controller.RescueController
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()

	db := mustOpenDatabase(cfg)
	defer db.Close()

	publisher := newEventPublisher(cfg)
	defer publisher.Close()

	limiter, closeLimiter := newRescueLimiter(cfg)
	defer closeLimiter()

	subscriptionRepo := repository.NewSubscriptionRepository(db)
	transactionRepo := repository.NewTokenTransactionRepository(db)
	rescueRepo := repository.NewRescueRequestRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)

	subscriptionService := service.NewSubscriptionService(subscriptionRepo, publisher)
	purchaseService := service.NewPurchaseService(subscriptionRepo, ledgerRepo, transactionRepo, publisher)
	rescueService := service.NewRescueService(subscriptionRepo, rescueRepo, ledgerRepo, limiter, publisher)

	grpcSecoursServer := grpcserver.NewServer(subscriptionService, purchaseService, rescueService)
	controllers := httpControllers{
		subscriptions: controller.NewSubscriptionController(subscriptionService),
		tokens:        controller.NewTokenController(purchaseService),
		rescues:       controller.NewRescueController(rescueService),
	}
	verifier := auth.NewTokenVerifier(cfg.Auth.JWTSecret)

	authGRPCClient, err := authclient.NewGRPCClientFromAddr(context.Background(), cfg.InternalEndpoints.AuthGRPCAddr)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize auth gRPC client")
	}
	defer authGRPCClient.Close()
	internalAuthService := authlibservice.NewInternalAuthService(authGRPCClient)
	echoInternalAuthMiddleware := authmiddleware.NewEchoInternalAuthMiddleware(internalAuthService)
	grpcInternalAuthMiddleware := authmiddleware.NewGRPCInternalAuthMiddleware(internalAuthService)

	e := setupHTTPServer(controllers, verifier, echoInternalAuthMiddleware, cfg.App.ServiceName)
	grpcSrv, lis := setupGRPCServer(cfg, grpcSecoursServer, verifier, grpcInternalAuthMiddleware, cfg.App.ServiceName)

	go func() {
		httpAddr := net.JoinHostPort(cfg.HTTP.Host, cfg.HTTP.Port)
		logrus.WithField("addr", httpAddr).Info("Starting HTTP server")
		if err := e.Start(httpAddr); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("HTTP server error")
		}
	}()

	go func() {
		logrus.WithField("addr", lis.Addr().String()).Info("Starting gRPC server")
		if err := grpcSrv.Serve(lis); err != nil {
			logrus.WithError(err).Fatal("gRPC server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Warn("HTTP shutdown error")
	}
	grpcSrv.GracefulStop()

	logrus.Info("Server stopped")
}

// newEventPublisher falls back to a no-op publisher when no broker is
// configured or the broker cannot be reached at startup.
func newEventPublisher(cfg *config.Config) events.Publisher {
	if cfg.Events.AMQPURL == "" {
		logrus.Info("AMQP_URL not set; domain events disabled")
		return events.NewNoopPublisher()
	}
	publisher, err := events.NewAMQPPublisher(cfg.Events.AMQPURL, cfg.Events.Exchange)
	if err != nil {
		logrus.WithError(err).Warn("Failed to connect to AMQP broker; domain events disabled")
		return events.NewNoopPublisher()
	}
	return publisher
}

// newRescueLimiter returns a nil limiter when REDIS_ADDR is empty, which
// admits every rescue request.
func newRescueLimiter(cfg *config.Config) (*ratelimit.Limiter, func()) {
	if cfg.Redis.Addr == "" {
		logrus.Info("REDIS_ADDR not set; rescue rate limiting disabled")
		return nil, func() {}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	cleanup := func() {
		if err := client.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close redis client")
		}
	}
	return ratelimit.NewLimiter(client, "", cfg.Rescue.RateLimit, cfg.Rescue.RateLimitWindow), cleanup
}

func setupHTTPServer(
	controllers httpControllers,
	verifier *auth.TokenVerifier,
	internalAuthMiddleware *authmiddleware.EchoInternalAuthMiddleware,
	appServiceName string,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogRemoteIP:  true,
		LogLatency:   true,
		LogUserAgent: true,
		LogError:     true,
		HandleError:  true,
		LogRequestID: true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			fields := logrus.Fields{
				"remote_ip":  v.RemoteIP,
				"host":       v.Host,
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"latency_ns": v.Latency.Nanoseconds(),
				"user_agent": v.UserAgent,
				"request_id": v.RequestID,
			}
			entry := logrus.WithFields(fields)
			if v.Error != nil {
				entry = entry.WithError(v.Error)
			}
			entry.Info("http_request")
			return nil
		},
	}))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: func() string {
			return fmt.Sprintf("rest-%s", uuid.New().String())
		},
	}))
	e.Use(metrics.EchoMiddleware())

	e.GET("/health", controllers.subscriptions.Health)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	api := e.Group("", internalAuthMiddleware.RequireInternalAccess(appServiceName))
	api.GET("/categories", controllers.subscriptions.ListCategories)

	authenticated := api.Group("", auth.EchoCallerMiddleware(verifier))
	authenticated.GET("/categories/:category/subscription", controllers.subscriptions.GetSubscriptionByCategory)

	subscriptions := authenticated.Group("/subscriptions")
	subscriptions.POST("", controllers.subscriptions.Subscribe)
	subscriptions.GET("", controllers.subscriptions.ListSubscriptions)
	subscriptions.GET("/:id", controllers.subscriptions.GetSubscription)
	subscriptions.POST("/:id/deactivate", controllers.subscriptions.DeactivateSubscription)
	subscriptions.POST("/:id/tokens", controllers.tokens.PurchaseTokens)
	subscriptions.GET("/:id/transactions", controllers.tokens.ListTransactions)
	subscriptions.POST("/:id/rescue-requests", controllers.rescues.RequestRescue)
	subscriptions.GET("/:id/rescue-requests", controllers.rescues.ListRescueRequests)

	rescueRequests := authenticated.Group("/rescue-requests")
	rescueRequests.GET("", controllers.rescues.ListRescueRequestsByStatus)
	rescueRequests.POST("/:id/adjudicate", controllers.rescues.AdjudicateRescue)

	return e
}

func setupGRPCServer(
	cfg *config.Config,
	secoursServer *grpcserver.Server,
	verifier *auth.TokenVerifier,
	internalAuthMiddleware *authmiddleware.GRPCInternalAuthMiddleware,
	appServiceName string,
) (*grpc.Server, net.Listener) {
	grpcAddr := net.JoinHostPort(cfg.GRPC.Host, cfg.GRPC.Port)
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to listen on gRPC port")
	}

	grpcSrv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpcserver.RecoveryInterceptor(),
			grpcserver.RequestIDInterceptor(),
			internalAuthMiddleware.UnaryRequireInternalAccess(appServiceName),
			auth.UnaryCallerInterceptor(verifier),
			grpcserver.LoggingInterceptor(),
		),
	)
	types.RegisterSecoursServiceServer(grpcSrv, secoursServer)

	return grpcSrv, lis
}
