package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vibast-solutions/ms-go-secours/app/repository"
	"github.com/vibast-solutions/ms-go-secours/app/service"
	"github.com/vibast-solutions/ms-go-secours/config"
)

var reconcileWorker bool

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Report subscriptions whose token balance drifts from the ledger",
	Run: func(_ *cobra.Command, _ []string) {
		runCommand(
			"reconcile_balances",
			reconcileWorker,
			func(cfg *config.Config) time.Duration { return cfg.Jobs.ReconcileInterval },
			func(s *service.ReconcileService, ctx context.Context) error {
				return s.RunBalanceReconciliationBatch(ctx)
			},
		)
	},
}

func init() {
	rootCmd.AddCommand(reconcileCmd)

	reconcileCmd.Flags().BoolVar(&reconcileWorker, "worker", false, "Run continuously using configured interval")
}

func runCommand(
	name string,
	worker bool,
	intervalResolver func(cfg *config.Config) time.Duration,
	fn func(s *service.ReconcileService, ctx context.Context) error,
) {
	cfg, reconcileService, cleanup := mustCreateReconcileService()
	defer cleanup()

	if worker {
		runWorker(name, intervalResolver(cfg), reconcileService, fn)
		return
	}

	ctx := context.Background()
	runJob(name, func() error { return fn(reconcileService, ctx) })
}

func runWorker(
	name string,
	interval time.Duration,
	reconcileService *service.ReconcileService,
	fn func(s *service.ReconcileService, ctx context.Context) error,
) {
	if interval <= 0 {
		logrus.WithField("job", name).Fatal("invalid worker interval")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runJob(name, func() error { return fn(reconcileService, ctx) })

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	for {
		select {
		case <-quit:
			logrus.WithField("job", name).Info("Worker shutdown requested")
			return
		case <-ticker.C:
			runJob(name, func() error { return fn(reconcileService, ctx) })
		}
	}
}

func mustCreateReconcileService() (*config.Config, *service.ReconcileService, func()) {
	cfg := mustLoadConfig()
	db := mustOpenDatabase(cfg)

	reconcileService := service.NewReconcileService(repository.NewLedgerRepository(db))

	cleanup := func() {
		if err := db.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close database")
		}
	}

	return cfg, reconcileService, cleanup
}

func runJob(name string, fn func() error) {
	start := time.Now()
	err := fn()
	latency := time.Since(start)
	if err != nil {
		logrus.WithError(err).WithField("job", name).WithField("latency", latency.String()).Error("job_failed")
		return
	}
	logrus.WithField("job", name).WithField("latency", latency.String()).Info("job_completed")
}
