package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-secours/app/factory"
	"github.com/vibast-solutions/ms-go-secours/app/metrics"
	"github.com/vibast-solutions/ms-go-secours/app/repository"
)

type driftLister interface {
	ListBalanceDrift(ctx context.Context) ([]repository.BalanceDrift, error)
}

// ReconcileService compares each stored balance with the fold of its ledger.
// It reports drift and never rewrites balances.
type ReconcileService struct {
	ledger driftLister
	logger logrus.FieldLogger
}

func NewReconcileService(ledger driftLister) *ReconcileService {
	return &ReconcileService{
		ledger: ledger,
		logger: factory.NewModuleLogger("reconcile-service"),
	}
}

func (s *ReconcileService) RunBalanceReconciliationBatch(ctx context.Context) error {
	drifts, err := s.ledger.ListBalanceDrift(ctx)
	if err != nil {
		return err
	}

	metrics.SetBalanceDrift(len(drifts))
	if len(drifts) == 0 {
		return nil
	}

	for _, drift := range drifts {
		s.logger.WithFields(logrus.Fields{
			"subscription_id": drift.SubscriptionID,
			"stored_balance":  drift.StoredBalance,
			"ledger_balance":  drift.LedgerBalance,
		}).Warn("balance_drift")
	}
	return fmt.Errorf("%w: %d subscriptions", ErrBalanceDrift, len(drifts))
}
