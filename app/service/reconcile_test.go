package service

import (
	"context"
	"errors"
	"testing"

	"github.com/vibast-solutions/ms-go-secours/app/repository"
)

type mockDriftLister struct {
	drifts []repository.BalanceDrift
	err    error
}

func (m *mockDriftLister) ListBalanceDrift(context.Context) ([]repository.BalanceDrift, error) {
	return m.drifts, m.err
}

func TestReconcileNoDrift(t *testing.T) {
	svc := NewReconcileService(&mockDriftLister{})
	if err := svc.RunBalanceReconciliationBatch(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestReconcileReportsDrift(t *testing.T) {
	svc := NewReconcileService(&mockDriftLister{drifts: []repository.BalanceDrift{
		{SubscriptionID: 3, StoredBalance: 40, LedgerBalance: 10},
	}})
	err := svc.RunBalanceReconciliationBatch(context.Background())
	if !errors.Is(err, ErrBalanceDrift) {
		t.Fatalf("expected ErrBalanceDrift, got %v", err)
	}
}

func TestReconcilePropagatesRepositoryError(t *testing.T) {
	repoErr := errors.New("db down")
	svc := NewReconcileService(&mockDriftLister{err: repoErr})
	if err := svc.RunBalanceReconciliationBatch(context.Background()); !errors.Is(err, repoErr) {
		t.Fatalf("expected repository error, got %v", err)
	}
}
