package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-secours/app/auth"
	"github.com/vibast-solutions/ms-go-secours/app/entity"
	"github.com/vibast-solutions/ms-go-secours/app/events"
	"github.com/vibast-solutions/ms-go-secours/app/factory"
	"github.com/vibast-solutions/ms-go-secours/app/metrics"
	"github.com/vibast-solutions/ms-go-secours/app/payment"
	"github.com/vibast-solutions/ms-go-secours/app/policy"
	"github.com/vibast-solutions/ms-go-secours/app/repository"
)

type purchaseTokensRequest interface {
	GetSubscriptionId() uint64
	GetTokenAmount() int64
	GetPaymentMethod() string
	GetReference() string
}

type purchaseLedger interface {
	ApplyPurchase(ctx context.Context, txn *entity.TokenTransaction) (int64, error)
}

type transactionRepository interface {
	ListBySubscription(ctx context.Context, subscriptionID uint64) ([]*entity.TokenTransaction, error)
}

type PurchaseResult struct {
	Transaction *entity.TokenTransaction
	Balance     int64
}

type PurchaseService struct {
	subscriptionRepo subscriptionFinder
	ledger           purchaseLedger
	transactionRepo  transactionRepository
	publisher        eventPublisher
	logger           logrus.FieldLogger
}

func NewPurchaseService(
	subscriptionRepo subscriptionFinder,
	ledger purchaseLedger,
	transactionRepo transactionRepository,
	publisher eventPublisher,
) *PurchaseService {
	return &PurchaseService{
		subscriptionRepo: subscriptionRepo,
		ledger:           ledger,
		transactionRepo:  transactionRepo,
		publisher:        publisher,
		logger:           factory.NewModuleLogger("purchase-service"),
	}
}

// PurchaseTokens credits tokenAmount tokens to an active subscription the
// caller owns. The ledger row and the balance change commit together.
func (s *PurchaseService) PurchaseTokens(ctx context.Context, caller auth.Caller, req purchaseTokensRequest) (*PurchaseResult, error) {
	subscription, err := findOwnedSubscription(ctx, s.subscriptionRepo, caller, req.GetSubscriptionId(), accessActiveOwner)
	if err != nil {
		return nil, err
	}

	valuation, err := policy.Lookup(subscription.Category)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, subscription.Category)
	}

	amount := req.GetTokenAmount()
	if !valuation.Contains(amount) {
		if amount > valuation.MaxTokens {
			return nil, fmt.Errorf("%w: maximum is %d tokens", ErrOutOfBounds, valuation.MaxTokens)
		}
		return nil, fmt.Errorf("%w: minimum is %d tokens", ErrOutOfBounds, valuation.MinTokens)
	}

	method, err := payment.ParseMethod(req.GetPaymentMethod())
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, req.GetPaymentMethod())
	}
	methodValue := string(method)
	reference := payment.Reference(req.GetReference())

	txn := &entity.TokenTransaction{
		SubscriptionID: subscription.ID,
		Kind:           entity.TransactionKindPurchase,
		TokenAmount:    amount,
		TokenValueFCFA: valuation.ValueOf(amount),
		PaymentMethod:  &methodValue,
		Reference:      &reference,
		CreatedAt:      time.Now().UTC(),
	}

	balance, err := s.ledger.ApplyPurchase(ctx, txn)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}

	metrics.RecordPurchase(string(subscription.Category), methodValue, amount)
	publish(ctx, s.publisher, s.logger, events.RoutingTokensPurchased, events.TokensPurchasedEvent{
		SubscriptionID: subscription.ID,
		UserID:         subscription.UserID,
		TransactionID:  txn.ID,
		TokenAmount:    txn.TokenAmount,
		TokenValueFCFA: txn.TokenValueFCFA,
		Balance:        balance,
		OccurredAt:     txn.CreatedAt,
	})

	return &PurchaseResult{Transaction: txn, Balance: balance}, nil
}

func (s *PurchaseService) ListTransactions(ctx context.Context, caller auth.Caller, subscriptionID uint64) ([]*entity.TokenTransaction, error) {
	subscription, err := findOwnedSubscription(ctx, s.subscriptionRepo, caller, subscriptionID, accessOwnerOrManager)
	if err != nil {
		return nil, err
	}
	items, err := s.transactionRepo.ListBySubscription(ctx, subscription.ID)
	if err != nil {
		return nil, err
	}
	return items, nil
}
