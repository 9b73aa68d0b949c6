package service

import (
	"context"
	"sync"

	"github.com/vibast-solutions/ms-go-secours/app/entity"
	"github.com/vibast-solutions/ms-go-secours/app/policy"
	"github.com/vibast-solutions/ms-go-secours/app/ratelimit"
	"github.com/vibast-solutions/ms-go-secours/app/repository"
)

// memoryStore backs the subscription, transaction, rescue and ledger
// repositories with maps. One mutex serializes every write, matching the
// row locks the SQL ledger takes.
type memoryStore struct {
	mu            sync.Mutex
	subscriptions map[uint64]*entity.Subscription
	transactions  []*entity.TokenTransaction
	requests      map[uint64]*entity.RescueRequest
	nextID        uint64
	createErr     error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		subscriptions: make(map[uint64]*entity.Subscription),
		requests:      make(map[uint64]*entity.RescueRequest),
	}
}

func (m *memoryStore) id() uint64 {
	m.nextID++
	return m.nextID
}

func (m *memoryStore) seedSubscription(userID string, category policy.Category, balance int64) *entity.Subscription {
	m.mu.Lock()
	defer m.mu.Unlock()
	item := &entity.Subscription{ID: m.id(), UserID: userID, Category: category, Active: true, TokenBalance: balance}
	m.subscriptions[item.ID] = item
	return cloneSubscription(item)
}

func (m *memoryStore) balance(id uint64) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.subscriptions[id].TokenBalance
}

func (m *memoryStore) setBalance(id uint64, balance int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscriptions[id].TokenBalance = balance
}

func (m *memoryStore) requestCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

func (m *memoryStore) subscriptionCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.subscriptions)
}

func (m *memoryStore) claims(subscriptionID uint64) []*entity.TokenTransaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.TokenTransaction
	for _, txn := range m.transactions {
		if txn.SubscriptionID == subscriptionID && txn.Kind == entity.TransactionKindRescueClaim {
			out = append(out, txn)
		}
	}
	return out
}

func cloneSubscription(item *entity.Subscription) *entity.Subscription {
	c := *item
	return &c
}

func cloneRequest(item *entity.RescueRequest) *entity.RescueRequest {
	c := *item
	return &c
}

func (m *memoryStore) Create(_ context.Context, subscription *entity.Subscription) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	for _, existing := range m.subscriptions {
		if existing.UserID == subscription.UserID && existing.Category == subscription.Category {
			return repository.ErrSubscriptionAlreadyExists
		}
	}
	subscription.ID = m.id()
	m.subscriptions[subscription.ID] = cloneSubscription(subscription)
	return nil
}

func (m *memoryStore) UpdateActivation(_ context.Context, subscription *entity.Subscription) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.subscriptions[subscription.ID]
	if !ok {
		return repository.ErrSubscriptionNotFound
	}
	if subscription.Active && stored.Active {
		return repository.ErrSubscriptionAlreadyExists
	}
	stored.Active = subscription.Active
	stored.StartedAt = subscription.StartedAt
	stored.UpdatedAt = subscription.UpdatedAt
	return nil
}

func (m *memoryStore) FindByID(_ context.Context, id uint64) (*entity.Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if item, ok := m.subscriptions[id]; ok {
		return cloneSubscription(item), nil
	}
	return nil, nil
}

func (m *memoryStore) FindByUserAndCategory(_ context.Context, userID string, category policy.Category) (*entity.Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, item := range m.subscriptions {
		if item.UserID == userID && item.Category == category {
			return cloneSubscription(item), nil
		}
	}
	return nil, nil
}

func (m *memoryStore) ListByUser(_ context.Context, userID string) ([]*entity.Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.Subscription, 0)
	for id := uint64(1); id <= m.nextID; id++ {
		if item, ok := m.subscriptions[id]; ok && item.UserID == userID {
			out = append(out, cloneSubscription(item))
		}
	}
	return out, nil
}

func (m *memoryStore) ApplyPurchase(_ context.Context, txn *entity.TokenTransaction) (int64, error) {
	if txn.TokenAmount <= 0 {
		return 0, repository.ErrInvalidTokenAmount
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.subscriptions[txn.SubscriptionID]
	if !ok || !stored.Active {
		return 0, repository.ErrSubscriptionNotFound
	}
	txn.ID = m.id()
	m.transactions = append(m.transactions, txn)
	stored.TokenBalance += txn.TokenAmount
	return stored.TokenBalance, nil
}

func (m *memoryStore) ApproveRescue(_ context.Context, request *entity.RescueRequest, claim *entity.TokenTransaction) (int64, error) {
	if claim.TokenAmount <= 0 {
		return 0, repository.ErrInvalidTokenAmount
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.requests[request.ID]
	if !ok {
		return 0, repository.ErrRescueRequestNotFound
	}
	if stored.Status != entity.RescueStatusPending {
		return 0, repository.ErrRescueRequestNotPending
	}
	subscription, ok := m.subscriptions[claim.SubscriptionID]
	if !ok {
		return 0, repository.ErrSubscriptionNotFound
	}
	if subscription.TokenBalance < claim.TokenAmount {
		return 0, &repository.InsufficientBalanceError{Balance: subscription.TokenBalance}
	}

	subscription.TokenBalance -= claim.TokenAmount
	claim.ID = m.id()
	m.transactions = append(m.transactions, claim)
	request.Status = entity.RescueStatusApproved
	m.requests[request.ID] = cloneRequest(request)
	return subscription.TokenBalance, nil
}

func (m *memoryStore) transactionsOf(subscriptionID uint64) []*entity.TokenTransaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.TokenTransaction, 0)
	for _, txn := range m.transactions {
		if txn.SubscriptionID == subscriptionID {
			out = append(out, txn)
		}
	}
	return out
}

// memoryTransactions and memoryRescues adapt the store to the repository
// interfaces whose method names collide with the subscription ones.
type memoryTransactions struct{ *memoryStore }

func (m memoryTransactions) ListBySubscription(_ context.Context, subscriptionID uint64) ([]*entity.TokenTransaction, error) {
	return m.transactionsOf(subscriptionID), nil
}

type memoryRescues struct{ *memoryStore }

func (m memoryRescues) Create(_ context.Context, request *entity.RescueRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	request.ID = m.id()
	m.requests[request.ID] = cloneRequest(request)
	return nil
}

func (m memoryRescues) FindByID(_ context.Context, id uint64) (*entity.RescueRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if item, ok := m.requests[id]; ok {
		return cloneRequest(item), nil
	}
	return nil, nil
}

func (m memoryRescues) ListBySubscription(_ context.Context, subscriptionID uint64) ([]*entity.RescueRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.RescueRequest, 0)
	for id := uint64(1); id <= m.nextID; id++ {
		if item, ok := m.requests[id]; ok && item.SubscriptionID == subscriptionID {
			out = append(out, cloneRequest(item))
		}
	}
	return out, nil
}

func (m memoryRescues) ListByStatus(_ context.Context, status string) ([]*entity.RescueRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.RescueRequest, 0)
	for id := uint64(1); id <= m.nextID; id++ {
		if item, ok := m.requests[id]; ok && item.Status == status {
			out = append(out, cloneRequest(item))
		}
	}
	return out, nil
}

func (m memoryRescues) Reject(_ context.Context, request *entity.RescueRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.requests[request.ID]
	if !ok {
		return repository.ErrRescueRequestNotFound
	}
	if stored.Status != entity.RescueStatusPending {
		return repository.ErrRescueRequestNotPending
	}
	request.Status = entity.RescueStatusRejected
	m.requests[request.ID] = cloneRequest(request)
	return nil
}

type recordingPublisher struct {
	mu   sync.Mutex
	keys []string
	err  error
}

func (p *recordingPublisher) Publish(_ context.Context, routingKey string, _ interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, routingKey)
	return p.err
}

func (p *recordingPublisher) published() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.keys...)
}

type stubLimiter struct {
	decision ratelimit.Decision
	err      error
	calls    int
}

func (l *stubLimiter) Consume(context.Context, string, string) (ratelimit.Decision, error) {
	l.calls++
	return l.decision, l.err
}
