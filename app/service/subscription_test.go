package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/vibast-solutions/ms-go-secours/app/auth"
	"github.com/vibast-solutions/ms-go-secours/app/entity"
	"github.com/vibast-solutions/ms-go-secours/app/events"
	"github.com/vibast-solutions/ms-go-secours/app/policy"
	"github.com/vibast-solutions/ms-go-secours/app/types"
)

func member(userID string) auth.Caller {
	return auth.Caller{UserID: userID}
}

func TestListCategories(t *testing.T) {
	svc := NewSubscriptionService(newMemoryStore(), nil)
	categories := svc.ListCategories()
	if len(categories) != 5 {
		t.Fatalf("expected 5 categories, got %d", len(categories))
	}
	if categories[2].Category != policy.CategoryAutomobile || categories[2].TokenValueFCFA != 750 {
		t.Fatalf("unexpected automobile row: %+v", categories[2])
	}
}

func TestSubscribeCreatesActiveSubscription(t *testing.T) {
	store := newMemoryStore()
	publisher := &recordingPublisher{}
	svc := NewSubscriptionService(store, publisher)

	item, err := svc.Subscribe(context.Background(), member("u1"), &types.SubscribeRequest{Category: "two-wheeler"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if item.ID == 0 || !item.Active || item.TokenBalance != 0 {
		t.Fatalf("unexpected subscription: %+v", item)
	}
	if item.Category != policy.CategoryTwoWheeler {
		t.Fatalf("expected two_wheeler, got %s", item.Category)
	}
	if got := publisher.published(); len(got) != 1 || got[0] != events.RoutingSubscriptionCreated {
		t.Fatalf("unexpected events: %v", got)
	}
}

func TestSubscribeRejectsDuplicateWithoutCreatingRow(t *testing.T) {
	store := newMemoryStore()
	store.seedSubscription("u1", policy.CategoryTelephone, 0)
	svc := NewSubscriptionService(store, nil)

	_, err := svc.Subscribe(context.Background(), member("u1"), &types.SubscribeRequest{Category: "telephone"})
	if !errors.Is(err, ErrAlreadySubscribed) {
		t.Fatalf("expected ErrAlreadySubscribed, got %v", err)
	}
	if store.subscriptionCount() != 1 {
		t.Fatalf("expected a single subscription row, got %d", store.subscriptionCount())
	}
}

func TestSubscribeAllowsSameCategoryForOtherUser(t *testing.T) {
	store := newMemoryStore()
	store.seedSubscription("u1", policy.CategoryTelephone, 0)
	svc := NewSubscriptionService(store, nil)

	if _, err := svc.Subscribe(context.Background(), member("u2"), &types.SubscribeRequest{Category: "telephone"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestSubscribeRejectsUnknownCategory(t *testing.T) {
	svc := NewSubscriptionService(newMemoryStore(), nil)
	_, err := svc.Subscribe(context.Background(), member("u1"), &types.SubscribeRequest{Category: "boat"})
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestSubscribeRequiresCaller(t *testing.T) {
	svc := NewSubscriptionService(newMemoryStore(), nil)
	_, err := svc.Subscribe(context.Background(), auth.Caller{}, &types.SubscribeRequest{Category: "telephone"})
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestSubscribeReactivatesKeepingBalance(t *testing.T) {
	store := newMemoryStore()
	seeded := store.seedSubscription("u1", policy.CategoryAutomobile, 12)
	svc := NewSubscriptionService(store, nil)

	if _, err := svc.DeactivateSubscription(context.Background(), member("u1"), seeded.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	item, err := svc.Subscribe(context.Background(), member("u1"), &types.SubscribeRequest{Category: "automobile"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if item.ID != seeded.ID || !item.Active || item.TokenBalance != 12 {
		t.Fatalf("unexpected reactivated subscription: %+v", item)
	}
}

// staleLookupStore answers lookups with an inactive snapshot, as a caller that
// read the row just before a concurrent reactivation would see it.
type staleLookupStore struct{ *memoryStore }

func (s staleLookupStore) FindByUserAndCategory(ctx context.Context, userID string, category policy.Category) (*entity.Subscription, error) {
	item, err := s.memoryStore.FindByUserAndCategory(ctx, userID, category)
	if item != nil {
		item.Active = false
	}
	return item, err
}

func TestSubscribeReactivationLostRaceIsAlreadySubscribed(t *testing.T) {
	store := newMemoryStore()
	seeded := store.seedSubscription("u1", policy.CategoryAutomobile, 12)
	publisher := &recordingPublisher{}
	svc := NewSubscriptionService(staleLookupStore{store}, publisher)

	_, err := svc.Subscribe(context.Background(), member("u1"), &types.SubscribeRequest{Category: "automobile"})
	if !errors.Is(err, ErrAlreadySubscribed) {
		t.Fatalf("expected ErrAlreadySubscribed, got %v", err)
	}
	if got := publisher.published(); len(got) != 0 {
		t.Fatalf("expected no events, got %v", got)
	}
	if store.balance(seeded.ID) != 12 {
		t.Fatalf("expected balance 12, got %d", store.balance(seeded.ID))
	}
}

func TestConcurrentReactivationsAdmitOne(t *testing.T) {
	store := newMemoryStore()
	seeded := store.seedSubscription("u1", policy.CategoryTelephone, 5)
	svc := NewSubscriptionService(store, nil)
	if _, err := svc.DeactivateSubscription(context.Background(), member("u1"), seeded.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Subscribe(context.Background(), member("u1"), &types.SubscribeRequest{Category: "telephone"})
			if err != nil && !errors.Is(err, ErrAlreadySubscribed) {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if succeeded != 1 {
		t.Fatalf("expected exactly one reactivation, got %d", succeeded)
	}
	if store.subscriptionCount() != 1 {
		t.Fatalf("expected a single subscription row, got %d", store.subscriptionCount())
	}
}

func TestSubscribeReturnsRepositoryError(t *testing.T) {
	store := newMemoryStore()
	store.createErr = errors.New("db down")
	svc := NewSubscriptionService(store, nil)

	_, err := svc.Subscribe(context.Background(), member("u1"), &types.SubscribeRequest{Category: "telephone"})
	if err == nil || errors.Is(err, ErrAlreadySubscribed) {
		t.Fatalf("expected raw repository error, got %v", err)
	}
}

func TestGetSubscriptionHidesOtherUsers(t *testing.T) {
	store := newMemoryStore()
	seeded := store.seedSubscription("u1", policy.CategoryTelephone, 0)
	svc := NewSubscriptionService(store, nil)

	if _, err := svc.GetSubscription(context.Background(), member("u2"), seeded.ID); !errors.Is(err, ErrSubscriptionNotFound) {
		t.Fatalf("expected ErrSubscriptionNotFound, got %v", err)
	}

	manager := auth.Caller{UserID: "ops", Capabilities: []string{auth.CapabilityManageSubscriptions}}
	item, err := svc.GetSubscription(context.Background(), manager, seeded.ID)
	if err != nil || item.ID != seeded.ID {
		t.Fatalf("expected manager to read subscription, got %v %v", item, err)
	}
}

func TestGetSubscriptionByCategory(t *testing.T) {
	store := newMemoryStore()
	seeded := store.seedSubscription("u1", policy.CategorySchoolFees, 3)
	svc := NewSubscriptionService(store, nil)

	item, err := svc.GetSubscriptionByCategory(context.Background(), member("u1"), "school_fees")
	if err != nil || item == nil || item.ID != seeded.ID {
		t.Fatalf("expected seeded subscription, got %v %v", item, err)
	}

	item, err = svc.GetSubscriptionByCategory(context.Background(), member("u1"), "telephone")
	if err != nil || item != nil {
		t.Fatalf("expected nil without error, got %v %v", item, err)
	}
}

func TestListSubscriptionsOnlyCallers(t *testing.T) {
	store := newMemoryStore()
	store.seedSubscription("u1", policy.CategoryTelephone, 0)
	store.seedSubscription("u2", policy.CategoryTelephone, 0)
	store.seedSubscription("u1", policy.CategoryAutomobile, 0)
	svc := NewSubscriptionService(store, nil)

	items, err := svc.ListSubscriptions(context.Background(), member("u1"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 subscriptions, got %d", len(items))
	}
}

func TestDeactivateSubscriptionIsIdempotent(t *testing.T) {
	store := newMemoryStore()
	seeded := store.seedSubscription("u1", policy.CategoryTelephone, 0)
	publisher := &recordingPublisher{}
	svc := NewSubscriptionService(store, publisher)

	for i := 0; i < 2; i++ {
		item, err := svc.DeactivateSubscription(context.Background(), member("u1"), seeded.ID)
		if err != nil {
			t.Fatalf("attempt %d: %v", i, err)
		}
		if item.Active {
			t.Fatalf("attempt %d: expected inactive subscription", i)
		}
	}
	if got := publisher.published(); len(got) != 1 || got[0] != events.RoutingSubscriptionDeactivated {
		t.Fatalf("expected a single deactivation event, got %v", got)
	}
}

func TestPublishFailureDoesNotFailOperation(t *testing.T) {
	publisher := &recordingPublisher{err: errors.New("broker down")}
	svc := NewSubscriptionService(newMemoryStore(), publisher)

	if _, err := svc.Subscribe(context.Background(), member("u1"), &types.SubscribeRequest{Category: "telephone"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
