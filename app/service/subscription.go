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
	"github.com/vibast-solutions/ms-go-secours/app/policy"
	"github.com/vibast-solutions/ms-go-secours/app/repository"
)

type subscribeRequest interface {
	GetCategory() string
}

type subscriptionRepository interface {
	Create(ctx context.Context, subscription *entity.Subscription) error
	UpdateActivation(ctx context.Context, subscription *entity.Subscription) error
	FindByID(ctx context.Context, id uint64) (*entity.Subscription, error)
	FindByUserAndCategory(ctx context.Context, userID string, category policy.Category) (*entity.Subscription, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Subscription, error)
}

type subscriptionFinder interface {
	FindByID(ctx context.Context, id uint64) (*entity.Subscription, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
}

type SubscriptionService struct {
	subscriptionRepo subscriptionRepository
	publisher        eventPublisher
	logger           logrus.FieldLogger
}

func NewSubscriptionService(subscriptionRepo subscriptionRepository, publisher eventPublisher) *SubscriptionService {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
		publisher:        publisher,
		logger:           factory.NewModuleLogger("subscriptions-service"),
	}
}

func (s *SubscriptionService) ListCategories() []policy.Valuation {
	return policy.Categories()
}

// Subscribe opens a subscription for the caller in the given category. An
// inactive subscription for the same category is reactivated with its ledger
// and balance intact.
func (s *SubscriptionService) Subscribe(ctx context.Context, caller auth.Caller, req subscribeRequest) (*entity.Subscription, error) {
	if caller.UserID == "" {
		return nil, ErrUnauthenticated
	}

	category, err := policy.ParseCategory(req.GetCategory())
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, req.GetCategory())
	}

	existing, err := s.subscriptionRepo.FindByUserAndCategory(ctx, caller.UserID, category)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Active {
		return nil, ErrAlreadySubscribed
	}

	now := time.Now().UTC()
	if existing != nil {
		existing.Active = true
		existing.StartedAt = now
		existing.UpdatedAt = now
		if err := s.subscriptionRepo.UpdateActivation(ctx, existing); err != nil {
			if errors.Is(err, repository.ErrSubscriptionAlreadyExists) {
				return nil, ErrAlreadySubscribed
			}
			if errors.Is(err, repository.ErrSubscriptionNotFound) {
				return nil, ErrSubscriptionNotFound
			}
			return nil, err
		}
		s.publishSubscriptionEvent(ctx, events.RoutingSubscriptionCreated, existing)
		return existing, nil
	}

	subscription := &entity.Subscription{
		UserID:    caller.UserID,
		Category:  category,
		Active:    true,
		StartedAt: now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.subscriptionRepo.Create(ctx, subscription); err != nil {
		if errors.Is(err, repository.ErrSubscriptionAlreadyExists) {
			return nil, ErrAlreadySubscribed
		}
		return nil, err
	}

	s.publishSubscriptionEvent(ctx, events.RoutingSubscriptionCreated, subscription)
	return subscription, nil
}

func (s *SubscriptionService) GetSubscription(ctx context.Context, caller auth.Caller, id uint64) (*entity.Subscription, error) {
	return findOwnedSubscription(ctx, s.subscriptionRepo, caller, id, accessOwnerOrManager)
}

// GetSubscriptionByCategory returns nil without error when the caller has no
// subscription in the category.
func (s *SubscriptionService) GetSubscriptionByCategory(ctx context.Context, caller auth.Caller, rawCategory string) (*entity.Subscription, error) {
	if caller.UserID == "" {
		return nil, ErrUnauthenticated
	}
	category, err := policy.ParseCategory(rawCategory)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, rawCategory)
	}
	return s.subscriptionRepo.FindByUserAndCategory(ctx, caller.UserID, category)
}

func (s *SubscriptionService) ListSubscriptions(ctx context.Context, caller auth.Caller) ([]*entity.Subscription, error) {
	if caller.UserID == "" {
		return nil, ErrUnauthenticated
	}
	items, err := s.subscriptionRepo.ListByUser(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// DeactivateSubscription is idempotent.
func (s *SubscriptionService) DeactivateSubscription(ctx context.Context, caller auth.Caller, id uint64) (*entity.Subscription, error) {
	subscription, err := findOwnedSubscription(ctx, s.subscriptionRepo, caller, id, accessOwnerOrManager)
	if err != nil {
		return nil, err
	}
	if !subscription.Active {
		return subscription, nil
	}

	subscription.Active = false
	subscription.UpdatedAt = time.Now().UTC()
	if err := s.subscriptionRepo.UpdateActivation(ctx, subscription); err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}

	s.publishSubscriptionEvent(ctx, events.RoutingSubscriptionDeactivated, subscription)
	return subscription, nil
}

func (s *SubscriptionService) publishSubscriptionEvent(ctx context.Context, routingKey string, subscription *entity.Subscription) {
	publish(ctx, s.publisher, s.logger, routingKey, events.SubscriptionEvent{
		SubscriptionID: subscription.ID,
		UserID:         subscription.UserID,
		Category:       string(subscription.Category),
		OccurredAt:     subscription.UpdatedAt,
	})
}

type subscriptionAccess int

const (
	// accessOwnerOrManager admits the owner and holders of subscriptions:manage.
	accessOwnerOrManager subscriptionAccess = iota
	// accessActiveOwner admits only the owner, and only while active.
	accessActiveOwner
)

// findOwnedSubscription hides subscriptions the caller may not use behind
// ErrSubscriptionNotFound.
func findOwnedSubscription(ctx context.Context, repo subscriptionFinder, caller auth.Caller, id uint64, access subscriptionAccess) (*entity.Subscription, error) {
	if caller.UserID == "" {
		return nil, ErrUnauthenticated
	}

	subscription, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if subscription == nil {
		return nil, ErrSubscriptionNotFound
	}

	owner := subscription.UserID == caller.UserID
	switch access {
	case accessActiveOwner:
		if !owner || !subscription.Active {
			return nil, ErrSubscriptionNotFound
		}
	default:
		if !owner && !caller.HasCapability(auth.CapabilityManageSubscriptions) {
			return nil, ErrSubscriptionNotFound
		}
	}
	return subscription, nil
}

func publish(ctx context.Context, publisher eventPublisher, logger logrus.FieldLogger, routingKey string, payload interface{}) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, routingKey, payload); err != nil {
		logger.WithError(err).WithField("routing_key", routingKey).Warn("event publish failed")
	}
}
