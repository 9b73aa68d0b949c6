package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-secours/app/auth"
	"github.com/vibast-solutions/ms-go-secours/app/entity"
	"github.com/vibast-solutions/ms-go-secours/app/events"
	"github.com/vibast-solutions/ms-go-secours/app/factory"
	"github.com/vibast-solutions/ms-go-secours/app/metrics"
	"github.com/vibast-solutions/ms-go-secours/app/policy"
	"github.com/vibast-solutions/ms-go-secours/app/ratelimit"
	"github.com/vibast-solutions/ms-go-secours/app/repository"
)

const (
	ActionApprove = "approve"
	ActionReject  = "reject"

	rescueRateLimitScope = "rescue_request"
)

type requestRescueRequest interface {
	GetSubscriptionId() uint64
	GetDescription() string
	GetRescueValueFcfa() int64
}

type adjudicateRescueRequest interface {
	GetRescueRequestId() uint64
	GetAction() string
	GetAdminNotes() string
}

type rescueRequestRepository interface {
	Create(ctx context.Context, request *entity.RescueRequest) error
	FindByID(ctx context.Context, id uint64) (*entity.RescueRequest, error)
	ListBySubscription(ctx context.Context, subscriptionID uint64) ([]*entity.RescueRequest, error)
	ListByStatus(ctx context.Context, status string) ([]*entity.RescueRequest, error)
	Reject(ctx context.Context, request *entity.RescueRequest) error
}

type rescueLedger interface {
	ApproveRescue(ctx context.Context, request *entity.RescueRequest, claim *entity.TokenTransaction) (int64, error)
}

type rescueLimiter interface {
	Consume(ctx context.Context, scope, subject string) (ratelimit.Decision, error)
}

type AdjudicationResult struct {
	Request *entity.RescueRequest
	// Claim and Balance are set only for approvals.
	Claim   *entity.TokenTransaction
	Balance int64
}

type RescueService struct {
	subscriptionRepo subscriptionFinder
	rescueRepo       rescueRequestRepository
	ledger           rescueLedger
	limiter          rescueLimiter
	publisher        eventPublisher
	logger           logrus.FieldLogger
}

func NewRescueService(
	subscriptionRepo subscriptionFinder,
	rescueRepo rescueRequestRepository,
	ledger rescueLedger,
	limiter rescueLimiter,
	publisher eventPublisher,
) *RescueService {
	return &RescueService{
		subscriptionRepo: subscriptionRepo,
		rescueRepo:       rescueRepo,
		ledger:           ledger,
		limiter:          limiter,
		publisher:        publisher,
		logger:           factory.NewModuleLogger("rescue-service"),
	}
}

// RequestRescue files a pending claim against an active subscription the
// caller owns. No row is written unless the current balance covers the
// tokens the claim would consume.
func (s *RescueService) RequestRescue(ctx context.Context, caller auth.Caller, req requestRescueRequest) (*entity.RescueRequest, error) {
	subscription, err := findOwnedSubscription(ctx, s.subscriptionRepo, caller, req.GetSubscriptionId(), accessActiveOwner)
	if err != nil {
		return nil, err
	}

	description := strings.TrimSpace(req.GetDescription())
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", ErrInvalidRequest)
	}
	if req.GetRescueValueFcfa() <= 0 {
		return nil, fmt.Errorf("%w: rescue_value_fcfa must be positive", ErrInvalidRequest)
	}
	if req.GetRescueValueFcfa() > policy.MaxRescueValueFCFA {
		return nil, fmt.Errorf("%w: rescue_value_fcfa must be at most %d", ErrInvalidRequest, policy.MaxRescueValueFCFA)
	}

	valuation, err := policy.Lookup(subscription.Category)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, subscription.Category)
	}

	required := valuation.RequiredTokens(req.GetRescueValueFcfa())
	if subscription.TokenBalance < required {
		metrics.RecordRescueRequest("insufficient_tokens")
		return nil, &InsufficientTokensError{Required: required, Current: subscription.TokenBalance}
	}

	// Only attempts that would otherwise be accepted count against the limit.
	if err := s.consumeRateLimit(ctx, caller.UserID); err != nil {
		metrics.RecordRescueRequest("rate_limited")
		return nil, err
	}

	now := time.Now().UTC()
	request := &entity.RescueRequest{
		SubscriptionID:        subscription.ID,
		Description:           description,
		RescueValueFCFA:       req.GetRescueValueFcfa(),
		TokenBalanceAtRequest: subscription.TokenBalance,
		Status:                entity.RescueStatusPending,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := s.rescueRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	metrics.RecordRescueRequest("created")
	s.publishRescueEvent(ctx, events.RoutingRescueRequested, request, subscription, required, subscription.TokenBalance)
	return request, nil
}

// AdjudicateRescue approves or rejects a pending request. Callers without
// rescue:adjudicate see ErrRescueRequestNotFound. An approval the live
// balance no longer covers fails with InsufficientTokensError and leaves the
// request pending.
func (s *RescueService) AdjudicateRescue(ctx context.Context, caller auth.Caller, req adjudicateRescueRequest) (*AdjudicationResult, error) {
	if caller.UserID == "" {
		return nil, ErrUnauthenticated
	}
	if !caller.HasCapability(auth.CapabilityAdjudicateRescue) {
		return nil, ErrRescueRequestNotFound
	}

	action := strings.ToLower(strings.TrimSpace(req.GetAction()))
	if action != ActionApprove && action != ActionReject {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAction, req.GetAction())
	}

	request, err := s.rescueRepo.FindByID(ctx, req.GetRescueRequestId())
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, ErrRescueRequestNotFound
	}
	if request.Status != entity.RescueStatusPending {
		metrics.RecordAdjudication(action, "not_pending")
		return nil, ErrRescueNotPending
	}

	subscription, err := s.subscriptionRepo.FindByID(ctx, request.SubscriptionID)
	if err != nil {
		return nil, err
	}
	if subscription == nil {
		return nil, ErrSubscriptionNotFound
	}

	now := time.Now().UTC()
	update := *request
	update.ProcessedBy = &caller.UserID
	update.ProcessedAt = &now
	update.UpdatedAt = now
	if notes := strings.TrimSpace(req.GetAdminNotes()); notes != "" {
		update.AdminNotes = &notes
	}

	if action == ActionReject {
		return s.reject(ctx, &update, subscription)
	}
	return s.approve(ctx, &update, subscription)
}

func (s *RescueService) reject(ctx context.Context, request *entity.RescueRequest, subscription *entity.Subscription) (*AdjudicationResult, error) {
	if err := s.rescueRepo.Reject(ctx, request); err != nil {
		metrics.RecordAdjudication(ActionReject, "error")
		return nil, mapRescueRepositoryError(err)
	}

	metrics.RecordAdjudication(ActionReject, "ok")
	s.publishRescueEvent(ctx, events.RoutingRescueRejected, request, subscription, 0, subscription.TokenBalance)
	return &AdjudicationResult{Request: request, Balance: subscription.TokenBalance}, nil
}

func (s *RescueService) approve(ctx context.Context, request *entity.RescueRequest, subscription *entity.Subscription) (*AdjudicationResult, error) {
	valuation, err := policy.Lookup(subscription.Category)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, subscription.Category)
	}

	required := valuation.RequiredTokens(request.RescueValueFCFA)
	claim := &entity.TokenTransaction{
		SubscriptionID: subscription.ID,
		Kind:           entity.TransactionKindRescueClaim,
		TokenAmount:    required,
		TokenValueFCFA: valuation.ValueOf(required),
		CreatedAt:      request.UpdatedAt,
	}

	balance, err := s.ledger.ApproveRescue(ctx, request, claim)
	if err != nil {
		var insufficient *repository.InsufficientBalanceError
		if errors.As(err, &insufficient) {
			metrics.RecordAdjudication(ActionApprove, "insufficient_tokens")
			return nil, &InsufficientTokensError{Required: required, Current: insufficient.Balance}
		}
		metrics.RecordAdjudication(ActionApprove, "error")
		return nil, mapRescueRepositoryError(err)
	}

	metrics.RecordAdjudication(ActionApprove, "ok")
	s.publishRescueEvent(ctx, events.RoutingRescueApproved, request, subscription, required, balance)
	return &AdjudicationResult{Request: request, Claim: claim, Balance: balance}, nil
}

func (s *RescueService) ListRescueRequests(ctx context.Context, caller auth.Caller, subscriptionID uint64) ([]*entity.RescueRequest, error) {
	subscription, err := findOwnedSubscription(ctx, s.subscriptionRepo, caller, subscriptionID, accessOwnerOrManager)
	if err != nil {
		return nil, err
	}
	items, err := s.rescueRepo.ListBySubscription(ctx, subscription.ID)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ListRescueRequestsByStatus is the adjudication queue. An empty status
// lists pending requests.
func (s *RescueService) ListRescueRequestsByStatus(ctx context.Context, caller auth.Caller, status string) ([]*entity.RescueRequest, error) {
	if caller.UserID == "" {
		return nil, ErrUnauthenticated
	}
	if !caller.HasCapability(auth.CapabilityAdjudicateRescue) {
		return nil, ErrRescueRequestNotFound
	}

	status = strings.ToLower(strings.TrimSpace(status))
	switch status {
	case "":
		status = entity.RescueStatusPending
	case entity.RescueStatusPending, entity.RescueStatusApproved, entity.RescueStatusRejected:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidRequest, status)
	}

	items, err := s.rescueRepo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// consumeRateLimit fails open when the limiter backend errors.
func (s *RescueService) consumeRateLimit(ctx context.Context, userID string) error {
	if s.limiter == nil {
		return nil
	}
	decision, err := s.limiter.Consume(ctx, rescueRateLimitScope, userID)
	if err != nil {
		s.logger.WithError(err).Warn("rescue rate limiter unavailable")
		return nil
	}
	if !decision.Allowed {
		return &RateLimitedError{RetryAfter: decision.RetryAfter}
	}
	return nil
}

func (s *RescueService) publishRescueEvent(
	ctx context.Context,
	routingKey string,
	request *entity.RescueRequest,
	subscription *entity.Subscription,
	required int64,
	balance int64,
) {
	publish(ctx, s.publisher, s.logger, routingKey, events.RescueEvent{
		RescueRequestID: request.ID,
		SubscriptionID:  subscription.ID,
		UserID:          subscription.UserID,
		RescueValueFCFA: request.RescueValueFCFA,
		RequiredTokens:  required,
		Status:          request.Status,
		Balance:         balance,
		OccurredAt:      request.UpdatedAt,
	})
}

func mapRescueRepositoryError(err error) error {
	switch {
	case errors.Is(err, repository.ErrRescueRequestNotFound):
		return ErrRescueRequestNotFound
	case errors.Is(err, repository.ErrRescueRequestNotPending):
		return ErrRescueNotPending
	case errors.Is(err, repository.ErrSubscriptionNotFound):
		return ErrSubscriptionNotFound
	default:
		return err
	}
}
