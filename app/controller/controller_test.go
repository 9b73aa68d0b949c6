package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/vibast-solutions/ms-go-secours/app/auth"
	"github.com/vibast-solutions/ms-go-secours/app/entity"
	"github.com/vibast-solutions/ms-go-secours/app/policy"
	"github.com/vibast-solutions/ms-go-secours/app/repository"
	"github.com/vibast-solutions/ms-go-secours/app/service"
)

type controllerSubRepo struct {
	createFn                func(ctx context.Context, subscription *entity.Subscription) error
	findByIDFn              func(ctx context.Context, id uint64) (*entity.Subscription, error)
	findByUserAndCategoryFn func(ctx context.Context, userID string, category policy.Category) (*entity.Subscription, error)
}

func (r *controllerSubRepo) Create(ctx context.Context, subscription *entity.Subscription) error {
	if r.createFn != nil {
		return r.createFn(ctx, subscription)
	}
	return nil
}

func (r *controllerSubRepo) UpdateActivation(context.Context, *entity.Subscription) error {
	return nil
}

func (r *controllerSubRepo) FindByID(ctx context.Context, id uint64) (*entity.Subscription, error) {
	if r.findByIDFn != nil {
		return r.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (r *controllerSubRepo) FindByUserAndCategory(ctx context.Context, userID string, category policy.Category) (*entity.Subscription, error) {
	if r.findByUserAndCategoryFn != nil {
		return r.findByUserAndCategoryFn(ctx, userID, category)
	}
	return nil, nil
}

func (r *controllerSubRepo) ListByUser(context.Context, string) ([]*entity.Subscription, error) {
	return nil, nil
}

type controllerLedger struct {
	applyPurchaseFn func(ctx context.Context, txn *entity.TokenTransaction) (int64, error)
	approveRescueFn func(ctx context.Context, request *entity.RescueRequest, claim *entity.TokenTransaction) (int64, error)
}

func (l *controllerLedger) ApplyPurchase(ctx context.Context, txn *entity.TokenTransaction) (int64, error) {
	if l.applyPurchaseFn != nil {
		return l.applyPurchaseFn(ctx, txn)
	}
	return 0, nil
}

func (l *controllerLedger) ApproveRescue(ctx context.Context, request *entity.RescueRequest, claim *entity.TokenTransaction) (int64, error) {
	if l.approveRescueFn != nil {
		return l.approveRescueFn(ctx, request, claim)
	}
	return 0, nil
}

type controllerTxnRepo struct{}

func (controllerTxnRepo) ListBySubscription(context.Context, uint64) ([]*entity.TokenTransaction, error) {
	return nil, nil
}

type controllerRescueRepo struct {
	findByIDFn func(ctx context.Context, id uint64) (*entity.RescueRequest, error)
}

func (r *controllerRescueRepo) Create(_ context.Context, request *entity.RescueRequest) error {
	request.ID = 1
	return nil
}

func (r *controllerRescueRepo) FindByID(ctx context.Context, id uint64) (*entity.RescueRequest, error) {
	if r.findByIDFn != nil {
		return r.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (r *controllerRescueRepo) ListBySubscription(context.Context, uint64) ([]*entity.RescueRequest, error) {
	return nil, nil
}

func (r *controllerRescueRepo) ListByStatus(context.Context, string) ([]*entity.RescueRequest, error) {
	return nil, nil
}

func (r *controllerRescueRepo) Reject(context.Context, *entity.RescueRequest) error {
	return nil
}

func activeAutomobile(balance int64) func(context.Context, uint64) (*entity.Subscription, error) {
	return func(_ context.Context, id uint64) (*entity.Subscription, error) {
		return &entity.Subscription{ID: id, UserID: "u1", Category: policy.CategoryAutomobile, Active: true, TokenBalance: balance}, nil
	}
}

func newRequest(method, target, body string, caller *auth.Caller) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if caller != nil {
		req = req.WithContext(auth.WithCaller(req.Context(), *caller))
	}
	return req, httptest.NewRecorder()
}

func withID(ctx echo.Context, id string) echo.Context {
	ctx.SetParamNames("id")
	ctx.SetParamValues(id)
	return ctx
}

var member = &auth.Caller{UserID: "u1"}

func TestSubscribeBadBody(t *testing.T) {
	ctrl := NewSubscriptionController(service.NewSubscriptionService(&controllerSubRepo{}, nil))
	e := echo.New()
	req, rec := newRequest(http.MethodPost, "/subscriptions", "{bad", member)

	if err := ctrl.Subscribe(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSubscribeWithoutCaller(t *testing.T) {
	ctrl := NewSubscriptionController(service.NewSubscriptionService(&controllerSubRepo{}, nil))
	e := echo.New()
	req, rec := newRequest(http.MethodPost, "/subscriptions", `{"category":"automobile"}`, nil)

	_ = ctrl.Subscribe(e.NewContext(req, rec))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestSubscribeUnknownCategory(t *testing.T) {
	ctrl := NewSubscriptionController(service.NewSubscriptionService(&controllerSubRepo{}, nil))
	e := echo.New()
	req, rec := newRequest(http.MethodPost, "/subscriptions", `{"category":"boat"}`, member)

	_ = ctrl.Subscribe(e.NewContext(req, rec))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSubscribeAlreadySubscribed(t *testing.T) {
	repo := &controllerSubRepo{
		findByUserAndCategoryFn: func(context.Context, string, policy.Category) (*entity.Subscription, error) {
			return &entity.Subscription{ID: 3, UserID: "u1", Active: true}, nil
		},
	}
	ctrl := NewSubscriptionController(service.NewSubscriptionService(repo, nil))
	e := echo.New()
	req, rec := newRequest(http.MethodPost, "/subscriptions", `{"category":"automobile"}`, member)

	_ = ctrl.Subscribe(e.NewContext(req, rec))
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestSubscribeSuccess(t *testing.T) {
	repo := &controllerSubRepo{
		createFn: func(_ context.Context, s *entity.Subscription) error {
			s.ID = 77
			return nil
		},
	}
	ctrl := NewSubscriptionController(service.NewSubscriptionService(repo, nil))
	e := echo.New()
	req, rec := newRequest(http.MethodPost, "/subscriptions", `{"category":"automobile"}`, member)

	_ = ctrl.Subscribe(e.NewContext(req, rec))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}

	var payload struct {
		Subscription struct {
			ID           uint64 `json:"id"`
			Category     string `json:"category"`
			TokenBalance int64  `json:"token_balance"`
		} `json:"subscription"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if payload.Subscription.ID != 77 || payload.Subscription.Category != "automobile" || payload.Subscription.TokenBalance != 0 {
		t.Fatalf("unexpected payload: %s", rec.Body.String())
	}
}

func TestGetSubscriptionOwnedByAnotherUser(t *testing.T) {
	repo := &controllerSubRepo{findByIDFn: activeAutomobile(0)}
	ctrl := NewSubscriptionController(service.NewSubscriptionService(repo, nil))
	e := echo.New()
	req, rec := newRequest(http.MethodGet, "/subscriptions/5", "", &auth.Caller{UserID: "u2"})

	_ = ctrl.GetSubscription(withID(e.NewContext(req, rec), "5"))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestListCategories(t *testing.T) {
	ctrl := NewSubscriptionController(service.NewSubscriptionService(&controllerSubRepo{}, nil))
	e := echo.New()
	req, rec := newRequest(http.MethodGet, "/categories", "", nil)

	_ = ctrl.ListCategories(e.NewContext(req, rec))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var payload struct {
		Categories []struct {
			Category string `json:"category"`
		} `json:"categories"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(payload.Categories) != 5 {
		t.Fatalf("expected 5 categories, got %d", len(payload.Categories))
	}
}

func newTokenController(repo *controllerSubRepo, ledger *controllerLedger) *TokenController {
	return NewTokenController(service.NewPurchaseService(repo, ledger, controllerTxnRepo{}, nil))
}

func TestPurchaseTokensOutOfBounds(t *testing.T) {
	ctrl := newTokenController(&controllerSubRepo{findByIDFn: activeAutomobile(0)}, &controllerLedger{})
	e := echo.New()
	req, rec := newRequest(http.MethodPost, "/subscriptions/5/tokens", `{"token_amount":61,"payment_method":"wave"}`, member)

	_ = ctrl.PurchaseTokens(withID(e.NewContext(req, rec), "5"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPurchaseTokensSuccess(t *testing.T) {
	ledger := &controllerLedger{
		applyPurchaseFn: func(_ context.Context, txn *entity.TokenTransaction) (int64, error) {
			txn.ID = 10
			return txn.TokenAmount, nil
		},
	}
	ctrl := newTokenController(&controllerSubRepo{findByIDFn: activeAutomobile(0)}, ledger)
	e := echo.New()
	req, rec := newRequest(http.MethodPost, "/subscriptions/5/tokens", `{"token_amount":40,"payment_method":"orange_money"}`, member)

	_ = ctrl.PurchaseTokens(withID(e.NewContext(req, rec), "5"))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}

	var payload struct {
		Transaction struct {
			TokenValueFcfa int64  `json:"token_value_fcfa"`
			Reference      string `json:"reference"`
		} `json:"transaction"`
		TokenBalance int64 `json:"token_balance"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if payload.Transaction.TokenValueFcfa != 30000 || payload.TokenBalance != 40 || payload.Transaction.Reference == "" {
		t.Fatalf("unexpected payload: %s", rec.Body.String())
	}
}

func newRescueController(subRepo *controllerSubRepo, rescueRepo *controllerRescueRepo, ledger *controllerLedger) *RescueController {
	return NewRescueController(service.NewRescueService(subRepo, rescueRepo, ledger, nil, nil))
}

func TestRequestRescueInsufficientTokens(t *testing.T) {
	ctrl := newRescueController(&controllerSubRepo{findByIDFn: activeAutomobile(10)}, &controllerRescueRepo{}, &controllerLedger{})
	e := echo.New()
	req, rec := newRequest(http.MethodPost, "/subscriptions/5/rescue-requests", `{"description":"engine failure","rescue_value_fcfa":22500}`, member)

	_ = ctrl.RequestRescue(withID(e.NewContext(req, rec), "5"))
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}

	var payload struct {
		RequiredTokens int64 `json:"required_tokens"`
		CurrentBalance int64 `json:"current_balance"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if payload.RequiredTokens != 30 || payload.CurrentBalance != 10 {
		t.Fatalf("unexpected payload: %s", rec.Body.String())
	}
}

func TestAdjudicateWithoutCapability(t *testing.T) {
	ctrl := newRescueController(&controllerSubRepo{}, &controllerRescueRepo{}, &controllerLedger{})
	e := echo.New()
	req, rec := newRequest(http.MethodPost, "/rescue-requests/9/adjudicate", `{"action":"approve"}`, member)

	_ = ctrl.AdjudicateRescue(withID(e.NewContext(req, rec), "9"))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAdjudicateApproveInsufficientTokens(t *testing.T) {
	rescueRepo := &controllerRescueRepo{
		findByIDFn: func(_ context.Context, id uint64) (*entity.RescueRequest, error) {
			return &entity.RescueRequest{ID: id, SubscriptionID: 5, RescueValueFCFA: 26250, Status: entity.RescueStatusPending}, nil
		},
	}
	ledger := &controllerLedger{
		approveRescueFn: func(context.Context, *entity.RescueRequest, *entity.TokenTransaction) (int64, error) {
			return 0, &repository.InsufficientBalanceError{Balance: 20}
		},
	}
	ctrl := newRescueController(&controllerSubRepo{findByIDFn: activeAutomobile(40)}, rescueRepo, ledger)
	e := echo.New()
	admin := &auth.Caller{UserID: "admin", Capabilities: []string{auth.CapabilityAdjudicateRescue}}
	req, rec := newRequest(http.MethodPost, "/rescue-requests/9/adjudicate", `{"action":"approve"}`, admin)

	_ = ctrl.AdjudicateRescue(withID(e.NewContext(req, rec), "9"))
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	var payload struct {
		RequiredTokens int64 `json:"required_tokens"`
		CurrentBalance int64 `json:"current_balance"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if payload.RequiredTokens != 35 || payload.CurrentBalance != 20 {
		t.Fatalf("unexpected payload: %s", rec.Body.String())
	}
}

func TestAdjudicateInvalidAction(t *testing.T) {
	ctrl := newRescueController(&controllerSubRepo{}, &controllerRescueRepo{}, &controllerLedger{})
	e := echo.New()
	admin := &auth.Caller{UserID: "admin", Capabilities: []string{auth.CapabilityAdjudicateRescue}}
	req, rec := newRequest(http.MethodPost, "/rescue-requests/9/adjudicate", `{"action":"cancel"}`, admin)

	_ = ctrl.AdjudicateRescue(withID(e.NewContext(req, rec), "9"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
