package grpc

import (
	"context"
	"errors"
	"testing"

	"github.com/vibast-solutions/ms-go-secours/app/auth"
	"github.com/vibast-solutions/ms-go-secours/app/entity"
	"github.com/vibast-solutions/ms-go-secours/app/policy"
	"github.com/vibast-solutions/ms-go-secours/app/repository"
	"github.com/vibast-solutions/ms-go-secours/app/service"
	"github.com/vibast-solutions/ms-go-secours/app/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type grpcSubRepo struct {
	createFn                func(ctx context.Context, subscription *entity.Subscription) error
	findByIDFn              func(ctx context.Context, id uint64) (*entity.Subscription, error)
	findByUserAndCategoryFn func(ctx context.Context, userID string, category policy.Category) (*entity.Subscription, error)
	listByUserFn            func(ctx context.Context, userID string) ([]*entity.Subscription, error)
}

func (r *grpcSubRepo) Create(ctx context.Context, subscription *entity.Subscription) error {
	if r.createFn != nil {
		return r.createFn(ctx, subscription)
	}
	return nil
}

func (r *grpcSubRepo) UpdateActivation(context.Context, *entity.Subscription) error {
	return nil
}

func (r *grpcSubRepo) FindByID(ctx context.Context, id uint64) (*entity.Subscription, error) {
	if r.findByIDFn != nil {
		return r.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (r *grpcSubRepo) FindByUserAndCategory(ctx context.Context, userID string, category policy.Category) (*entity.Subscription, error) {
	if r.findByUserAndCategoryFn != nil {
		return r.findByUserAndCategoryFn(ctx, userID, category)
	}
	return nil, nil
}

func (r *grpcSubRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Subscription, error) {
	if r.listByUserFn != nil {
		return r.listByUserFn(ctx, userID)
	}
	return nil, nil
}

type grpcLedger struct {
	applyPurchaseFn func(ctx context.Context, txn *entity.TokenTransaction) (int64, error)
	approveRescueFn func(ctx context.Context, request *entity.RescueRequest, claim *entity.TokenTransaction) (int64, error)
}

func (l *grpcLedger) ApplyPurchase(ctx context.Context, txn *entity.TokenTransaction) (int64, error) {
	if l.applyPurchaseFn != nil {
		return l.applyPurchaseFn(ctx, txn)
	}
	return 0, nil
}

func (l *grpcLedger) ApproveRescue(ctx context.Context, request *entity.RescueRequest, claim *entity.TokenTransaction) (int64, error) {
	if l.approveRescueFn != nil {
		return l.approveRescueFn(ctx, request, claim)
	}
	return 0, nil
}

type grpcTxnRepo struct{}

func (grpcTxnRepo) ListBySubscription(context.Context, uint64) ([]*entity.TokenTransaction, error) {
	return nil, nil
}

type grpcRescueRepo struct {
	findByIDFn func(ctx context.Context, id uint64) (*entity.RescueRequest, error)
	rejectFn   func(ctx context.Context, request *entity.RescueRequest) error
}

func (r *grpcRescueRepo) Create(_ context.Context, request *entity.RescueRequest) error {
	request.ID = 1
	return nil
}

func (r *grpcRescueRepo) FindByID(ctx context.Context, id uint64) (*entity.RescueRequest, error) {
	if r.findByIDFn != nil {
		return r.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (r *grpcRescueRepo) ListBySubscription(context.Context, uint64) ([]*entity.RescueRequest, error) {
	return nil, nil
}

func (r *grpcRescueRepo) ListByStatus(context.Context, string) ([]*entity.RescueRequest, error) {
	return nil, nil
}

func (r *grpcRescueRepo) Reject(ctx context.Context, request *entity.RescueRequest) error {
	if r.rejectFn != nil {
		return r.rejectFn(ctx, request)
	}
	request.Status = entity.RescueStatusRejected
	return nil
}

func newGRPCServerForTest(subRepo *grpcSubRepo, ledger *grpcLedger, rescueRepo *grpcRescueRepo) *Server {
	return NewServer(
		service.NewSubscriptionService(subRepo, nil),
		service.NewPurchaseService(subRepo, ledger, grpcTxnRepo{}, nil),
		service.NewRescueService(subRepo, rescueRepo, ledger, nil, nil),
	)
}

func memberContext() context.Context {
	return auth.WithCaller(context.Background(), auth.Caller{UserID: "u1"})
}

func adminContext() context.Context {
	return auth.WithCaller(context.Background(), auth.Caller{UserID: "admin", Capabilities: []string{auth.CapabilityAdjudicateRescue}})
}

func ownedTelephone(balance int64) func(context.Context, uint64) (*entity.Subscription, error) {
	return func(_ context.Context, id uint64) (*entity.Subscription, error) {
		return &entity.Subscription{ID: id, UserID: "u1", Category: policy.CategoryTelephone, Active: true, TokenBalance: balance}, nil
	}
}

func TestSubscribeInvalidArgument(t *testing.T) {
	srv := newGRPCServerForTest(&grpcSubRepo{}, &grpcLedger{}, &grpcRescueRepo{})
	_, err := srv.Subscribe(memberContext(), &types.SubscribeRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestSubscribeUnauthenticated(t *testing.T) {
	srv := newGRPCServerForTest(&grpcSubRepo{}, &grpcLedger{}, &grpcRescueRepo{})
	_, err := srv.Subscribe(context.Background(), &types.SubscribeRequest{Category: "telephone"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}
}

func TestSubscribeAlreadyExists(t *testing.T) {
	srv := newGRPCServerForTest(&grpcSubRepo{
		createFn: func(context.Context, *entity.Subscription) error { return repository.ErrSubscriptionAlreadyExists },
	}, &grpcLedger{}, &grpcRescueRepo{})

	_, err := srv.Subscribe(memberContext(), &types.SubscribeRequest{Category: "telephone"})
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("expected AlreadyExists, got %v", err)
	}
}

func TestGetSubscriptionByCategoryAbsent(t *testing.T) {
	srv := newGRPCServerForTest(&grpcSubRepo{}, &grpcLedger{}, &grpcRescueRepo{})
	resp, err := srv.GetSubscriptionByCategory(memberContext(), &types.GetSubscriptionByCategoryRequest{Category: "telephone"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.GetSubscription() != nil {
		t.Fatalf("expected empty subscription, got %+v", resp.GetSubscription())
	}
}

func TestPurchaseTokensSuccess(t *testing.T) {
	srv := newGRPCServerForTest(&grpcSubRepo{findByIDFn: ownedTelephone(5)}, &grpcLedger{
		applyPurchaseFn: func(_ context.Context, txn *entity.TokenTransaction) (int64, error) {
			return 5 + txn.TokenAmount, nil
		},
	}, &grpcRescueRepo{})

	resp, err := srv.PurchaseTokens(memberContext(), &types.PurchaseTokensRequest{SubscriptionId: 2, TokenAmount: 30, PaymentMethod: "mtn_momo"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.GetTokenBalance() != 35 || resp.GetTransaction().TokenValueFcfa != 7500 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestPurchaseTokensInternalError(t *testing.T) {
	srv := newGRPCServerForTest(&grpcSubRepo{findByIDFn: ownedTelephone(0)}, &grpcLedger{
		applyPurchaseFn: func(context.Context, *entity.TokenTransaction) (int64, error) {
			return 0, errors.New("db down")
		},
	}, &grpcRescueRepo{})

	_, err := srv.PurchaseTokens(memberContext(), &types.PurchaseTokensRequest{SubscriptionId: 2, TokenAmount: 30, PaymentMethod: "cash"})
	if status.Code(err) != codes.Internal {
		t.Fatalf("expected Internal, got %v", err)
	}
}

func TestRequestRescueInsufficientTokensDetails(t *testing.T) {
	srv := newGRPCServerForTest(&grpcSubRepo{findByIDFn: ownedTelephone(10)}, &grpcLedger{}, &grpcRescueRepo{})

	_, err := srv.RequestRescue(memberContext(), &types.RequestRescueRequest{SubscriptionId: 2, Description: "screen", RescueValueFcfa: 2600})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition, got %v", err)
	}
	info, ok := ErrorInfoFromStatus(err)
	if !ok {
		t.Fatal("expected ErrorInfo details")
	}
	if info.GetReason() != ReasonInsufficientTokens || info.GetMetadata()["required_tokens"] != "11" || info.GetMetadata()["current_balance"] != "10" {
		t.Fatalf("unexpected details: %+v", info)
	}
}

func TestAdjudicateRescueNotPending(t *testing.T) {
	srv := newGRPCServerForTest(&grpcSubRepo{findByIDFn: ownedTelephone(40)}, &grpcLedger{}, &grpcRescueRepo{
		findByIDFn: func(_ context.Context, id uint64) (*entity.RescueRequest, error) {
			return &entity.RescueRequest{ID: id, SubscriptionID: 2, Status: entity.RescueStatusApproved}, nil
		},
	})

	_, err := srv.AdjudicateRescue(adminContext(), &types.AdjudicateRescueRequest{RescueRequestId: 4, Action: "reject"})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition, got %v", err)
	}
}

func TestAdjudicateRescueReject(t *testing.T) {
	srv := newGRPCServerForTest(&grpcSubRepo{findByIDFn: ownedTelephone(40)}, &grpcLedger{}, &grpcRescueRepo{
		findByIDFn: func(_ context.Context, id uint64) (*entity.RescueRequest, error) {
			return &entity.RescueRequest{ID: id, SubscriptionID: 2, RescueValueFCFA: 5000, Status: entity.RescueStatusPending}, nil
		},
	})

	resp, err := srv.AdjudicateRescue(adminContext(), &types.AdjudicateRescueRequest{RescueRequestId: 4, Action: "reject", AdminNotes: "no receipt"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.GetRescueRequest().GetStatus() != entity.RescueStatusRejected || resp.GetRescueRequest().AdminNotes != "no receipt" {
		t.Fatalf("unexpected response: %+v", resp.GetRescueRequest())
	}
	if resp.GetTokenBalance() != 40 {
		t.Fatalf("expected untouched balance 40, got %d", resp.GetTokenBalance())
	}
}

func TestListRescueRequestsByStatusHiddenFromMembers(t *testing.T) {
	srv := newGRPCServerForTest(&grpcSubRepo{}, &grpcLedger{}, &grpcRescueRepo{})
	_, err := srv.ListRescueRequestsByStatus(memberContext(), &types.ListRescueRequestsByStatusRequest{})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}
