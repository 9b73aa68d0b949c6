package grpc

import (
	"context"

	"github.com/vibast-solutions/ms-go-secours/app/auth"
	"github.com/vibast-solutions/ms-go-secours/app/mapper"
	"github.com/vibast-solutions/ms-go-secours/app/service"
	"github.com/vibast-solutions/ms-go-secours/app/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	types.UnimplementedSecoursServiceServer
	subscriptionService *service.SubscriptionService
	purchaseService     *service.PurchaseService
	rescueService       *service.RescueService
}

func NewServer(
	subscriptionService *service.SubscriptionService,
	purchaseService *service.PurchaseService,
	rescueService *service.RescueService,
) *Server {
	return &Server{
		subscriptionService: subscriptionService,
		purchaseService:     purchaseService,
		rescueService:       rescueService,
	}
}

func callerFrom(ctx context.Context) auth.Caller {
	caller, _ := auth.CallerFromContext(ctx)
	return caller
}

func (s *Server) ListCategories(_ context.Context, _ *types.ListCategoriesRequest) (*types.ListCategoriesResponse, error) {
	return &types.ListCategoriesResponse{
		Categories: mapper.CategoriesToProto(s.subscriptionService.ListCategories()),
	}, nil
}

func (s *Server) Subscribe(ctx context.Context, req *types.SubscribeRequest) (*types.SubscriptionEnvelopeResponse, error) {
	if err := req.Validate(); err != nil {
		loggerWithContext(ctx).WithError(err).Debug("Subscribe validation failed")
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	item, err := s.subscriptionService.Subscribe(ctx, callerFrom(ctx), req)
	if err != nil {
		return nil, toStatusError(ctx, err, "Subscribe")
	}
	return &types.SubscriptionEnvelopeResponse{Subscription: mapper.SubscriptionToProto(item)}, nil
}

func (s *Server) GetSubscription(ctx context.Context, req *types.GetSubscriptionRequest) (*types.SubscriptionEnvelopeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	item, err := s.subscriptionService.GetSubscription(ctx, callerFrom(ctx), req.GetId())
	if err != nil {
		return nil, toStatusError(ctx, err, "Get subscription")
	}
	return &types.SubscriptionEnvelopeResponse{Subscription: mapper.SubscriptionToProto(item)}, nil
}

func (s *Server) GetSubscriptionByCategory(ctx context.Context, req *types.GetSubscriptionByCategoryRequest) (*types.SubscriptionEnvelopeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	item, err := s.subscriptionService.GetSubscriptionByCategory(ctx, callerFrom(ctx), req.GetCategory())
	if err != nil {
		return nil, toStatusError(ctx, err, "Get subscription by category")
	}
	return &types.SubscriptionEnvelopeResponse{Subscription: mapper.SubscriptionToProto(item)}, nil
}

func (s *Server) ListSubscriptions(ctx context.Context, _ *types.ListSubscriptionsRequest) (*types.ListSubscriptionsResponse, error) {
	items, err := s.subscriptionService.ListSubscriptions(ctx, callerFrom(ctx))
	if err != nil {
		return nil, toStatusError(ctx, err, "List subscriptions")
	}
	return &types.ListSubscriptionsResponse{Subscriptions: mapper.SubscriptionsToProto(items)}, nil
}

func (s *Server) DeactivateSubscription(ctx context.Context, req *types.DeactivateSubscriptionRequest) (*types.SubscriptionEnvelopeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	item, err := s.subscriptionService.DeactivateSubscription(ctx, callerFrom(ctx), req.GetId())
	if err != nil {
		return nil, toStatusError(ctx, err, "Deactivate subscription")
	}
	return &types.SubscriptionEnvelopeResponse{Subscription: mapper.SubscriptionToProto(item)}, nil
}

func (s *Server) PurchaseTokens(ctx context.Context, req *types.PurchaseTokensRequest) (*types.PurchaseTokensResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	result, err := s.purchaseService.PurchaseTokens(ctx, callerFrom(ctx), req)
	if err != nil {
		return nil, toStatusError(ctx, err, "Purchase tokens")
	}
	return &types.PurchaseTokensResponse{
		Transaction:  mapper.TokenTransactionToProto(result.Transaction),
		TokenBalance: result.Balance,
	}, nil
}

func (s *Server) ListTransactions(ctx context.Context, req *types.ListTransactionsRequest) (*types.ListTransactionsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	items, err := s.purchaseService.ListTransactions(ctx, callerFrom(ctx), req.GetSubscriptionId())
	if err != nil {
		return nil, toStatusError(ctx, err, "List transactions")
	}
	return &types.ListTransactionsResponse{Transactions: mapper.TokenTransactionsToProto(items)}, nil
}

func (s *Server) RequestRescue(ctx context.Context, req *types.RequestRescueRequest) (*types.RescueRequestEnvelopeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	item, err := s.rescueService.RequestRescue(ctx, callerFrom(ctx), req)
	if err != nil {
		return nil, toStatusError(ctx, err, "Request rescue")
	}
	return &types.RescueRequestEnvelopeResponse{RescueRequest: mapper.RescueRequestToProto(item)}, nil
}

func (s *Server) ListRescueRequests(ctx context.Context, req *types.ListRescueRequestsRequest) (*types.ListRescueRequestsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	items, err := s.rescueService.ListRescueRequests(ctx, callerFrom(ctx), req.GetSubscriptionId())
	if err != nil {
		return nil, toStatusError(ctx, err, "List rescue requests")
	}
	return &types.ListRescueRequestsResponse{RescueRequests: mapper.RescueRequestsToProto(items)}, nil
}

func (s *Server) ListRescueRequestsByStatus(ctx context.Context, req *types.ListRescueRequestsByStatusRequest) (*types.ListRescueRequestsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	items, err := s.rescueService.ListRescueRequestsByStatus(ctx, callerFrom(ctx), req.GetStatus())
	if err != nil {
		return nil, toStatusError(ctx, err, "List rescue requests by status")
	}
	return &types.ListRescueRequestsResponse{RescueRequests: mapper.RescueRequestsToProto(items)}, nil
}

func (s *Server) AdjudicateRescue(ctx context.Context, req *types.AdjudicateRescueRequest) (*types.AdjudicateRescueResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	result, err := s.rescueService.AdjudicateRescue(ctx, callerFrom(ctx), req)
	if err != nil {
		return nil, toStatusError(ctx, err, "Adjudicate rescue")
	}
	return &types.AdjudicateRescueResponse{
		RescueRequest: mapper.RescueRequestToProto(result.Request),
		Claim:         mapper.TokenTransactionToProto(result.Claim),
		TokenBalance:  result.Balance,
	}, nil
}
