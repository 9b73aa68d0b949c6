package mapper

import (
	"time"

	"github.com/vibast-solutions/ms-go-secours/app/entity"
	"github.com/vibast-solutions/ms-go-secours/app/policy"
	"github.com/vibast-solutions/ms-go-secours/app/types"
)

func CategoryToProto(item policy.Valuation) *types.Category {
	return &types.Category{
		Category:       string(item.Category),
		DisplayName:    item.DisplayName,
		TokenValueFcfa: item.TokenValueFCFA,
		MinTokens:      item.MinTokens,
		MaxTokens:      item.MaxTokens,
	}
}

func CategoriesToProto(items []policy.Valuation) []*types.Category {
	result := make([]*types.Category, 0, len(items))
	for _, item := range items {
		result = append(result, CategoryToProto(item))
	}
	return result
}

func SubscriptionToProto(item *entity.Subscription) *types.Subscription {
	if item == nil {
		return nil
	}

	return &types.Subscription{
		Id:           item.ID,
		UserId:       item.UserID,
		Category:     string(item.Category),
		Active:       item.Active,
		TokenBalance: item.TokenBalance,
		StartedAt:    item.StartedAt.UTC().Format(time.RFC3339),
		CreatedAt:    item.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    item.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func SubscriptionsToProto(items []*entity.Subscription) []*types.Subscription {
	result := make([]*types.Subscription, 0, len(items))
	for _, item := range items {
		result = append(result, SubscriptionToProto(item))
	}
	return result
}

func TokenTransactionToProto(item *entity.TokenTransaction) *types.TokenTransaction {
	if item == nil {
		return nil
	}

	return &types.TokenTransaction{
		Id:             item.ID,
		SubscriptionId: item.SubscriptionID,
		Kind:           item.Kind,
		TokenAmount:    item.TokenAmount,
		TokenValueFcfa: item.TokenValueFCFA,
		PaymentMethod:  derefString(item.PaymentMethod),
		Reference:      derefString(item.Reference),
		CreatedAt:      item.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func TokenTransactionsToProto(items []*entity.TokenTransaction) []*types.TokenTransaction {
	result := make([]*types.TokenTransaction, 0, len(items))
	for _, item := range items {
		result = append(result, TokenTransactionToProto(item))
	}
	return result
}

func RescueRequestToProto(item *entity.RescueRequest) *types.RescueRequest {
	if item == nil {
		return nil
	}

	return &types.RescueRequest{
		Id:                    item.ID,
		SubscriptionId:        item.SubscriptionID,
		Description:           item.Description,
		RescueValueFcfa:       item.RescueValueFCFA,
		TokenBalanceAtRequest: item.TokenBalanceAtRequest,
		Status:                item.Status,
		AdminNotes:            derefString(item.AdminNotes),
		ProcessedBy:           derefString(item.ProcessedBy),
		ProcessedAt:           formatTime(item.ProcessedAt),
		CreatedAt:             item.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:             item.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func RescueRequestsToProto(items []*entity.RescueRequest) []*types.RescueRequest {
	result := make([]*types.RescueRequest, 0, len(items))
	for _, item := range items {
		result = append(result, RescueRequestToProto(item))
	}
	return result
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func formatTime(v *time.Time) string {
	if v == nil {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}
