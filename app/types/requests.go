package types

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

func NewSubscribeRequestFromContext(ctx echo.Context) (*SubscribeRequest, error) {
	var body SubscribeRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.Category = strings.TrimSpace(body.Category)
	return &body, nil
}

func (r *SubscribeRequest) Validate() error {
	return validateField("category", r.GetCategory(), "required,max=32")
}

func NewGetSubscriptionRequestFromContext(ctx echo.Context) (*GetSubscriptionRequest, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return nil, err
	}
	return &GetSubscriptionRequest{Id: id}, nil
}

func (r *GetSubscriptionRequest) Validate() error {
	return validateField("id", r.GetId(), "gt=0")
}

func NewGetSubscriptionByCategoryRequestFromContext(ctx echo.Context) (*GetSubscriptionByCategoryRequest, error) {
	return &GetSubscriptionByCategoryRequest{Category: strings.TrimSpace(ctx.Param("category"))}, nil
}

func (r *GetSubscriptionByCategoryRequest) Validate() error {
	return validateField("category", r.GetCategory(), "required,max=32")
}

func (r *ListSubscriptionsRequest) Validate() error {
	return nil
}

func NewDeactivateSubscriptionRequestFromContext(ctx echo.Context) (*DeactivateSubscriptionRequest, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return nil, err
	}
	return &DeactivateSubscriptionRequest{Id: id}, nil
}

func (r *DeactivateSubscriptionRequest) Validate() error {
	return validateField("id", r.GetId(), "gt=0")
}

func NewPurchaseTokensRequestFromContext(ctx echo.Context) (*PurchaseTokensRequest, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return nil, err
	}

	var body struct {
		TokenAmount   int64  `json:"token_amount"`
		PaymentMethod string `json:"payment_method"`
		Reference     string `json:"reference"`
	}
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}

	return &PurchaseTokensRequest{
		SubscriptionId: id,
		TokenAmount:    body.TokenAmount,
		PaymentMethod:  strings.TrimSpace(strings.ToLower(body.PaymentMethod)),
		Reference:      strings.TrimSpace(body.Reference),
	}, nil
}

func (r *PurchaseTokensRequest) Validate() error {
	return validateFields(
		fieldRule{name: "subscription_id", value: r.GetSubscriptionId(), tag: "gt=0"},
		fieldRule{name: "payment_method", value: r.GetPaymentMethod(), tag: "required,max=32"},
		fieldRule{name: "reference", value: r.GetReference(), tag: "max=128"},
	)
}

func NewListTransactionsRequestFromContext(ctx echo.Context) (*ListTransactionsRequest, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return nil, err
	}
	return &ListTransactionsRequest{SubscriptionId: id}, nil
}

func (r *ListTransactionsRequest) Validate() error {
	return validateField("subscription_id", r.GetSubscriptionId(), "gt=0")
}

func NewRequestRescueRequestFromContext(ctx echo.Context) (*RequestRescueRequest, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return nil, err
	}

	var body struct {
		Description     string `json:"description"`
		RescueValueFcfa int64  `json:"rescue_value_fcfa"`
	}
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}

	return &RequestRescueRequest{
		SubscriptionId:  id,
		Description:     strings.TrimSpace(body.Description),
		RescueValueFcfa: body.RescueValueFcfa,
	}, nil
}

func (r *RequestRescueRequest) Validate() error {
	return validateFields(
		fieldRule{name: "subscription_id", value: r.GetSubscriptionId(), tag: "gt=0"},
		fieldRule{name: "description", value: r.GetDescription(), tag: "required,max=2000"},
		fieldRule{name: "rescue_value_fcfa", value: r.GetRescueValueFcfa(), tag: rescueValueRule},
	)
}

func NewListRescueRequestsRequestFromContext(ctx echo.Context) (*ListRescueRequestsRequest, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return nil, err
	}
	return &ListRescueRequestsRequest{SubscriptionId: id}, nil
}

func (r *ListRescueRequestsRequest) Validate() error {
	return validateField("subscription_id", r.GetSubscriptionId(), "gt=0")
}

func NewListRescueRequestsByStatusRequestFromContext(ctx echo.Context) (*ListRescueRequestsByStatusRequest, error) {
	return &ListRescueRequestsByStatusRequest{
		Status: strings.TrimSpace(strings.ToLower(ctx.QueryParam("status"))),
	}, nil
}

func (r *ListRescueRequestsByStatusRequest) Validate() error {
	return validateField("status", r.GetStatus(), "omitempty,oneof=pending approved rejected")
}

func NewAdjudicateRescueRequestFromContext(ctx echo.Context) (*AdjudicateRescueRequest, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return nil, err
	}

	var body struct {
		Action     string `json:"action"`
		AdminNotes string `json:"admin_notes"`
	}
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}

	return &AdjudicateRescueRequest{
		RescueRequestId: id,
		Action:          strings.TrimSpace(strings.ToLower(body.Action)),
		AdminNotes:      strings.TrimSpace(body.AdminNotes),
	}, nil
}

func (r *AdjudicateRescueRequest) Validate() error {
	return validateFields(
		fieldRule{name: "rescue_request_id", value: r.GetRescueRequestId(), tag: "gt=0"},
		fieldRule{name: "action", value: r.GetAction(), tag: "required,oneof=approve reject"},
		fieldRule{name: "admin_notes", value: r.GetAdminNotes(), tag: "max=2000"},
	)
}
