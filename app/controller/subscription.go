package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-secours/app/auth"
	"github.com/vibast-solutions/ms-go-secours/app/factory"
	"github.com/vibast-solutions/ms-go-secours/app/mapper"
	"github.com/vibast-solutions/ms-go-secours/app/service"
	"github.com/vibast-solutions/ms-go-secours/app/types"
)

type SubscriptionController struct {
	subscriptionService *service.SubscriptionService
	logger              logrus.FieldLogger
}

func NewSubscriptionController(subscriptionService *service.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{
		subscriptionService: subscriptionService,
		logger:              factory.NewModuleLogger("subscriptions-controller"),
	}
}

func (c *SubscriptionController) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, &types.HealthResponse{Status: "ok"})
}

func (c *SubscriptionController) ListCategories(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, &types.ListCategoriesResponse{
		Categories: mapper.CategoriesToProto(c.subscriptionService.ListCategories()),
	})
}

func (c *SubscriptionController) Subscribe(ctx echo.Context) error {
	req, err := types.NewSubscribeRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	caller, _ := auth.CallerFromContext(ctx.Request().Context())
	item, err := c.subscriptionService.Subscribe(ctx.Request().Context(), caller, req)
	if err != nil {
		return writeServiceError(ctx, c.logger, err, "Subscribe")
	}

	return ctx.JSON(http.StatusCreated, &types.SubscriptionEnvelopeResponse{
		Subscription: mapper.SubscriptionToProto(item),
	})
}

func (c *SubscriptionController) GetSubscription(ctx echo.Context) error {
	req, err := types.NewGetSubscriptionRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	caller, _ := auth.CallerFromContext(ctx.Request().Context())
	item, err := c.subscriptionService.GetSubscription(ctx.Request().Context(), caller, req.GetId())
	if err != nil {
		return writeServiceError(ctx, c.logger, err, "Get subscription")
	}

	return ctx.JSON(http.StatusOK, &types.SubscriptionEnvelopeResponse{
		Subscription: mapper.SubscriptionToProto(item),
	})
}

func (c *SubscriptionController) GetSubscriptionByCategory(ctx echo.Context) error {
	req, err := types.NewGetSubscriptionByCategoryRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	caller, _ := auth.CallerFromContext(ctx.Request().Context())
	item, err := c.subscriptionService.GetSubscriptionByCategory(ctx.Request().Context(), caller, req.GetCategory())
	if err != nil {
		return writeServiceError(ctx, c.logger, err, "Get subscription by category")
	}

	return ctx.JSON(http.StatusOK, &types.SubscriptionEnvelopeResponse{
		Subscription: mapper.SubscriptionToProto(item),
	})
}

func (c *SubscriptionController) ListSubscriptions(ctx echo.Context) error {
	caller, _ := auth.CallerFromContext(ctx.Request().Context())
	items, err := c.subscriptionService.ListSubscriptions(ctx.Request().Context(), caller)
	if err != nil {
		return writeServiceError(ctx, c.logger, err, "List subscriptions")
	}

	return ctx.JSON(http.StatusOK, &types.ListSubscriptionsResponse{
		Subscriptions: mapper.SubscriptionsToProto(items),
	})
}

func (c *SubscriptionController) DeactivateSubscription(ctx echo.Context) error {
	req, err := types.NewDeactivateSubscriptionRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	caller, _ := auth.CallerFromContext(ctx.Request().Context())
	item, err := c.subscriptionService.DeactivateSubscription(ctx.Request().Context(), caller, req.GetId())
	if err != nil {
		return writeServiceError(ctx, c.logger, err, "Deactivate subscription")
	}

	return ctx.JSON(http.StatusOK, &types.SubscriptionEnvelopeResponse{
		Subscription: mapper.SubscriptionToProto(item),
	})
}
