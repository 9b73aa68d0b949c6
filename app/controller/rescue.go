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

type RescueController struct {
	rescueService *service.RescueService
	logger        logrus.FieldLogger
}

func NewRescueController(rescueService *service.RescueService) *RescueController {
	return &RescueController{
		rescueService: rescueService,
		logger:        factory.NewModuleLogger("rescue-controller"),
	}
}

func (c *RescueController) RequestRescue(ctx echo.Context) error {
	req, err := types.NewRequestRescueRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	caller, _ := auth.CallerFromContext(ctx.Request().Context())
	item, err := c.rescueService.RequestRescue(ctx.Request().Context(), caller, req)
	if err != nil {
		return writeServiceError(ctx, c.logger, err, "Request rescue")
	}

	return ctx.JSON(http.StatusCreated, &types.RescueRequestEnvelopeResponse{
		RescueRequest: mapper.RescueRequestToProto(item),
	})
}

func (c *RescueController) ListRescueRequests(ctx echo.Context) error {
	req, err := types.NewListRescueRequestsRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	caller, _ := auth.CallerFromContext(ctx.Request().Context())
	items, err := c.rescueService.ListRescueRequests(ctx.Request().Context(), caller, req.GetSubscriptionId())
	if err != nil {
		return writeServiceError(ctx, c.logger, err, "List rescue requests")
	}

	return ctx.JSON(http.StatusOK, &types.ListRescueRequestsResponse{
		RescueRequests: mapper.RescueRequestsToProto(items),
	})
}

func (c *RescueController) ListRescueRequestsByStatus(ctx echo.Context) error {
	req, err := types.NewListRescueRequestsByStatusRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid query params")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	caller, _ := auth.CallerFromContext(ctx.Request().Context())
	items, err := c.rescueService.ListRescueRequestsByStatus(ctx.Request().Context(), caller, req.GetStatus())
	if err != nil {
		return writeServiceError(ctx, c.logger, err, "List rescue requests by status")
	}

	return ctx.JSON(http.StatusOK, &types.ListRescueRequestsResponse{
		RescueRequests: mapper.RescueRequestsToProto(items),
	})
}

func (c *RescueController) AdjudicateRescue(ctx echo.Context) error {
	req, err := types.NewAdjudicateRescueRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	caller, _ := auth.CallerFromContext(ctx.Request().Context())
	result, err := c.rescueService.AdjudicateRescue(ctx.Request().Context(), caller, req)
	if err != nil {
		return writeServiceError(ctx, c.logger, err, "Adjudicate rescue")
	}

	return ctx.JSON(http.StatusOK, &types.AdjudicateRescueResponse{
		RescueRequest: mapper.RescueRequestToProto(result.Request),
		Claim:         mapper.TokenTransactionToProto(result.Claim),
		TokenBalance:  result.Balance,
	})
}
