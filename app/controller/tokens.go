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

type TokenController struct {
	purchaseService *service.PurchaseService
	logger          logrus.FieldLogger
}

func NewTokenController(purchaseService *service.PurchaseService) *TokenController {
	return &TokenController{
		purchaseService: purchaseService,
		logger:          factory.NewModuleLogger("tokens-controller"),
	}
}

func (c *TokenController) PurchaseTokens(ctx echo.Context) error {
	req, err := types.NewPurchaseTokensRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	caller, _ := auth.CallerFromContext(ctx.Request().Context())
	result, err := c.purchaseService.PurchaseTokens(ctx.Request().Context(), caller, req)
	if err != nil {
		return writeServiceError(ctx, c.logger, err, "Purchase tokens")
	}

	return ctx.JSON(http.StatusCreated, &types.PurchaseTokensResponse{
		Transaction:  mapper.TokenTransactionToProto(result.Transaction),
		TokenBalance: result.Balance,
	})
}

func (c *TokenController) ListTransactions(ctx echo.Context) error {
	req, err := types.NewListTransactionsRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	caller, _ := auth.CallerFromContext(ctx.Request().Context())
	items, err := c.purchaseService.ListTransactions(ctx.Request().Context(), caller, req.GetSubscriptionId())
	if err != nil {
		return writeServiceError(ctx, c.logger, err, "List transactions")
	}

	return ctx.JSON(http.StatusOK, &types.ListTransactionsResponse{
		Transactions: mapper.TokenTransactionsToProto(items),
	})
}
