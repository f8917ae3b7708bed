package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/vaulthive/vaulthive.go/lib/responses"
	"github.com/vaulthive/vaulthive.go/lib/service"
)

// VaultController : VAULT reward ledger endpoints
type VaultController struct {
	svc *service.VaulthiveService
}

func NewVaultController(svc *service.VaulthiveService) *VaultController {
	return &VaultController{svc: svc}
}

type VaultBalanceResponseBody struct {
	UserID  string `json:"user_id"`
	Balance int64  `json:"balance"`
	Symbol  string `json:"symbol"`
}

func (controller *VaultController) Balance(c echo.Context) error {
	userId := c.Param("userId")

	balance, err := controller.svc.VaultBalance(c.Request().Context(), userId)
	if err != nil {
		return writeErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, responses.Ok(&VaultBalanceResponseBody{
		UserID:  userId,
		Balance: balance,
		Symbol:  "VAULT",
	}))
}

func (controller *VaultController) Rewards(c echo.Context) error {
	rewards, err := controller.svc.VaultRewardsFor(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return writeErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, responses.Ok(rewards))
}
