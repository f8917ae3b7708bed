package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/vaulthive/vaulthive.go/lib/responses"
	"github.com/vaulthive/vaulthive.go/lib/service"
)

// TokenizeController : Tokenize asset endpoint
type TokenizeController struct {
	svc *service.VaulthiveService
}

func NewTokenizeController(svc *service.VaulthiveService) *TokenizeController {
	return &TokenizeController{svc: svc}
}

type TokenizeRequestBody struct {
	WalletAddress string `json:"wallet_address"`
}

func (controller *TokenizeController) Tokenize(c echo.Context) error {
	userId := c.Get("UserID").(string)

	// the body is optional, without it the mint uses the stored wallet
	var body TokenizeRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load tokenize request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	result, err := controller.svc.TokenizeAsset(c.Request().Context(), c.Param("assetId"), userId, body.WalletAddress)
	if err != nil {
		return writeErrorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, responses.Ok(result))
}
