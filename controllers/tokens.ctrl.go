package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/vaulthive/vaulthive.go/lib/responses"
	"github.com/vaulthive/vaulthive.go/lib/service"
)

// TokensController : Token listing endpoints
type TokensController struct {
	svc *service.VaulthiveService
}

func NewTokensController(svc *service.VaulthiveService) *TokensController {
	return &TokensController{svc: svc}
}

func (controller *TokensController) GetAllTokens(c echo.Context) error {
	tokens, err := controller.svc.AllTokens(c.Request().Context())
	if err != nil {
		return writeErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, responses.Ok(tokens))
}

func (controller *TokensController) GetUserTokens(c echo.Context) error {
	tokens, err := controller.svc.TokensForUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return writeErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, responses.Ok(tokens))
}
