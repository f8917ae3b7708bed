package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/vaulthive/vaulthive.go/db/models"
	"github.com/vaulthive/vaulthive.go/lib/responses"
	"github.com/vaulthive/vaulthive.go/lib/service"
)

// AuthController : Login and profile endpoints
type AuthController struct {
	svc *service.VaulthiveService
}

func NewAuthController(svc *service.VaulthiveService) *AuthController {
	return &AuthController{svc: svc}
}

type LoginRequestBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponseBody struct {
	UserID       string       `json:"user_id"`
	Email        string       `json:"email"`
	SessionToken string       `json:"session_token"`
	Profile      *models.User `json:"profile"`
}

func (controller *AuthController) Login(c echo.Context) error {
	var body LoginRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load login request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	user, accessToken, err := controller.svc.LoginUser(c.Request().Context(), body.Email, body.Password)
	if err != nil {
		return writeErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, responses.Ok(&LoginResponseBody{
		UserID:       user.ID,
		Email:        user.Email,
		SessionToken: accessToken,
		Profile:      user,
	}))
}

func (controller *AuthController) Profile(c echo.Context) error {
	userId := c.Get("UserID").(string)

	user, err := controller.svc.FindUser(c.Request().Context(), userId)
	if err != nil {
		return writeErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, responses.Ok(user))
}
