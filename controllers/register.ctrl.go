package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/vaulthive/vaulthive.go/lib/responses"
	"github.com/vaulthive/vaulthive.go/lib/service"
)

// RegisterController : Create user endpoint
type RegisterController struct {
	svc *service.VaulthiveService
}

func NewRegisterController(svc *service.VaulthiveService) *RegisterController {
	return &RegisterController{svc: svc}
}

type RegisterRequestBody struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegisterResponseBody struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

func (controller *RegisterController) Register(c echo.Context) error {
	var body RegisterRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load register request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	user, err := controller.svc.CreateUser(c.Request().Context(), body.Name, body.Email, body.Password)
	if err != nil {
		return writeErrorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, responses.Ok(&RegisterResponseBody{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
	}))
}
