package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/vaulthive/vaulthive.go/lib/responses"
	"github.com/vaulthive/vaulthive.go/lib/service"
)

// AssetsController : Asset registry endpoints
type AssetsController struct {
	svc *service.VaulthiveService
}

func NewAssetsController(svc *service.VaulthiveService) *AssetsController {
	return &AssetsController{svc: svc}
}

type CreateAssetRequestBody struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Valuation   float64 `json:"valuation" validate:"gte=0"`
	ImageURL    string  `json:"image_url"`
}

func (controller *AssetsController) CreateAsset(c echo.Context) error {
	userId := c.Get("UserID").(string)

	var body CreateAssetRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load create asset request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	asset, err := controller.svc.CreateAsset(c.Request().Context(), userId, body.Name, body.Description, body.Category, body.Valuation, body.ImageURL)
	if err != nil {
		return writeErrorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, responses.Ok(asset))
}

func (controller *AssetsController) GetAllAssets(c echo.Context) error {
	assets, err := controller.svc.AllAssets(c.Request().Context())
	if err != nil {
		return writeErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, responses.Ok(assets))
}

func (controller *AssetsController) GetAsset(c echo.Context) error {
	asset, err := controller.svc.FindAsset(c.Request().Context(), c.Param("assetId"))
	if err != nil {
		return writeErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, responses.Ok(asset))
}

func (controller *AssetsController) GetUserAssets(c echo.Context) error {
	assets, err := controller.svc.AssetsForUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return writeErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, responses.Ok(assets))
}
