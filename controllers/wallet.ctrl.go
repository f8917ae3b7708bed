package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	qrcode "github.com/skip2/go-qrcode"
	"github.com/vaulthive/vaulthive.go/lib/responses"
	"github.com/vaulthive/vaulthive.go/lib/service"
)

// WalletController : Wallet association and balance endpoints
type WalletController struct {
	svc *service.VaulthiveService
}

func NewWalletController(svc *service.VaulthiveService) *WalletController {
	return &WalletController{svc: svc}
}

type ConnectWalletRequestBody struct {
	Address string `json:"wallet_address" validate:"required"`
}

type ConnectWalletResponseBody struct {
	UserID  string `json:"user_id"`
	Address string `json:"wallet_address"`
}

func (controller *WalletController) Connect(c echo.Context) error {
	userId := c.Get("UserID").(string)

	var body ConnectWalletRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load connect wallet request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	user, err := controller.svc.ConnectWallet(c.Request().Context(), userId, body.Address)
	if err != nil {
		return writeErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, responses.Ok(&ConnectWalletResponseBody{
		UserID:  user.ID,
		Address: user.WalletAddress,
	}))
}

func (controller *WalletController) Balance(c echo.Context) error {
	address := c.QueryParam("address")
	if address == "" {
		return c.JSON(http.StatusBadRequest, responses.InvalidWalletAddressError)
	}

	balance, err := controller.svc.GetWalletBalance(c.Request().Context(), address)
	if err != nil {
		if err == service.ErrInvalidWalletAddress {
			return c.JSON(http.StatusBadRequest, responses.InvalidWalletAddressError)
		}
		c.Logger().Errorf("Failed to fetch wallet balance for %s: %v", address, err)
		return c.JSON(http.StatusBadGateway, responses.BalanceUnavailableError)
	}

	return c.JSON(http.StatusOK, responses.Ok(balance))
}

func (controller *WalletController) QR(c echo.Context) error {
	address := c.QueryParam("address")
	if address == "" {
		return c.JSON(http.StatusBadRequest, responses.InvalidWalletAddressError)
	}
	png, err := qrcode.Encode(address, qrcode.Medium, 256)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/png", png)
}
