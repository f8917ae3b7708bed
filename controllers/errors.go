package controllers

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/vaulthive/vaulthive.go/lib/responses"
	"github.com/vaulthive/vaulthive.go/lib/service"
)

var errorResponses = map[error]responses.ErrorResponse{
	service.ErrEmailTaken:           responses.EmailTakenError,
	service.ErrBadCredentials:       responses.BadAuthError,
	service.ErrUserNotFound:         responses.UserNotFoundError,
	service.ErrInvalidCategory:      responses.BadArgumentsError,
	service.ErrInvalidValuation:     responses.BadArgumentsError,
	service.ErrAssetNotFound:        responses.AssetNotFoundError,
	service.ErrNotAssetOwner:        responses.NotAssetOwnerError,
	service.ErrAlreadyTokenized:     responses.AlreadyTokenizedError,
	service.ErrTokenNotFound:        responses.TokenNotFoundError,
	service.ErrInvalidRewardAmount:  responses.InvalidRewardAmountError,
	service.ErrInvalidWalletAddress: responses.InvalidWalletAddressError,
}

func writeErrorResponse(c echo.Context, err error) error {
	for sentinel, resp := range errorResponses {
		if errors.Is(err, sentinel) {
			return c.JSON(resp.HttpStatusCode, resp)
		}
	}
	return c.JSON(responses.GeneralServerError.HttpStatusCode, responses.GeneralServerError)
}
