package responses

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Success        bool   `json:"success"`
	Code           int    `json:"code"`
	Error          string `json:"error"`
	HttpStatusCode int    `json:"-"`
}

type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

func Ok(data interface{}) *SuccessResponse {
	return &SuccessResponse{Success: true, Data: data}
}

var GeneralServerError = ErrorResponse{
	Success:        false,
	Code:           1,
	Error:          "Something went wrong. Please try again later",
	HttpStatusCode: 500,
}

var BadArgumentsError = ErrorResponse{
	Success:        false,
	Code:           2,
	Error:          "Bad arguments",
	HttpStatusCode: 400,
}

var BadAuthError = ErrorResponse{
	Success:        false,
	Code:           3,
	Error:          "bad auth",
	HttpStatusCode: 401,
}

var EmailTakenError = ErrorResponse{
	Success:        false,
	Code:           4,
	Error:          "an account with this email already exists",
	HttpStatusCode: 409,
}

var UserNotFoundError = ErrorResponse{
	Success:        false,
	Code:           5,
	Error:          "user not found",
	HttpStatusCode: 404,
}

var AssetNotFoundError = ErrorResponse{
	Success:        false,
	Code:           6,
	Error:          "asset not found",
	HttpStatusCode: 404,
}

var NotAssetOwnerError = ErrorResponse{
	Success:        false,
	Code:           7,
	Error:          "only the asset owner can tokenize it",
	HttpStatusCode: 403,
}

var AlreadyTokenizedError = ErrorResponse{
	Success:        false,
	Code:           8,
	Error:          "asset is already tokenized",
	HttpStatusCode: 409,
}

var TokenNotFoundError = ErrorResponse{
	Success:        false,
	Code:           9,
	Error:          "token not found",
	HttpStatusCode: 404,
}

var InvalidRewardAmountError = ErrorResponse{
	Success:        false,
	Code:           10,
	Error:          "reward amount must be a positive integer",
	HttpStatusCode: 400,
}

var InvalidWalletAddressError = ErrorResponse{
	Success:        false,
	Code:           11,
	Error:          "invalid wallet address",
	HttpStatusCode: 400,
}

var BalanceUnavailableError = ErrorResponse{
	Success:        false,
	Code:           12,
	Error:          "could not fetch balance from the network",
	HttpStatusCode: 502,
}

func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	c.Logger().Error(err)
	if hub := sentryecho.GetHubFromContext(c); hub != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetExtra("UserID", c.Get("UserID"))
			hub.CaptureException(err)
		})
	}
	if he, ok := err.(*echo.HTTPError); ok {
		c.JSON(he.Code, &ErrorResponse{
			Success:        false,
			Code:           he.Code,
			Error:          http.StatusText(he.Code),
			HttpStatusCode: he.Code,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, GeneralServerError)
}
