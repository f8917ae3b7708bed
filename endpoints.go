package main

import (
	"github.com/labstack/echo/v4"
	"github.com/vaulthive/vaulthive.go/controllers"
	"github.com/vaulthive/vaulthive.go/lib/service"
)

func RegisterEndpoints(svc *service.VaulthiveService, e *echo.Echo, secured *echo.Group, securedWithStrictRateLimit *echo.Group, strictRateLimitMiddleware echo.MiddlewareFunc, logMw echo.MiddlewareFunc) {
	// Public endpoints for account creation and authentication
	e.POST("/api/auth/register", controllers.NewRegisterController(svc).Register, strictRateLimitMiddleware, logMw)
	e.POST("/api/auth/login", controllers.NewAuthController(svc).Login, logMw)

	// Secured endpoints which require an Authorization token (JWT)
	secured.GET("/api/auth/profile", controllers.NewAuthController(svc).Profile)

	assetsController := controllers.NewAssetsController(svc)
	secured.POST("/api/assets", assetsController.CreateAsset)
	secured.GET("/api/assets", assetsController.GetAllAssets)
	secured.GET("/api/assets/:assetId", assetsController.GetAsset)
	secured.GET("/api/assets/user/:userId", assetsController.GetUserAssets)

	securedWithStrictRateLimit.POST("/api/assets/:assetId/tokenize", controllers.NewTokenizeController(svc).Tokenize)

	tokensController := controllers.NewTokensController(svc)
	secured.GET("/api/tokens", tokensController.GetAllTokens, createCacheClient().Middleware())
	secured.GET("/api/tokens/user/:userId", tokensController.GetUserTokens)

	vaultController := controllers.NewVaultController(svc)
	secured.GET("/api/vault/balance/:userId", vaultController.Balance)
	secured.GET("/api/vault/rewards/:userId", vaultController.Rewards)

	walletController := controllers.NewWalletController(svc)
	secured.POST("/api/wallets/connect", walletController.Connect)
	secured.GET("/api/wallets/balance", walletController.Balance)
	secured.GET("/api/wallets/qr", walletController.QR)
}
