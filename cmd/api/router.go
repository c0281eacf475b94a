package main

import (
	"github.com/gin-gonic/gin"

	"giftcard-backend/internal/shared/middleware"
	"giftcard-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigins),
	)

	setupSystemRoutes(router, c)

	api := router.Group("/api")
	{
		setupPublicRoutes(api, c)
		setupAdminRoutes(api, c)
	}

	return router
}

// ========================================
// SYSTEM ROUTES
// ========================================
func setupSystemRoutes(router *gin.Engine, c *container.Container) {
	router.GET("/", c.SystemHandler.Root)
	router.GET("/test", c.SystemHandler.Test)
	router.GET("/schema", c.SystemHandler.Schema)
}

// ========================================
// PUBLIC ROUTES
// ========================================
func setupPublicRoutes(api *gin.RouterGroup, c *container.Container) {
	api.GET("/rates", c.RateHandler.ListActiveRates)
	api.GET("/brands", c.GiftcardHandler.ListBrands)
	api.POST("/trades", c.TradeHandler.CreateTrade)
	api.GET("/trades", c.TradeHandler.ListTrades)
}

// ========================================
// ADMIN ROUTES (X-Admin-Key)
// ========================================
func setupAdminRoutes(api *gin.RouterGroup, c *container.Container) {
	admin := api.Group("/admin")
	admin.Use(middleware.AdminKey(c.Config.Admin.Key))
	{
		admin.GET("/summary", c.AdminHandler.Summary)

		admin.GET("/trades", c.TradeHandler.AdminListTrades)
		admin.PATCH("/trades/:id", c.TradeHandler.UpdateTrade)

		admin.GET("/brands", c.GiftcardHandler.ListGiftcards)
		admin.POST("/brands", c.GiftcardHandler.CreateGiftcard)
		admin.PATCH("/brands/:id", c.GiftcardHandler.UpdateGiftcard)

		admin.GET("/rates", c.RateHandler.ListRates)
		admin.POST("/rates", c.RateHandler.CreateRate)
		admin.PATCH("/rates/:id", c.RateHandler.UpdateRate)
	}
}
