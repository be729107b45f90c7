package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"btc-yield.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	authHandler       *handlers.AuthHandler
	walletHandler     *handlers.WalletHandler
	portfolioHandler  *handlers.PortfolioHandler
	onrampHandler     *handlers.OnrampHandler
	yieldHandler      *handlers.YieldHandler
	txHandler         *handlers.TxHandler
	sessionMiddleware gin.HandlerFunc
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/session", d.authHandler.CreateSession)
		}

		// Wallet routes (session required)
		wallet := api.Group("/wallet")
		wallet.Use(d.sessionMiddleware)
		{
			wallet.POST("/init", d.walletHandler.Init)
			wallet.GET("/address", d.walletHandler.GetAddress)
		}

		// Portfolio (session required)
		api.GET("/portfolio", d.sessionMiddleware, d.portfolioHandler.Get)

		// Onramp routes (session required)
		onramp := api.Group("/onramp")
		onramp.Use(d.sessionMiddleware)
		{
			onramp.POST("/session", d.onrampHandler.CreateSession)
			onramp.POST("/confirm", d.onrampHandler.Confirm)
		}

		// Yield workflow routes (session required)
		yield := api.Group("/yield")
		yield.Use(d.sessionMiddleware)
		{
			yield.POST("/convert", d.yieldHandler.Convert)
			yield.POST("/stake", d.yieldHandler.Stake)
		}

		// Transaction status (session required)
		api.GET("/tx/:hash", d.sessionMiddleware, d.txHandler.GetStatus)
	}
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "btc-yield-backend",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, X-Session-ID, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}
