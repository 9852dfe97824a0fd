package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"kyc-chain.backend/internal/interfaces/http/handlers"
	"kyc-chain.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler     *handlers.AuthHandler
	adminHandler    *handlers.AdminHandler
	bankHandler     *handlers.BankHandler
	customerHandler *handlers.CustomerHandler
	accessHandler   *handlers.AccessHandler
	statusHandler   *handlers.StatusHandler
	authMiddleware  gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "http://localhost:3000")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-Api-Key, Idempotency-Key")
		c.Header("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/challenge", d.authHandler.Challenge)
			auth.POST("/login", d.authHandler.Login)
		}

		// Owner and admin routes (protected)
		v1.GET("/owner", d.authMiddleware, d.adminHandler.GetOwner)
		v1.POST("/owner/transfer", d.authMiddleware, d.adminHandler.TransferOwner)

		admins := v1.Group("/admins")
		admins.Use(d.authMiddleware)
		{
			admins.POST("", d.adminHandler.AddAdmin)
			admins.GET("", d.adminHandler.ListAdmins)
			admins.DELETE("/:address", d.adminHandler.RemoveAdmin)
		}

		// Bank registry routes (protected)
		banks := v1.Group("/banks")
		banks.Use(d.authMiddleware)
		{
			banks.POST("", middleware.IdempotencyMiddleware(), d.bankHandler.AddBank)
			banks.GET("", d.bankHandler.ListBanks)
			banks.GET("/:address", d.bankHandler.GetBank)
			banks.PATCH("/:address/approval", d.bankHandler.SetApproval)
		}

		// Customer routes (protected)
		customers := v1.Group("/customers")
		customers.Use(d.authMiddleware)
		{
			customers.POST("", middleware.IdempotencyMiddleware(), d.customerHandler.AddCustomer)
			customers.GET("", d.customerHandler.ListCustomers)
			customers.GET("/:kycId", d.customerHandler.GetCustomer)
			customers.POST("/:kycId/records", middleware.IdempotencyMiddleware(), d.customerHandler.AddRecord)
			customers.GET("/:kycId/records", d.customerHandler.ListRecords)
			customers.GET("/:kycId/grants", d.accessHandler.ListCustomerGrants)
			customers.POST("/:kycId/status", middleware.IdempotencyMiddleware(), d.statusHandler.UpdateStatus)
			customers.GET("/:kycId/history", d.statusHandler.ListHistory)
			customers.GET("/:kycId/history/verify", d.statusHandler.VerifyHistory)
		}

		// Access authorization routes (protected)
		access := v1.Group("/access")
		access.Use(d.authMiddleware)
		{
			access.POST("/requests", middleware.IdempotencyMiddleware(), d.accessHandler.RequestAccess)
			access.GET("/requests", d.accessHandler.ListPendingRequests)
			access.POST("/grants", d.accessHandler.GrantAccess)
			access.DELETE("/grants", d.accessHandler.RevokeAccess)
			access.GET("/check", d.accessHandler.CheckAccess)
		}
	}
}
