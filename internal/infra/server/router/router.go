// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/farmlink/backend/internal/domain/entity"
	"github.com/farmlink/backend/internal/integration/entrypoint/controller"
	"github.com/farmlink/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	userController        *controller.UserController
	listingController     *controller.ListingController
	contractController    *controller.ContractController
	transactionController *controller.TransactionController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	listingController *controller.ListingController,
	contractController *controller.ContractController,
	transactionController *controller.TransactionController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		userController:        userController,
		listingController:     listingController,
		contractController:    contractController,
		transactionController: transactionController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
				auth.POST("/forgot-password", r.loginRateLimiter.Middleware(), r.authController.ForgotPassword)
				auth.POST("/reset-password", r.authController.ResetPassword)
			}
		}

		// Profile routes (require authentication)
		if r.userController != nil && r.authMiddleware != nil {
			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate())
			{
				users.GET("/me", r.userController.GetProfile)
				users.PATCH("/me", r.userController.UpdateProfile)
				users.PUT("/me/bank-details", r.userController.UpdateBankDetails)
			}
		}

		// Contract marketplace routes
		if r.contractController != nil && r.listingController != nil && r.authMiddleware != nil {
			contracts := v1.Group("/contracts")
			{
				// Listing browse and detail are public
				contracts.GET("/listings", r.listingController.Browse)
				contracts.GET("/listings/mine",
					r.authMiddleware.Authenticate(),
					r.authMiddleware.RequireRole(entity.UserRoleFarmer),
					r.listingController.ListMine)
				contracts.GET("/listings/:id", r.listingController.Get)

				authed := contracts.Group("")
				authed.Use(r.authMiddleware.Authenticate())
				{
					authed.POST("/listing",
						r.authMiddleware.RequireRole(entity.UserRoleFarmer),
						r.listingController.Create)

					authed.POST("/:id/request",
						r.authMiddleware.RequireRole(entity.UserRoleBuyer),
						r.contractController.Request)
					authed.PUT("/:id/accept", r.contractController.Accept)
					authed.PUT("/:id/start", r.contractController.Start)
					authed.PUT("/:id/reject", r.contractController.Reject)
					authed.PUT("/:id/complete", r.contractController.Complete)
					authed.PUT("/:id/cancel", r.contractController.Cancel)

					authed.GET("", r.contractController.List)
					authed.GET("/:id", r.contractController.Get)
				}
			}
		}

		// Ledger routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.POST("", r.transactionController.Record)
				transactions.GET("", r.transactionController.List)
				transactions.GET("/summary", r.transactionController.MonthlySummary)
			}
		}
	}
}
