package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"handmade-backend/internal/core"
	"handmade-backend/internal/db"
	"handmade-backend/internal/middleware"
)

// SetupRoutes configures all application routes with their handlers and
// middleware. Global middleware (logging, recovery, CORS) is applied to the
// router before this function is called, in main.go.
func SetupRoutes(
	router *gin.Engine,
	logger *zap.Logger,
	productService core.ProductService,
	membershipService core.MembershipService,
	orderService core.OrderService,
	feedbackService core.FeedbackService,
	messageService core.MessageService,
	userService core.UserService,
	authService core.AuthService,
) {
	firebaseAuthClient := db.GetFirebaseAuthClient()
	if firebaseAuthClient == nil {
		logger.Fatal("Firebase Auth client is not initialized; routes cannot be secured")
	}
	authMW := middleware.NewAuthMiddleware(firebaseAuthClient, userService)

	productHandler := NewProductHandler(productService)
	membershipHandler := NewMembershipHandler(membershipService)
	orderHandler := NewOrderHandler(orderService)
	feedbackHandler := NewFeedbackHandler(feedbackService)
	messageHandler := NewMessageHandler(messageService)
	userHandler := NewUserHandler(userService)
	authHandler := NewAuthHandler(authService, userService)

	apiV1 := router.Group("/api/v1")
	{
		// Public storefront endpoints. No authentication required.
		apiV1.GET("/products", productHandler.BrowseCatalog)
		apiV1.GET("/products/stream", productHandler.StreamProducts)
		apiV1.GET("/products/:productId", productHandler.GetProduct)

		apiV1.GET("/feedback", feedbackHandler.ListPublicFeedback)
		apiV1.POST("/feedback", feedbackHandler.SubmitFeedback)
		apiV1.POST("/messages", messageHandler.SubmitMessage)

		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/signup", authHandler.SignUp)
			authGroup.POST("/password-reset", authHandler.PasswordReset)
		}

		// Profile endpoints need a valid token but not a verified email;
		// initialization runs right after sign-up, before verification.
		usersGroup := apiV1.Group("/users", authMW.VerifyToken())
		{
			usersGroup.POST("/initialize", authHandler.InitializeUserProfile)
			usersGroup.GET("/me", authHandler.GetCurrentUserProfile)
		}

		// User-owned data. Requires a verified account.
		meGroup := apiV1.Group("/me", authMW.VerifyToken(), authMW.RequireVerified())
		{
			meGroup.GET("/favorites", membershipHandler.ListFavorites)
			meGroup.POST("/favorites/:productId/toggle", membershipHandler.ToggleFavorite)
			meGroup.GET("/cart", membershipHandler.ListCart)
			meGroup.POST("/cart/:productId/toggle", membershipHandler.ToggleCartItem)
			meGroup.POST("/checkout", orderHandler.Checkout)
		}

		// Admin console. The role check loads the caller's profile, so a
		// stolen customer token can never reach these.
		adminGroup := apiV1.Group("/admin", authMW.VerifyToken(), authMW.RequireAdmin())
		{
			adminGroup.POST("/products", productHandler.CreateProduct)
			adminGroup.PUT("/products/:productId", productHandler.UpdateProduct)
			adminGroup.DELETE("/products/:productId", productHandler.DeleteProduct)

			adminGroup.GET("/orders", orderHandler.ListOrders)
			adminGroup.GET("/orders/stream", orderHandler.StreamOrders)
			adminGroup.PUT("/orders/:orderId/complete", orderHandler.CompleteOrder)
			adminGroup.DELETE("/orders/:orderId", orderHandler.DeleteOrder)

			adminGroup.GET("/feedback", feedbackHandler.ListAllFeedback)
			adminGroup.GET("/feedback/stream", feedbackHandler.StreamFeedback)
			adminGroup.PUT("/feedback/:feedbackId/approve", feedbackHandler.ApproveFeedback)
			adminGroup.DELETE("/feedback/:feedbackId", feedbackHandler.DeleteFeedback)

			adminGroup.GET("/messages", messageHandler.ListMessages)
			adminGroup.GET("/messages/stream", messageHandler.StreamMessages)
			adminGroup.DELETE("/messages/:messageId", messageHandler.DeleteMessage)

			adminGroup.GET("/users", userHandler.ListUsers)
			adminGroup.GET("/users/stream", userHandler.StreamUsers)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	logger.Info("API routes configured under /api/v1 and /health")
}
