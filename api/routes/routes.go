package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/oscahub/osca-backend/internal/config"
	"github.com/oscahub/osca-backend/internal/handlers"
	"github.com/oscahub/osca-backend/internal/middleware"
)

// HandlerDependencies bundles the handlers the router wires up
type HandlerDependencies struct {
	AuthHandler      *handlers.AuthHandler
	MemberHandler    *handlers.MemberHandler
	BenefitHandler   *handlers.BenefitHandler
	AvailmentHandler *handlers.AvailmentHandler
	PaymentHandler   *handlers.PaymentHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})

		auth := public.Group("/auth")
		{
			auth.POST("/login", deps.AuthHandler.Login)
		}
	}

	// Protected routes
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware(cfg))
	{
		members := protected.Group("/members")
		{
			members.GET("", deps.MemberHandler.GetAllMembers)
			members.GET("/:id", deps.MemberHandler.GetMemberByID)
			members.GET("/no/:memberNo", deps.MemberHandler.GetMemberByNo)
			members.GET("/:id/card", deps.MemberHandler.GetIDCard)
			members.PUT("/:id/profile", deps.MemberHandler.UpdateProfile)
			members.POST("/:id/photo", deps.MemberHandler.UploadPhoto)
			members.POST("", middleware.RequireAdmin(), deps.MemberHandler.CreateMember)
		}

		benefits := protected.Group("/benefits")
		{
			benefits.GET("", deps.BenefitHandler.GetAllBenefits)
			benefits.GET("/:id", deps.BenefitHandler.GetBenefitByID)
			benefits.POST("", middleware.RequireAdmin(), deps.BenefitHandler.CreateBenefit)
			benefits.PUT("/:id", middleware.RequireAdmin(), deps.BenefitHandler.UpdateBenefit)
			benefits.DELETE("/:id", middleware.RequireAdmin(), deps.BenefitHandler.DeleteBenefit)
		}

		availments := protected.Group("/availments")
		{
			availments.POST("", deps.AvailmentHandler.Submit)
			availments.GET("", middleware.RequireAdmin(), deps.AvailmentHandler.GetAll)
			availments.GET("/:id", deps.AvailmentHandler.GetByID)
			availments.GET("/member/:id", deps.AvailmentHandler.GetByMember)
			availments.GET("/member/:id/stats", deps.AvailmentHandler.GetStats)
			availments.GET("/member/:id/eligibility/:benefitId", deps.AvailmentHandler.GetEligibility)
			availments.POST("/:id/approve", middleware.RequireAdmin(), deps.AvailmentHandler.Approve)
			availments.POST("/:id/reject", middleware.RequireAdmin(), deps.AvailmentHandler.Reject)
		}

		payments := protected.Group("/payments")
		{
			payments.GET("", middleware.RequireAdmin(), deps.PaymentHandler.GetAllPayments)
			payments.GET("/member/:id", deps.PaymentHandler.GetPaymentsByMember)
			payments.POST("", middleware.RequireAdmin(), deps.PaymentHandler.CreatePayment)
		}
	}

	return router
}
