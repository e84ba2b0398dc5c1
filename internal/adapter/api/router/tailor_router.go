package router

import (
	"github.com/labstack/echo/v4"

	"tailorlink/internal/adapter/api/handler"
	"tailorlink/internal/adapter/api/middleware"
)

func SetupTailorRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	tailorHandler := handler.GetTailorHandler()
	reviewHandler := handler.GetReviewHandler()

	// Discovery is public so customers can browse before signing up.
	tailors := e.Group("/v1/tailors")
	tailors.GET("", tailorHandler.ListTailors)
	tailors.GET("/:id", tailorHandler.GetTailor)
	tailors.GET("/:id/reviews", reviewHandler.ListTailorReviews)

	protected := e.Group("/v1/tailors")
	protected.Use(authMiddleware.Authenticate)
	protected.POST("/:id/reviews", reviewHandler.CreateReview)
	protected.POST("/:id/reviews/:reviewId/response", reviewHandler.RespondToReview)

	myProfile := e.Group("/v1/my-tailor-profile")
	myProfile.Use(authMiddleware.Authenticate)
	myProfile.GET("", tailorHandler.GetMyProfile)
	myProfile.PATCH("", tailorHandler.UpdateMyProfile)
	myProfile.POST("/portfolio", tailorHandler.AddPortfolioItem)
	myProfile.DELETE("/portfolio/:itemId", tailorHandler.RemovePortfolioItem)
}
