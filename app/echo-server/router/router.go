package router

import (
	"recommendation-service/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler) {
	recommendations := api.Group("/recommendations")

	recommendations.GET("", handler.GetRecommendations)
	recommendations.GET("/:product_id", handler.GetProductRecommendations)
	recommendations.POST("", handler.CreateRecommendation)
}

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler) {
	products := api.Group("/products")

	products.GET("", handler.GetProductsByCategory)
	products.GET("/:id", handler.GetProductByID)
}

func SetRecommendationAdminRoutes(api *echo.Group, handler *rest.RecommendationAdminHandler) {
	admin := api.Group("/admin/recommendations")

	admin.GET("", handler.GetAllRecommendations)
	admin.GET("/:id", handler.GetRecommendationByID)
	admin.PUT("/:id", handler.UpdateRecommendation)
	admin.DELETE("/:id", handler.DeleteRecommendation)
}
