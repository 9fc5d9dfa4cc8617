package routes

import (
	"utah_trips/internal/controllers"

	"github.com/gin-gonic/gin"
)

func DestinationRoutes(r *gin.Engine) {
	destinations := r.Group("/destinations")
	{
		destinations.GET("", controllers.ListDestinations)
		destinations.POST("", controllers.CreateDestination)
		destinations.GET("/:id", controllers.GetDestination)
		destinations.PUT("/:id", controllers.UpdateDestination)
		destinations.DELETE("/:id", controllers.DeleteDestination)

		destinations.GET("/:id/template", controllers.GetDestinationTemplate)
		destinations.GET("/:id/recommendations", controllers.GetRecommendations)
		destinations.GET("/:id/products", controllers.ListProductsForDestination)
	}
}
