package routes

import (
	"utah_trips/internal/controllers"

	"github.com/gin-gonic/gin"
)

func TripKitRoutes(r *gin.Engine) {
	tripkits := r.Group("/tripkits")
	{
		tripkits.GET("", controllers.ListTripKits)
		tripkits.POST("", controllers.CreateTripKit)
		tripkits.GET("/:id", controllers.GetTripKit)
		tripkits.PUT("/:id", controllers.UpdateTripKit)
		tripkits.DELETE("/:id", controllers.DeleteTripKit)
		tripkits.PUT("/:id/stops", controllers.ReplaceTripKitStops)
	}
}
