package routes

import (
	"utah_trips/internal/controllers"

	"github.com/gin-gonic/gin"
)

func TemplateRoutes(r *gin.Engine) {
	templates := r.Group("/templates")
	{
		templates.GET("", controllers.ListTemplates)
	}
}
