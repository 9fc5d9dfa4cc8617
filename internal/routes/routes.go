package routes

import (
	"net/http"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

// SetupRouter builds the engine and registers all routes. The request logger
// and recovery middleware are attached first; Gin snapshots each route's
// handler chain at registration time, so middleware added later never runs.
func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(ginlog.SetLogger(ginlog.WithWriter(gin.DefaultWriter)))
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	DestinationRoutes(r)
	TemplateRoutes(r)
	TripKitRoutes(r)
	ProductRoutes(r)

	return r
}
