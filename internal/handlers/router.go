package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/epeers/exposure/docs"
	"github.com/epeers/exposure/internal/middleware"
	"github.com/epeers/exposure/internal/staticdata"
)

// NewRouter wires the API routes, middleware and swagger UI.
func NewRouter(tables *staticdata.Tables) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	analyzeHandler := NewAnalyzeHandler(tables)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.POST("/analyze", analyzeHandler.Analyze)
	router.GET("/dimensions", analyzeHandler.Dimensions)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
