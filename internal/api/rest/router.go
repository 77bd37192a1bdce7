package rest

import (
	"net/http"

	"bank-aml-pod/internal/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// CORSMiddleware возвращает middleware для обработки CORS
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, DELETE")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// SetupCommonEndpoints добавляет общие endpoints (health, events, stats) к роутеру
func SetupCommonEndpoints(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/api/v1/events", func(c *gin.Context) {
		if eventType := c.Query("type"); eventType != "" {
			events := logger.GetEventsByType(logger.EventType(eventType), parseLimit(c))
			c.JSON(http.StatusOK, gin.H{"events": events})
			return
		}
		c.JSON(http.StatusOK, gin.H{"events": logger.GetEvents(parseLimit(c))})
	})

	router.GET("/api/v1/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, logger.GetStats())
	})
}

// SetupRouter настраивает маршруты REST API
func SetupRouter(handlers *Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(CORSMiddleware())

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	api := router.Group("/api/v1")
	{
		api.POST("/datasets", handlers.GenerateDataset)
		api.GET("/datasets", handlers.GetDatasets)
		api.POST("/model/train", handlers.TrainModel)
		api.GET("/model/weights", handlers.GetWeights)
		api.GET("/model/runs", handlers.GetTrainingRuns)
		api.GET("/model/runs/:run_id", handlers.GetTrainingRun)
		api.DELETE("/model/runs", handlers.ClearHistory)
	}

	SetupCommonEndpoints(router)

	return router
}
