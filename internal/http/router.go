package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(handler *Handler, authMiddleware gin.HandlerFunc, environment, uploadsDir string) *gin.Engine {
	if environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Authorization", "Content-Type"},
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.POST("/auth/login", handler.login)
	router.Static("/uploads/cars", uploadsDir)

	protected := router.Group("/")
	protected.Use(authMiddleware)

	protected.GET("/stats", handler.dashboardStats)
	protected.POST("/ai-search", handler.aiSearch)

	protected.GET("/cars", handler.listCars)
	protected.POST("/cars", handler.createCar)
	protected.GET("/cars/:id", handler.getCar)
	protected.PUT("/cars/:id", handler.updateCar)
	protected.DELETE("/cars/:id", handler.deleteCar)
	protected.POST("/cars/bulk", handler.bulkCars)

	protected.GET("/quotes", handler.listQuotes)
	protected.POST("/quotes", handler.createQuote)
	protected.GET("/quotes/export", handler.exportQuoteRegister)
	protected.POST("/quotes/bulk-delete", handler.bulkDeleteQuotes)
	protected.GET("/quotes/:id", handler.getQuote)
	protected.PUT("/quotes/:id", handler.updateQuote)
	protected.PATCH("/quotes/:id/status", handler.setQuoteStatus)
	protected.DELETE("/quotes/:id", handler.deleteQuote)
	protected.GET("/quotes/:id/export/pdf", handler.exportQuotePDF)

	return router
}
