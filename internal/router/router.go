// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/greyhoundwelfare/licence-frontend/internal/config"
	"github.com/greyhoundwelfare/licence-frontend/internal/handlers"
	"github.com/greyhoundwelfare/licence-frontend/internal/middleware"
	"github.com/greyhoundwelfare/licence-frontend/internal/services"
	"github.com/greyhoundwelfare/licence-frontend/internal/views"
)

func Initialize(formService services.FormService, logger *logrus.Logger, cfg *config.Config) *gin.Engine {
	// Initialize handlers
	formHandler := handlers.NewFormHandler(formService, logger)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	r.SetHTMLTemplate(views.Templates())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Static pages
	r.GET("/", handlers.Home)
	r.GET("/contact", handlers.Contact)

	// Wizard routes
	r.GET("/dashboard", formHandler.Dashboard)
	r.GET("/form/new", formHandler.ShowNewForm)
	r.POST("/form/new", middleware.SubmitRateLimit(), formHandler.CreateForm)
	r.GET("/form/:formId/page/:pageNumber", formHandler.ShowPage)
	r.POST("/form/:formId/page/:pageNumber", middleware.SubmitRateLimit(), formHandler.SubmitPage)
	r.GET("/form/:formId/review", formHandler.ShowReview)
	r.POST("/form/:formId/review", middleware.SubmitRateLimit(), formHandler.SubmitReview)
	r.GET("/form/:formId/confirmation", formHandler.Confirmation)
	r.POST("/form/:formId/save", formHandler.SaveForLater)
	r.GET("/form/:formId/delete", formHandler.ShowDelete)
	r.POST("/form/:formId/delete", formHandler.DeleteForm)

	// Generic form submission
	r.POST("/form", middleware.SubmitRateLimit(), formHandler.ProcessForm)

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/public", "./public")
	}

	return r
}
