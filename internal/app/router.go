package app

import (
	"exam_prep_backend/docs"
	"exam_prep_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	router.GET("/health", c.health.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/analyze-files", c.study.AnalyzeFiles)
		api.POST("/generate-study-plan", c.study.GenerateStudyPlan)
		api.POST("/generate-test-paper", c.study.GenerateTestPaper)
	}
}
