package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/matisaar/T661-Checker/config"
	"github.com/matisaar/T661-Checker/internal/handler"
)

func Setup(
	cfg *config.Config,
	statusHandler *handler.StatusHandler,
	generationHandler *handler.GenerationHandler,
	feedbackHandler *handler.FeedbackHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/", statusHandler.Root)
	r.GET("/health", statusHandler.Health)

	api := r.Group("/api")
	api.Use(gzip.Gzip(gzip.BestCompression))
	{
		api.POST("/generate", generationHandler.Generate)
		api.POST("/improve", generationHandler.Improve)

		feedback := api.Group("/feedback")
		{
			feedback.POST("", feedbackHandler.Submit)
			feedback.GET("", feedbackHandler.List)
			feedback.POST("/export", feedbackHandler.Export)
		}

		generations := api.Group("/generations")
		{
			generations.GET("", generationHandler.List)
			generations.GET("/:id", generationHandler.Get)
		}
	}

	return r
}
