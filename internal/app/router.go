package app

import (
	"play_learn_spark_backend/docs"
	"play_learn_spark_backend/internal/config"
	"play_learn_spark_backend/internal/middleware"
	"play_learn_spark_backend/internal/model"
	"play_learn_spark_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerParentRoutes(authGroup, c)
		a.registerAdminRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}
}

func (a *App) registerParentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.Me)

	// Learner profiles, scoped to the authenticated parent
	rg.POST("/learners", c.learner.CreateLearner)
	rg.GET("/learners", c.learner.ListLearners)
	rg.GET("/learners/:id", c.learner.GetLearner)
	rg.PUT("/learners/:id", c.learner.UpdateLearner)
	rg.DELETE("/learners/:id", c.learner.DeleteLearner)

	// Catalog browsing
	rg.GET("/content", c.content.ListContent)
	rg.GET("/content/:id", c.content.GetContent)

	// Session history and rewards
	rg.POST("/learners/:id/activity", c.activity.RecordActivity)
	rg.GET("/learners/:id/activity", c.activity.ListActivities)
	rg.GET("/learners/:id/rewards", c.activity.GetRewards)

	// Recommendation engine
	rg.GET("/learners/:id/recommendations", c.recommend.GetRecommendations)
	rg.GET("/learners/:id/learning-paths", c.recommend.GetLearningPaths)
}

func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	admin := rg.Group("/")
	admin.Use(middleware.RoleMiddleware(model.Admin))
	{
		admin.POST("/content", c.content.CreateContent)
		admin.PUT("/content/:id", c.content.UpdateContent)
		admin.DELETE("/content/:id", c.content.DeleteContent)
		admin.POST("/content/:id/media", c.content.UploadMedia)
	}
}
