package app

import (
	"learnsphere_backend/internal/config"
	"learnsphere_backend/internal/middleware"
	"learnsphere_backend/internal/model"
	"learnsphere_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c, repos)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerStudentRoutes(authGroup, c)
	}

	// 3. 管理员相关接口
	a.registerAdminRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers, repos *repositories) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.Check)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// 目录浏览：可选认证，登录且已测评的用户拿到个性化推荐
	goals := router.Group("/api/goals")
	goals.Use(middleware.TryAuthMiddleware(a.Config), middleware.ActivityMiddleware(repos.user))
	{
		goals.GET("/recommendations", c.goal.GetRecommendations)
		goals.GET("/search", c.goal.SearchGoals)
	}
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)
	rg.PUT("/user/profile", c.user.UpdateProfile)
	rg.POST("/user/avatar/upload", c.user.UploadAvatar)

	// 入学测评
	rg.GET("/assessment/quiz", c.assessment.GetQuiz)
	rg.POST("/assessment/submit", c.assessment.Submit)
	rg.GET("/assessment/report", c.assessment.GetReport)

	// 游戏化
	rg.GET("/leaderboard", c.gamification.GetLeaderboard)
	rg.GET("/leaderboard/me", c.gamification.GetMyRank)

	// AI学习导师
	rg.POST("/chat", c.chat.Chat)
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/goals", c.goal.ListGoals)
		admin.POST("/goals", c.goal.CreateGoal)
		admin.PUT("/goals/:id", c.goal.UpdateGoal)
		admin.DELETE("/goals/:id", c.goal.DeleteGoal)

		admin.GET("/questions", c.assessment.ListQuestions)
		admin.POST("/questions", c.assessment.CreateQuestion)
		admin.PUT("/questions/:id", c.assessment.UpdateQuestion)
		admin.DELETE("/questions/:id", c.assessment.DeleteQuestion)

		admin.GET("/submissions", c.assessment.ListSubmissions)
	}
}
