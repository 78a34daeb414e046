package router

import (
	"wms/internal/handlers"
	"wms/internal/middleware"
	"wms/pkg/config"
	"wms/pkg/response"
	"wms/pkg/session"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter 设置路由。放行名单只有登录和健康检查，
// 其余接口统一经过会话鉴权。
func SetupRouter(cfg *config.Config, db *gorm.DB, sessions *session.Manager) *gin.Engine {
	router := gin.New()

	// 中间件
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.SetupCORS(cfg))

	registerRoutes(router, db, sessions)
	return router
}

// 注册所有路由
func registerRoutes(router *gin.Engine, db *gorm.DB, sessions *session.Manager) {

	auth := middleware.NewAuthMiddleware(db, sessions)

	api := router.Group("/api/v1")
	{
		// 健康检查接口（放行）
		api.GET("/health", healthCheck)
		api.GET("/ping", ping)

		// 认证路由
		authHandler := handlers.NewAuthHandler(db, sessions)
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)   // 登录（放行）
			authGroup.POST("/logout", authHandler.Logout) // 登出，幂等

			authGroup.GET("/profile", auth.RequireLogin(), authHandler.Profile)
			authGroup.GET("/menus", auth.RequireLogin(), authHandler.Menus)
		}

		// 货主主档路由
		ownerHandler := handlers.NewOwnerHandler(db)
		owners := api.Group("/owners")
		owners.Use(auth.RequireLogin())
		{
			owners.POST("", auth.RequirePermission("owner:create"), ownerHandler.Create)
			owners.GET("", auth.RequirePermission("owner:list"), ownerHandler.List)
			owners.GET("/search", auth.RequirePermission("owner:list"), ownerHandler.Search)
			owners.GET("/:id", auth.RequirePermission("owner:read"), ownerHandler.GetByID)
			owners.PUT("/:id", auth.RequirePermission("owner:update"), ownerHandler.Update)
			owners.DELETE("/:id", auth.RequirePermission("owner:delete"), ownerHandler.Delete)
		}
	}
}

// healthCheck 健康检查
func healthCheck(c *gin.Context) {
	response.Success(c, gin.H{
		"status": "ok",
	})
}

// ping 存活探针
func ping(c *gin.Context) {
	response.SuccessWithMessage(c, "pong", nil)
}
