package router

import (
	"cm_contact_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// registerUserRoutes 注册用户相关路由
func (rt *Router) registerUserRoutes(r *gin.Engine) {
	// 公开接口 (无需认证)
	// refresh 本身以 Refresh Token 为凭证，不走 Access Token 中间件
	r.POST("/api/register", rt.handlers.User.Register)
	r.POST("/api/login", rt.handlers.User.Login)
	r.POST("/api/refresh", rt.handlers.User.Refresh)

	// 需要认证的接口
	userGroup := r.Group("/api")
	userGroup.Use(middleware.JWTAuth())
	{
		userGroup.POST("/logout", rt.handlers.User.Logout)
	}
}
