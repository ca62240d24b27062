// Package router 提供 HTTP 路由注册
// 本文件是路由注册的入口，聚合所有子模块的路由
package router

import (
	"net/http"

	"cm_contact_server/internal/handler"

	"github.com/gin-gonic/gin"
)

// Router 路由管理器，持有 Handler 聚合对象
type Router struct {
	handlers *handler.Handlers
}

// NewRouter 创建路由管理器实例
func NewRouter(handlers *handler.Handlers) *Router {
	return &Router{handlers: handlers}
}

// RegisterRoutes 注册所有路由
// 在 https_server.Init() 中调用
func (rt *Router) RegisterRoutes(r *gin.Engine) {
	// 所有业务接口只接受 POST，错误的方法返回统一信封
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"errType": "InvalidRequest",
			"desc":    "invalid request method sent",
		})
	})

	rt.registerUserRoutes(r)    // 注册/登录/登出
	rt.registerContactRoutes(r) // 联系人增删改查
}
