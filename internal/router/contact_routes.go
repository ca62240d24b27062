package router

import (
	"cm_contact_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// registerContactRoutes 注册联系人相关路由
// 所有联系人接口都要求登录
func (rt *Router) registerContactRoutes(r *gin.Engine) {
	contactGroup := r.Group("/api")
	contactGroup.Use(middleware.JWTAuth())
	{
		contactGroup.POST("/searchContacts", rt.handlers.Contact.Search)
		contactGroup.POST("/addContact", rt.handlers.Contact.Add)
		contactGroup.POST("/updateContact", rt.handlers.Contact.Update)
		contactGroup.POST("/deleteContact", rt.handlers.Contact.Delete)
	}
}
