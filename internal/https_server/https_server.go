// Package https_server 提供 HTTP/HTTPS 服务器的初始化和配置
// 负责创建 Gin 引擎实例并配置中间件、静态资源和路由
package https_server

import (
	"path/filepath"

	"cm_contact_server/internal/config"
	"cm_contact_server/internal/handler"
	"cm_contact_server/internal/infrastructure/logger"
	"cm_contact_server/internal/router"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Init 初始化 HTTP 服务器并返回 Gin 引擎实例
// handlers: 通过依赖注入传入的 handler 聚合对象
// 配置顺序：
//  1. 创建 Gin 引擎（空白，不含默认中间件）
//  2. 注册日志和恢复中间件
//  3. 配置 CORS 跨域规则
//  4. 映射静态页面目录
//  5. 注册业务路由
func Init(handlers *handler.Handlers) *gin.Engine {
	// 创建空白 Gin 引擎（不使用 gin.Default() 以便完全控制中间件）
	engine := gin.New()

	// 注册自定义 Zap 日志中间件，替代 Gin 默认的日志
	engine.Use(logger.GinLogger())

	// 注册 Panic 恢复中间件，参数 true 表示在日志中包含堆栈信息
	engine.Use(logger.GinRecovery(true))

	// 配置 CORS 跨域规则
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"} // 生产环境应指定具体域名
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	engine.Use(cors.New(corsConfig))

	// TLS 重定向中间件（可选，如果由 Nginx 处理 SSL 则不挂载）
	// engine.Use(middleware.TlsHandler(config.GetConfig().MainConfig.Host, config.GetConfig().MainConfig.Port))

	// 映射静态页面目录：登录页、联系人页和前端脚本
	webRoot := config.GetConfig().StaticSrcConfig.WebRoot
	if webRoot != "" {
		engine.StaticFile("/", filepath.Join(webRoot, "index.html"))
		engine.StaticFile("/index.html", filepath.Join(webRoot, "index.html"))
		engine.StaticFile("/contacts.html", filepath.Join(webRoot, "contacts.html"))
		engine.Static("/js", filepath.Join(webRoot, "js"))
		engine.Static("/css", filepath.Join(webRoot, "css"))
	}

	// 创建路由管理器并注册所有业务路由
	rt := router.NewRouter(handlers)
	rt.RegisterRoutes(engine)

	return engine
}
