package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"cm_contact_server/internal/config"
	dao "cm_contact_server/internal/dao/mysql"
	myredis "cm_contact_server/internal/dao/redis"
	"cm_contact_server/internal/handler"
	"cm_contact_server/internal/https_server"
	"cm_contact_server/internal/infrastructure/logger"
	"cm_contact_server/internal/infrastructure/mq"
	"cm_contact_server/internal/service"
	"cm_contact_server/pkg/util/jwt"

	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	conf := config.GetConfig()

	// 2. 初始化日志
	if err := logger.Init(&conf.LogConfig, conf.MainConfig.Mode); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	zap.L().Info("日志初始化成功")

	// 3. 初始化数据库，建表并返回仓储聚合
	repos := dao.Init()
	zap.L().Info("数据库初始化成功")

	// 4. 初始化 Redis
	myredis.Init()
	zap.L().Info("Redis 初始化成功")

	// 5. 初始化 JWT
	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry, conf.JWTConfig.RefreshTokenExpiry)
	zap.L().Info("JWT 初始化成功")

	// 6. 初始化变更事件日志（channel 或 kafka 模式）
	mq.Init()
	zap.L().Info("事件日志初始化成功")

	// 7. 初始化 validator 翻译器
	if err := handler.InitTrans("en"); err != nil {
		zap.L().Fatal("validator 翻译器初始化失败", zap.Error(err))
	}

	// 8. 依赖注入：Repository -> Service -> Handler
	services := service.NewServices(repos)
	handlers := handler.NewHandlers(services)

	// 9. 初始化 HTTP 服务器
	engine := https_server.Init(handlers)
	zap.L().Info("HTTP 服务器初始化成功")

	// 10. 启动服务
	host := conf.MainConfig.Host
	port := conf.MainConfig.Port
	go func() {
		if err := engine.Run(fmt.Sprintf("%s:%d", host, port)); err != nil {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()

	// 设置信号监听，等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("关闭服务器...")

	// 关闭事件日志，排空未写出的事件
	mq.Close()

	zap.L().Info("服务器已关闭")
}
