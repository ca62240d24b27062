// Package redis 提供 Redis 缓存操作的封装
// 本文件仅包含 Redis 连接初始化逻辑
// 使用 github.com/redis/go-redis/v9 作为底层客户端
package redis

import (
	"strconv"

	"cm_contact_server/internal/config"

	"github.com/redis/go-redis/v9"
)

// redisClient 全局 Redis 客户端实例（包内可见）
var redisClient *redis.Client

// Init 初始化 Redis 连接
// 从配置文件读取连接参数并创建客户端实例
func Init() {
	conf := config.GetConfig()
	host := conf.RedisConfig.Host
	port := conf.RedisConfig.Port
	password := conf.RedisConfig.Password
	db := conf.Db

	addr := host + ":" + strconv.Itoa(port)

	InitWithOptions(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,

		// 连接池配置
		PoolSize:     20, // 最大连接数
		MinIdleConns: 5,  // 最小空闲连接
	})
}

// InitWithOptions 用给定的连接参数初始化客户端
// 测试可以绕过配置文件直接注入参数
func InitWithOptions(opts *redis.Options) {
	redisClient = redis.NewClient(opts)
}
