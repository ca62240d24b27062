// Package redis 提供 Redis 缓存操作的封装
// 本文件包含 String 类型的基础操作
package redis

import (
	"context"
	"errors"
	"time"

	"cm_contact_server/pkg/errorx"

	"github.com/redis/go-redis/v9"
)

// SetKeyEx 设置键值对并指定过期时间
func SetKeyEx(ctx context.Context, key string, value string, timeout time.Duration) error {
	if err := redisClient.Set(ctx, key, value, timeout).Err(); err != nil {
		return errorx.Wrapf(err, errorx.CodeCacheError, "redis set key %s", key)
	}
	return nil
}

// GetKey 获取键对应的值
// 如果键不存在，返回空字符串和 nil（不视为错误）
func GetKey(ctx context.Context, key string) (string, error) {
	value, err := redisClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil // 键不存在，返回空但不报错
		}
		return "", errorx.Wrapf(err, errorx.CodeCacheError, "redis get key %s", key)
	}
	return value, nil
}

// GetKeyNilIsErr 获取键对应的值（键不存在视为错误）
// 与 GetKey 的区别：如果键不存在，返回 CodeNotFound 错误
func GetKeyNilIsErr(ctx context.Context, key string) (string, error) {
	value, err := redisClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", errorx.Wrapf(err, errorx.CodeNotFound, "redis key %s not found", key)
		}
		return "", errorx.Wrapf(err, errorx.CodeCacheError, "redis get key %s", key)
	}
	return value, nil
}

// DelKeyIfExists 删除键（键不存在不视为错误）
func DelKeyIfExists(ctx context.Context, key string) error {
	if err := redisClient.Del(ctx, key).Err(); err != nil {
		return errorx.Wrapf(err, errorx.CodeCacheError, "redis del key %s", key)
	}
	return nil
}
