package middleware

import (
	"net/http"
	"strings"

	"cm_contact_server/pkg/util/jwt"

	"github.com/gin-gonic/gin"
)

// abortUnauthorized 以统一信封终止未认证请求
func abortUnauthorized(c *gin.Context, desc string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status":  "error",
		"errType": "AuthError",
		"desc":    desc,
	})
}

// JWTAuth JWT 认证中间件
// 验证 Access Token 并将用户 ID 存入上下文
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. 从 Header 获取 Token
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "authentication required")
			return
		}

		// 2. 解析 Bearer Token
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "malformed authorization header, expected Bearer token")
			return
		}

		// 3. 验证 Token
		claims, err := jwt.ParseToken(parts[1])
		if err != nil {
			abortUnauthorized(c, "token is expired or invalid, please log in again")
			return
		}

		// 4. 验证是否为 Access Token（防止用 Refresh Token 访问业务接口）
		if claims.Subject != "access_token" {
			abortUnauthorized(c, "an access token is required for this endpoint")
			return
		}

		// 5. 将用户 ID 存入上下文，供后续 Handler 校验归属
		c.Set("user_id", claims.UserID)
		c.Next()
	}
}
