// Package handler 提供 HTTP 请求处理器
// 本文件处理用户注册登录相关的 API 请求
package handler

import (
	"cm_contact_server/internal/dto/request"
	"cm_contact_server/internal/service"
	"cm_contact_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// UserHandler 用户请求处理器
// 通过构造函数注入 UserService，遵循依赖倒置原则
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler 创建用户处理器实例
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// Register 用户注册
// POST /api/register
// 请求体: request.RegisterRequest
// 响应: { userCreated: bool, id: uint }
func (h *UserHandler) Register(c *gin.Context) {
	// 1. 绑定并验证请求参数
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	// 2. 调用 Service 层处理业务逻辑
	data, err := h.userSvc.Register(req)
	if err != nil {
		HandleError(c, err)
		return
	}

	// 3. 返回成功响应
	HandleSuccess(c, gin.H{
		"userCreated": data.UserCreated,
		"id":          data.Id,
	})
}

// Login 用户登录（密码登录）
// POST /api/login
// 请求体: request.LoginRequest
// 响应: 用户信息 + JWT Token
func (h *UserHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.userSvc.Login(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{
		"isAuthenticated": data.IsAuthenticated,
		"userId":          data.UserId,
		"firstName":       data.FirstName,
		"lastName":        data.LastName,
		"accessToken":     data.AccessToken,
		"refreshToken":    data.RefreshToken,
	})
}

// Refresh 刷新 Access Token
// POST /api/refresh
// 请求体: request.RefreshTokenRequest
// 响应: { accessToken: string }
//
// 单点互踢：Refresh Token 里的 Token ID 必须与 Redis 中
// 保存的一致，账号在别处登录后旧 Token 续期会被拒绝
func (h *UserHandler) Refresh(c *gin.Context) {
	var req request.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	accessToken, err := h.userSvc.RefreshToken(req.RefreshToken)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"accessToken": accessToken})
}

// Logout 退出登录，清除 Redis 中的 Token ID
// POST /api/logout
// 请求体: request.LogoutRequest
func (h *UserHandler) Logout(c *gin.Context) {
	var req request.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	// 只能注销自己的登录态
	if !authorizedFor(c, req.UserId) {
		HandleError(c, errorx.New(errorx.CodeUnauthorized, "token does not match the requested user"))
		return
	}

	if err := h.userSvc.Logout(req.UserId); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"loggedOut": true})
}

// authorizedFor 校验请求体中的 userId 与 JWT 中的用户一致
// 防止持有合法 Token 的用户操作他人数据
func authorizedFor(c *gin.Context, userId uint) bool {
	v, exists := c.Get("user_id")
	if !exists {
		return false
	}
	tokenUserId, ok := v.(uint)
	return ok && tokenUserId == userId
}
