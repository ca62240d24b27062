// Package user 提供用户业务逻辑
// 处理注册、登录和登出
package user

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"cm_contact_server/internal/dao/mysql/repository"
	myredis "cm_contact_server/internal/dao/redis"
	"cm_contact_server/internal/dto/request"
	"cm_contact_server/internal/dto/respond"
	"cm_contact_server/internal/model"
	"cm_contact_server/pkg/constants"
	"cm_contact_server/pkg/errorx"
	"cm_contact_server/pkg/util/jwt"
)

// userService 用户业务逻辑实现
// 通过构造函数注入 Repository 依赖
type userService struct {
	repos *repository.Repositories
}

// NewUserService 构造函数
func NewUserService(repos *repository.Repositories) *userService {
	return &userService{repos: repos}
}

// tokenKey 当前有效 Refresh Token ID 在 Redis 中的键
func tokenKey(userId uint) string {
	return "user_token:" + strconv.FormatUint(uint64(userId), 10)
}

// checkUsernameExist 检查用户名是否已被占用
func (u *userService) checkUsernameExist(username string) error {
	_, err := u.repos.User.FindByUsername(username)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil // 用户名可用
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	return errorx.New(errorx.CodeUserExist, "that username is already taken")
}

// Register 注册
func (u *userService) Register(req request.RegisterRequest) (*respond.RegisterRespond, error) {
	username := strings.TrimSpace(req.Username)
	if err := u.checkUsernameExist(username); err != nil {
		return nil, err
	}

	newUser := &model.User{
		Username:    username,
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		RawPassword: req.Password, // BeforeSave Hook 负责 bcrypt 加密
	}
	if err := u.repos.User.Create(newUser); err != nil {
		zap.L().Error("创建用户失败", zap.Error(err))
		return nil, err
	}

	return &respond.RegisterRespond{
		UserCreated: true,
		Id:          newUser.ID,
	}, nil
}

// Login 密码登录
// 成功后签发双 Token，并把 Refresh Token ID 存入 Redis 实现单点互踢
func (u *userService) Login(req request.LoginRequest) (*respond.LoginRespond, error) {
	user, err := u.repos.User.FindByUsername(strings.TrimSpace(req.Username))
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUserNotExist, "no account found for that username")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	if !user.CheckPassword(req.Password) {
		return nil, errorx.New(errorx.CodeInvalidPassword, "incorrect password")
	}

	accessToken, err := jwt.GenerateAccessToken(user.ID)
	if err != nil {
		zap.L().Error("生成 Access Token 失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	refreshToken, tokenID, err := jwt.GenerateRefreshToken(user.ID)
	if err != nil {
		zap.L().Error("生成 Refresh Token 失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	// 将 Refresh Token ID 存入 Redis，同一账号只保留最后一次登录
	expiry := time.Duration(constants.REFRESH_TOKEN_EXPIRY_HOURS) * time.Hour
	if err := myredis.SetKeyEx(context.Background(), tokenKey(user.ID), tokenID, expiry); err != nil {
		// 不阻塞登录流程，仅记录日志
		zap.L().Error("存储 Token ID 到 Redis 失败", zap.Error(err))
	}

	return &respond.LoginRespond{
		IsAuthenticated: true,
		UserId:          user.ID,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		AccessToken:     accessToken,
		RefreshToken:    refreshToken,
	}, nil
}

// RefreshToken 用 Refresh Token 换取新的 Access Token
// 校验流程：
//  1. 解析 Refresh Token（过期或签名错误直接拒绝）
//  2. 必须是 Refresh Token（防止拿 Access Token 来续期）
//  3. Token ID 必须与 Redis 中保存的一致，实现单点互踢：
//     账号在别处重新登录后，旧的 Refresh Token 即作废
func (u *userService) RefreshToken(refreshToken string) (string, error) {
	claims, err := jwt.ParseToken(refreshToken)
	if err != nil {
		return "", errorx.New(errorx.CodeUnauthorized, "refresh token is expired or invalid, please log in again")
	}
	if claims.Subject != "refresh_token" {
		return "", errorx.New(errorx.CodeUnauthorized, "a refresh token is required")
	}

	validTokenID, err := myredis.GetKey(context.Background(), tokenKey(claims.UserID))
	if err != nil || validTokenID == "" {
		return "", errorx.New(errorx.CodeUnauthorized, "login session is no longer active, please log in again")
	}
	if claims.TokenID != validTokenID {
		return "", errorx.New(errorx.CodeUnauthorized, "this account was logged in on another device, please log in again")
	}

	accessToken, err := jwt.GenerateAccessToken(claims.UserID)
	if err != nil {
		zap.L().Error("生成 Access Token 失败", zap.Error(err))
		return "", errorx.ErrServerBusy
	}
	return accessToken, nil
}

// Logout 登出
// 删除 Redis 中的 Refresh Token ID，使续期失效
// 缓存异常不向调用方暴露：登出在客户端语义上总是成功的
func (u *userService) Logout(userId uint) error {
	if err := myredis.DelKeyIfExists(context.Background(), tokenKey(userId)); err != nil {
		zap.L().Error("删除 Token ID 失败", zap.Error(err), zap.Uint("userId", userId))
	}
	return nil
}
