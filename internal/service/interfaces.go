// Package service 定义业务层接口
// 本文件定义所有 Service 接口，供 Handler 层调用
// 接口设计遵循依赖倒置原则，便于测试和解耦
package service

import (
	"cm_contact_server/internal/dto/request"
	"cm_contact_server/internal/dto/respond"
)

// UserService 用户业务接口
// 处理用户注册、登录、登出
type UserService interface {
	// Register 用户注册
	Register(req request.RegisterRequest) (*respond.RegisterRespond, error)
	// Login 密码登录，签发 Access/Refresh Token
	Login(req request.LoginRequest) (*respond.LoginRespond, error)
	// RefreshToken 用有效的 Refresh Token 换取新的 Access Token
	RefreshToken(refreshToken string) (string, error)
	// Logout 登出，使当前 Refresh Token 失效
	Logout(userId uint) error
}

// ContactService 联系人业务接口
// 所有操作都以 userId 做归属过滤
type ContactService interface {
	// Search 分页搜索联系人
	Search(req request.SearchContactsRequest) (*respond.SearchContactsRespond, error)
	// Add 新增联系人，返回新记录的 id
	Add(req request.AddContactRequest) (uint, error)
	// Update 全字段更新联系人（含归属检查和重复检查）
	Update(req request.UpdateContactRequest) error
	// Delete 删除联系人（归属过滤，不区分"不存在"和"不属于该用户"）
	Delete(userId, contactId uint) error
}
