// Package repository 定义数据访问层接口和聚合结构
// 采用 Repository 模式将数据访问逻辑与业务逻辑分离
// 所有 Repository 接口在此文件定义，具体实现在各自的文件中
package repository

import (
	"errors"

	"cm_contact_server/internal/model"
	"cm_contact_server/pkg/errorx"

	"gorm.io/gorm"
)

// ==================== 错误包装辅助函数 ====================

// wrapDBError 包装数据库错误
// 根据错误类型返回不同的错误码：
//   - ErrRecordNotFound -> CodeNotFound
//   - 其他错误 -> CodeDBError
func wrapDBError(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.Wrap(err, errorx.CodeNotFound, msg)
	}
	return errorx.Wrap(err, errorx.CodeDBError, msg)
}

// wrapDBErrorf 包装数据库错误（支持格式化消息）
func wrapDBErrorf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.Wrapf(err, errorx.CodeNotFound, format, args...)
	}
	return errorx.Wrapf(err, errorx.CodeDBError, format, args...)
}

// ==================== Repository 接口定义 ====================

// UserRepository 用户数据访问接口
type UserRepository interface {
	// FindByID 根据主键查找用户
	FindByID(id uint) (*model.User, error)
	// FindByUsername 根据用户名查找用户
	FindByUsername(username string) (*model.User, error)
	// Create 创建新用户
	Create(user *model.User) error
}

// ContactRepository 联系人数据访问接口
// 所有按联系人ID的操作都同时带 userId 做归属过滤
type ContactRepository interface {
	// FindByIDAndUserID 按归属用户查找单个联系人
	FindByIDAndUserID(contactID, userID uint) (*model.Contact, error)
	// SearchPage 按搜索词查找归属用户的联系人，按 last_name, first_name, id 排序
	// term 为空时返回所有联系人；limit/offset 由调用方计算（含多取一行探测下一页）
	SearchPage(userID uint, term string, offset, limit int) ([]model.Contact, error)
	// CountSearch 统计同一过滤条件下的总行数（不带 limit/offset）
	CountSearch(userID uint, term string) (int64, error)
	// Create 创建联系人
	Create(contact *model.Contact) error
	// UpdateFields 全字段替换，按 id AND user_id 过滤
	UpdateFields(contactID, userID uint, firstName, lastName, phone, email string) error
	// CountDuplicates 统计同一用户下其它联系人中与给定非空 email/phone 重复的行数
	CountDuplicates(userID, excludeContactID uint, email, phone string) (int64, error)
	// DeleteScoped 按 id AND user_id 删除，返回删除的行数
	DeleteScoped(contactID, userID uint) (int64, error)
}

// Repositories 聚合所有 Repository 实例
// 作为依赖注入的入口，Service 层通过此结构访问数据层
type Repositories struct {
	db      *gorm.DB
	User    UserRepository
	Contact ContactRepository
}

// NewRepositories 创建所有 Repository 实例
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:      db,
		User:    NewUserRepository(db),
		Contact: NewContactRepository(db),
	}
}

// Transaction 在数据库事务中执行函数
// 事务内的所有操作要么全部成功，要么全部回滚
func (r *Repositories) Transaction(fn func(txRepos *Repositories) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
