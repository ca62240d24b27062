// Package model 定义数据库实体模型
// 本文件定义用户模型，包含账号资料和认证信息
package model

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User 用户模型
// 对应数据库 user 表
type User struct {
	gorm.Model // 内嵌 GORM 模型，包含 ID、CreatedAt、UpdatedAt、DeletedAt

	// Username 登录用户名，唯一
	Username string `gorm:"column:username;uniqueIndex;type:varchar(50);not null;comment:用户名"`

	// FirstName / LastName 用户姓名，注册时填写
	FirstName string `gorm:"column:first_name;type:varchar(50);not null;comment:名"`
	LastName  string `gorm:"column:last_name;type:varchar(50);not null;comment:姓"`

	// Password 密码（已哈希）
	// 存储 bcrypt 哈希后的密码，不存储明文
	Password string `gorm:"column:password;type:varchar(100);not null;comment:密码"`

	// RawPassword 明文密码（不存入数据库）
	// 用于接收前端传来的明文密码，在 BeforeSave 中加密
	RawPassword string `gorm:"-" json:"-"`
}

// TableName 指定表名
func (User) TableName() string {
	return "user"
}

// BeforeSave GORM Hook：在创建和更新前自动调用
// 将 RawPassword 明文密码加密后存入 Password 字段
// 调用方只需设置 RawPassword，无需手动加密
func (u *User) BeforeSave(tx *gorm.DB) (err error) {
	if u.RawPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.RawPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hash)
		u.RawPassword = "" // 清空明文，防止泄露
	}
	return nil
}

// CheckPassword 校验密码是否正确，用于登录时验证
func (u *User) CheckPassword(plaintext string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plaintext))
	return err == nil
}
