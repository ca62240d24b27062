package model

import (
	"time"
)

// Contact 联系人模型
// 对应数据库 contact 表，每条记录归属于唯一的用户
// 不嵌入 gorm.Model：联系人是硬删除，没有 DeletedAt
type Contact struct {
	ID        uint      `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// UserId 归属用户ID，创建后不会变更
	// 所有查询和变更都必须带上该字段做归属过滤
	UserId uint `gorm:"column:user_id;index;not null;comment:归属用户id"`

	// FirstName / LastName 联系人姓名，必填
	FirstName string `gorm:"column:first_name;type:varchar(50);not null;comment:名"`
	LastName  string `gorm:"column:last_name;type:varchar(50);not null;comment:姓"`

	// Phone / Email 可选联系方式
	// 同一用户下非空的 phone/email 在更新时做重复检查
	Phone string `gorm:"column:phone;type:varchar(30);comment:电话"`
	Email string `gorm:"column:email;type:varchar(100);comment:邮箱"`
}

// TableName 指定表名
func (Contact) TableName() string {
	return "contact"
}
