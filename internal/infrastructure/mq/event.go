package mq

import (
	"encoding/json"
	"time"

	"go.uber.org/zap"
)

// ContactEvent 联系人变更事件
// 每次成功的 add/update/delete 都会产生一条
type ContactEvent struct {
	Op        string    `json:"op"` // "add" | "update" | "delete"
	UserId    uint      `json:"userId"`
	ContactId uint      `json:"contactId"`
	At        time.Time `json:"at"`
}

// Publish 发布一条联系人变更事件
// 未初始化 EventWriter 时（如单元测试）直接丢弃
// 事件写入失败只记录日志，绝不阻断业务请求
func Publish(op string, userId, contactId uint) {
	w := GetEventWriter()
	if w == nil {
		return
	}

	payload, err := json.Marshal(ContactEvent{
		Op:        op,
		UserId:    userId,
		ContactId: contactId,
		At:        time.Now(),
	})
	if err != nil {
		zap.L().Error("marshal contact event", zap.Error(err))
		return
	}

	if err := w.WriteEvent(payload); err != nil {
		zap.L().Error("write contact event", zap.Error(err),
			zap.String("op", op), zap.Uint("userId", userId), zap.Uint("contactId", contactId))
	}
}
