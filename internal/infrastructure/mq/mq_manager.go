package mq

import (
	myconfig "cm_contact_server/internal/config"

	"go.uber.org/zap"
)

// Init 根据配置选择事件写入模式并注入实现
// mode 为 "kafka" 时使用 Kafka，其余情况一律使用进程内 channel 模式
func Init() {
	cfg := &myconfig.GetConfig().EventLogConfig
	if cfg.Mode == "kafka" {
		SetEventWriter(NewKafkaEventWriter(cfg))
		zap.L().Info("事件日志使用 kafka 模式", zap.String("topic", cfg.Topic))
		return
	}
	SetEventWriter(NewChannelEventWriter())
	zap.L().Info("事件日志使用 channel 模式")
}

// Close 关闭事件写入器
func Close() {
	if w := GetEventWriter(); w != nil {
		if err := w.Close(); err != nil {
			zap.L().Error(err.Error())
		}
	}
}
