package mq

import (
	"context"
	"time"

	myconfig "cm_contact_server/internal/config"

	"github.com/segmentio/kafka-go"
)

// kafkaEventWriter kafka 模式的事件写入器
type kafkaEventWriter struct {
	writer *kafka.Writer
}

// NewKafkaEventWriter 根据配置创建 kafka 写入器
func NewKafkaEventWriter(cfg *myconfig.EventLogConfig) EventWriter {
	return &kafkaEventWriter{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.HostPort),
			Topic:                  cfg.Topic,
			Balancer:               &kafka.Hash{},
			WriteTimeout:           cfg.Timeout * time.Second,
			RequiredAcks:           kafka.RequireNone,
			AllowAutoTopicCreation: true,
		},
	}
}

// WriteEvent 写入事件到 Kafka 主题
func (w *kafkaEventWriter) WriteEvent(payload []byte) error {
	return w.writer.WriteMessages(context.Background(), kafka.Message{
		Value: payload,
	})
}

// Close 关闭 Kafka writer
func (w *kafkaEventWriter) Close() error {
	return w.writer.Close()
}
