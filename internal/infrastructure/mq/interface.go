// Package mq 提供联系人变更事件日志
// 支持两种模式：
//   - channel: 事件经进程内缓冲通道落到结构化日志
//   - kafka:   事件写入 Kafka 主题，供下游系统消费
package mq

// EventWriter 事件写入接口
// 用于解耦 Service 层和具体的事件通道实现
// Service 层只需知道"有个东西能写事件"，不需要知道具体实现
type EventWriter interface {
	// WriteEvent 写入一条事件 (JSON bytes)
	WriteEvent(payload []byte) error
	// Close 关闭底层资源
	Close() error
}

// eventWriter 用于存储注入的 EventWriter 实现
var eventWriter EventWriter

// SetEventWriter 注入 EventWriter 实现
func SetEventWriter(w EventWriter) {
	eventWriter = w
}

// GetEventWriter 获取 EventWriter 实现
func GetEventWriter() EventWriter {
	return eventWriter
}
