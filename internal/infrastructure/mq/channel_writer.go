package mq

import (
	"cm_contact_server/pkg/constants"

	"go.uber.org/zap"
)

// channelEventWriter channel 模式的事件写入器
// 事件进入缓冲通道，由后台协程落到结构化日志
// 通道满时降级为同步写，保证事件不丢
type channelEventWriter struct {
	ch   chan []byte
	done chan struct{}
}

// NewChannelEventWriter 创建 channel 模式写入器并启动消费协程
func NewChannelEventWriter() EventWriter {
	w := &channelEventWriter{
		ch:   make(chan []byte, constants.EVENT_CHANNEL_SIZE),
		done: make(chan struct{}),
	}
	go w.drain()
	return w
}

// drain 后台消费循环
func (w *channelEventWriter) drain() {
	defer close(w.done)
	for payload := range w.ch {
		w.log(payload)
	}
}

func (w *channelEventWriter) log(payload []byte) {
	zap.L().Info("contact event", zap.ByteString("event", payload))
}

// WriteEvent 写入事件
func (w *channelEventWriter) WriteEvent(payload []byte) error {
	select {
	case w.ch <- payload:
	default:
		// 降级：同步写
		zap.L().Warn("event channel full, logging synchronously")
		w.log(payload)
	}
	return nil
}

// Close 关闭通道并等待剩余事件消费完
func (w *channelEventWriter) Close() error {
	close(w.ch)
	<-w.done
	return nil
}
