package processor

import (
	"time"

	"github.com/rs/zerolog"
)

// Option Processor 的配置选项
type Option func(*Processor)

// WithShortlistSize 设置第一阶段入围人数，默认10
func WithShortlistSize(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.shortlistSize = n
		}
	}
}

// WithFinalSize 设置最终推荐人数，默认5
func WithFinalSize(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.finalSize = n
		}
	}
}

// WithLogger 注入日志器
func WithLogger(l zerolog.Logger) Option {
	return func(p *Processor) {
		p.logger = l
	}
}

// WithClock 注入时钟，候选人ID由注册时间派生，测试时用固定时钟
func WithClock(now func() time.Time) Option {
	return func(p *Processor) {
		p.now = now
	}
}
