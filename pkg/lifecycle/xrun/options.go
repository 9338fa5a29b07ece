package xrun

import (
	"os"

	"github.com/omeyang/macipr/pkg/observability/xlog"
)

// Option 配置 Run 的选项函数。
type Option func(*runOptions)

type runOptions struct {
	logger          xlog.Logger
	name            string
	signals         []os.Signal
	noSignalHandler bool

	// 测试注入的信号源，生产环境为 nil
	testSignals <-chan os.Signal
}

func defaultOptions() *runOptions {
	return &runOptions{
		logger:  xlog.Discard(),
		name:    "xrun",
		signals: DefaultSignals(),
	}
}

// WithLogger 设置日志记录器，默认丢弃所有日志。
func WithLogger(logger xlog.Logger) Option {
	return func(o *runOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithName 设置任务名称，用于日志中的 component 字段。
func WithName(name string) Option {
	return func(o *runOptions) {
		if name != "" {
			o.name = name
		}
	}
}

// WithSignals 设置监听的信号列表，覆盖 DefaultSignals()。
// 传入空列表等价于 WithoutSignalHandler。
func WithSignals(signals []os.Signal) Option {
	copied := append([]os.Signal(nil), signals...)
	return func(o *runOptions) {
		o.signals = copied
	}
}

// WithoutSignalHandler 禁用信号监听。
func WithoutSignalHandler() Option {
	return func(o *runOptions) {
		o.noSignalHandler = true
	}
}

// withSignalSource 注入测试信号源，避免测试中发送真实系统信号。
func withSignalSource(c <-chan os.Signal) Option {
	return func(o *runOptions) {
		o.testSignals = c
	}
}
