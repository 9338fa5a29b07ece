package xrotate

import "io"

var _ io.WriteCloser = (Rotator)(nil)

// Rotator 日志轮转器接口
//
// 隐式实现 [io.WriteCloser]，可直接作为 xlog 的输出目标。
// 约定：
//   - Write 必须是并发安全的
//   - Close 后调用 Write 或 Rotate 返回 [ErrClosed]
type Rotator interface {
	// Write 写入日志数据，达到轮转条件时自动轮转
	Write(p []byte) (n int, err error)

	// Close 关闭轮转器，重复调用返回 [ErrClosed]
	Close() error

	// Rotate 手动触发轮转：当前文件重命名为备份，创建新文件
	Rotate() error
}
