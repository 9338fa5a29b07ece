package xrun

import (
	"errors"
	"fmt"
	"os"
)

// ErrSignal 表示因收到系统信号而终止。
// 使用 errors.Is(err, ErrSignal) 判断是否为信号错误。
var ErrSignal = errors.New("xrun: received signal")

// ErrNilJob 表示传入的 Job 为 nil。
var ErrNilJob = errors.New("xrun: nil job")

// SignalError 包含触发终止的具体信号。
//
//	var sigErr *xrun.SignalError
//	if errors.As(err, &sigErr) {
//	    fmt.Printf("received signal: %v\n", sigErr.Signal)
//	}
type SignalError struct {
	Signal os.Signal
}

// Error 实现 error 接口。
func (e *SignalError) Error() string {
	if e.Signal == nil {
		return "received signal <nil>"
	}
	return fmt.Sprintf("received signal %s", e.Signal)
}

// Is 支持 errors.Is(err, ErrSignal) 判断。
func (e *SignalError) Is(target error) bool {
	return target == ErrSignal
}

// Unwrap 返回 ErrSignal。
func (e *SignalError) Unwrap() error {
	return ErrSignal
}

// ExitCode 返回 shell 约定的退出码（128 + 信号值），未知信号返回 130。
func (e *SignalError) ExitCode() int {
	if n, ok := signalNumber(e.Signal); ok {
		return 128 + n
	}
	return 130
}
