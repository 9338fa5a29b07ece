package xrun

import (
	"os"
	"syscall"
)

// DefaultSignals 返回默认监听的信号列表（SIGINT、SIGTERM）。
func DefaultSignals() []os.Signal {
	return []os.Signal{syscall.SIGINT, syscall.SIGTERM}
}

func signalNumber(sig os.Signal) (int, bool) {
	s, ok := sig.(syscall.Signal)
	if !ok {
		return 0, false
	}
	return int(s), true
}
