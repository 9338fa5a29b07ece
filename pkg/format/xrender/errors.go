package xrender

import "errors"

// ErrKindMismatch 表示 Cycle 的地址类型与对应指令不一致。
var ErrKindMismatch = errors.New("xrender: cycle kind does not match directive")
