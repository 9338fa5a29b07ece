package main

import "errors"

// errMissingFormat 表示既没有 FORMAT 也没有 --preset。
var errMissingFormat = errors.New("missing FORMAT argument (or --preset)")

// errUnknownPreset 表示 --preset 指定的名称不在配置中。
var errUnknownPreset = errors.New("unknown preset")

// exitError 携带退出码的错误，Error 直接返回底层错误的信息。
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

// usageError 把输入类错误（用法、解析、配置）标记为退出码 2。
func usageError(err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: exitUsage, err: err}
}
