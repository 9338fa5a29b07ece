package xnet

import "errors"

var (
	// ErrInvalidAddress 表示无效的 IP 地址字符串。
	ErrInvalidAddress = errors.New("xnet: invalid IP address")

	// ErrInvalidRange 表示无效的 IP 范围。
	ErrInvalidRange = errors.New("xnet: invalid IP range")

	// ErrInvalidVersion 表示地址版本与期望不符。
	ErrInvalidVersion = errors.New("xnet: invalid IP version")
)
