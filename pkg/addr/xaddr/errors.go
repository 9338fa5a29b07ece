package xaddr

import "errors"

var (
	// ErrInvalidMAC 表示文本不是有效的 MAC 地址或整数。
	ErrInvalidMAC = errors.New("xaddr: invalid MAC address")

	// ErrInvalidIPv4 表示文本不是有效的 IPv4 地址或整数。
	ErrInvalidIPv4 = errors.New("xaddr: invalid IPv4 address")

	// ErrInvalidIPv6 表示文本不是有效的 IPv6 地址或整数。
	ErrInvalidIPv6 = errors.New("xaddr: invalid IPv6 address")

	// ErrInvalidNumber 表示文本不是有效的整数。
	ErrInvalidNumber = errors.New("xaddr: invalid number")

	// ErrUnknownKind 表示未知的地址类型。
	ErrUnknownKind = errors.New("xaddr: unknown kind")
)
