package xnet

import (
	"fmt"
	"net/netip"
	"strings"
)

// ParseIPv4 解析 IPv4 地址。支持 2 种格式：
//   - 点分十进制: "192.168.1.1"（每段 0~255，不允许前导零）
//   - 整数字面量: "3232235777" 或 "0xc0a80101"，按 2^32 取模
//
// 输入会自动去除首尾空白字符。
func ParseIPv4(s string) (netip.Addr, error) {
	s = strings.TrimSpace(s)
	if v, ok := ParseUint128(s); ok {
		// Lo 的低 32 位就是 v mod 2^32
		return AddrFromUint32(uint32(v.Lo)), nil
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if !addr.Is4() {
		return netip.Addr{}, fmt.Errorf("%w: %w: %q is not IPv4", ErrInvalidAddress, ErrInvalidVersion, s)
	}
	return addr, nil
}

// ParseIPv6 解析 IPv6 地址。支持 2 种格式：
//   - RFC 4291 文本: "fe80::1"、"::ffff:192.168.1.1"、"2001:db8:0:0:0:0:0:1"
//   - 整数字面量: "100000" 或 "0x186a0"，按 2^128 取模
//
// 结果总是 16 字节地址。拒绝 zone ID 和纯 IPv4 文本。
func ParseIPv6(s string) (netip.Addr, error) {
	s = strings.TrimSpace(s)
	if v, ok := ParseUint128(s); ok {
		return AddrFromUint128(v), nil
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if !addr.Is6() {
		return netip.Addr{}, fmt.Errorf("%w: %w: %q is not IPv6", ErrInvalidAddress, ErrInvalidVersion, s)
	}
	if addr.Zone() != "" {
		return netip.Addr{}, fmt.Errorf("%w: zone ID is not supported: %q", ErrInvalidAddress, s)
	}
	return addr, nil
}
