package xnet

import "net/netip"

// Version 表示 IP 协议版本。
type Version uint8

const (
	// V0 表示无效或未知的 IP 版本。
	V0 Version = 0
	// V4 表示 IPv4。
	V4 Version = 4
	// V6 表示 IPv6。
	V6 Version = 6
)

// String 返回版本的字符串表示。
func (v Version) String() string {
	switch v {
	case V4:
		return "IPv4"
	case V6:
		return "IPv6"
	default:
		return "unknown"
	}
}

// AddrVersion 返回地址的 IP 版本。
// IPv4-mapped 地址（::ffff:a.b.c.d）按 16 字节值处理，返回 V6。无效地址返回 V0。
func AddrVersion(addr netip.Addr) Version {
	switch {
	case addr.Is4():
		return V4
	case addr.IsValid():
		return V6
	default:
		return V0
	}
}
