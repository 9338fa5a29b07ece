package xnet

import (
	"encoding/binary"
	"net/netip"
)

// AddrFromUint32 从 IPv4 的 uint32 表示创建 [netip.Addr]。
// 使用网络字节序（大端）。
func AddrFromUint32(v uint32) netip.Addr {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return netip.AddrFrom4(b)
}

// AddrToUint32 将 IPv4 地址转换为 uint32（网络字节序）。
// 非 IPv4 地址（包括 IPv4-mapped IPv6）返回 (0, false)。
func AddrToUint32(addr netip.Addr) (uint32, bool) {
	if !addr.Is4() {
		return 0, false
	}
	b := addr.As4()
	return binary.BigEndian.Uint32(b[:]), true
}

// AddrFromUint128 从 128 位整数创建 16 字节 IPv6 地址。
func AddrFromUint128(v Uint128) netip.Addr {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], v.Hi)
	binary.BigEndian.PutUint64(b[8:], v.Lo)
	return netip.AddrFrom16(b)
}

// Uint128FromAddr 返回地址的整数表示。
// IPv4 地址得到 0~2^32-1 的值，IPv6 地址按 16 字节大端解释，无效地址返回 0。
func Uint128FromAddr(addr netip.Addr) Uint128 {
	if v, ok := AddrToUint32(addr); ok {
		return Uint128From64(uint64(v))
	}
	if !addr.IsValid() {
		return Uint128{}
	}
	b := addr.As16()
	return Uint128{
		Hi: binary.BigEndian.Uint64(b[:8]),
		Lo: binary.BigEndian.Uint64(b[8:]),
	}
}

// AddrAdd 对 IP 地址做回绕加法，delta 为负数表示减法。
// IPv4 按 2^32 回绕，IPv6 按 2^128 回绕。无效地址原样返回。
func AddrAdd(addr netip.Addr, delta int64) netip.Addr {
	if delta >= 0 {
		return AddrAddN(addr, uint64(delta), false)
	}
	// -delta 在 delta == MinInt64 时溢出，按位取补得到正确的绝对值
	return AddrAddN(addr, uint64(^delta)+1, true)
}

// AddrAddN 把地址前进（backward=false）或后退 n 步，按地址宽度回绕。
func AddrAddN(addr netip.Addr, n uint64, backward bool) netip.Addr {
	switch AddrVersion(addr) {
	case V4:
		v, _ := AddrToUint32(addr)
		// uint32(n) 即 n mod 2^32
		if backward {
			return AddrFromUint32(v - uint32(n))
		}
		return AddrFromUint32(v + uint32(n))
	case V6:
		v := Uint128FromAddr(addr)
		if backward {
			return AddrFromUint128(v.Sub(Uint128From64(n)))
		}
		return AddrFromUint128(v.Add(Uint128From64(n)))
	default:
		return addr
	}
}
