package xnet

import "net/netip"

const hexDigits = "0123456789abcdef"

// FormatCompact 返回 IPv6 地址的 RFC 5952 压缩形式：小写、去前导零，
// 最长（并列时取最左）且至少两组的全零段压缩为 "::"。
//
// 与 [netip.Addr.String] 的区别：IPv4-mapped 地址同样输出为十六进制分组
// （"::ffff:c0a8:101"），不切换为点分尾部。IPv4 地址按点分十进制输出。
func FormatCompact(addr netip.Addr) string {
	return string(AppendCompact(nil, addr))
}

// AppendCompact 把 [FormatCompact] 的结果追加到 dst。
func AppendCompact(dst []byte, addr netip.Addr) []byte {
	if addr.Is4() {
		return addr.AppendTo(dst)
	}
	if !addr.IsValid() {
		return dst
	}
	groups := groups16(addr)

	zeroStart, zeroLen := -1, 0
	for i := 0; i < 8; {
		if groups[i] != 0 {
			i++
			continue
		}
		j := i
		for j < 8 && groups[j] == 0 {
			j++
		}
		if n := j - i; n >= 2 && n > zeroLen {
			zeroStart, zeroLen = i, n
		}
		i = j
	}

	for i := 0; i < 8; i++ {
		if i == zeroStart {
			dst = append(dst, ':', ':')
			i += zeroLen - 1
			continue
		}
		if i > 0 && i != zeroStart+zeroLen {
			dst = append(dst, ':')
		}
		dst = appendHex16(dst, groups[i])
	}
	return dst
}

// FormatExpanded 返回八组 4 位小写十六进制、冒号分隔的全长形式，不压缩。
// 例如 "::1" → "0000:0000:0000:0000:0000:0000:0000:0001"。
// IPv4 地址先映射到 ::ffff:0:0/96 再输出，无效地址返回空字符串。
func FormatExpanded(addr netip.Addr) string {
	return string(AppendExpanded(nil, addr))
}

// AppendExpanded 把 [FormatExpanded] 的结果追加到 dst。
func AppendExpanded(dst []byte, addr netip.Addr) []byte {
	if !addr.IsValid() {
		return dst
	}
	for i, g := range groups16(addr) {
		if i > 0 {
			dst = append(dst, ':')
		}
		dst = append(dst,
			hexDigits[g>>12], hexDigits[g>>8&0xf], hexDigits[g>>4&0xf], hexDigits[g&0xf])
	}
	return dst
}

func groups16(addr netip.Addr) [8]uint16 {
	b := addr.As16()
	var g [8]uint16
	for i := range g {
		g[i] = uint16(b[2*i])<<8 | uint16(b[2*i+1])
	}
	return g
}

// appendHex16 以无前导零的小写十六进制追加 v。
func appendHex16(dst []byte, v uint16) []byte {
	started := false
	for shift := 12; shift >= 0; shift -= 4 {
		d := v >> uint(shift) & 0xf
		if d == 0 && !started && shift > 0 {
			continue
		}
		started = true
		dst = append(dst, hexDigits[d])
	}
	return dst
}
