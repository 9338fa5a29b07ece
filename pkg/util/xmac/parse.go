package xmac

import (
	"fmt"
	"net"
	"strings"
)

// Parse 解析 MAC 地址字符串。
//
// 支持的格式：
//   - 冒号分隔：aa:bb:cc:dd:ee:ff, AA:BB:CC:DD:EE:FF
//   - 短线分隔：aa-bb-cc-dd-ee-ff
//   - 点分隔：aabb.ccdd.eeff
//   - 无分隔：aabbccddeeff（全部为十进制数字时按十进制整数处理）
//   - 十进制整数：16 → 00:00:00:00:00:10
//   - 十六进制整数：0x10 → 00:00:00:00:00:10
//
// 整数超出 48 位时按 2^48 取模。输入会自动去除首尾空白，大小写不敏感。
func Parse(s string) (Addr, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Addr{}, ErrEmpty
	}

	if v, ok := parseInteger(s); ok {
		return AddrFromUint64(v), nil
	}

	// 无分隔符格式（12 个十六进制字符）
	if len(s) == 12 && !containsSeparator(s) {
		return parseNoSeparator(s)
	}

	// 冒号/短线分隔格式（17 字符）
	if len(s) == 17 {
		sep := s[2]
		if sep == ':' || sep == '-' {
			return parseWithSeparator(s, sep)
		}
	}

	// 点分隔格式（14 字符，Cisco 风格）
	if len(s) == 14 && s[4] == '.' && s[9] == '.' {
		return parseDot(s)
	}

	return parseStdlib(s)
}

// MustParse 类似 [Parse]，但解析失败时 panic。
// 仅用于包级常量初始化或测试。
func MustParse(s string) Addr {
	addr, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("xmac.MustParse(%q): %v", s, err))
	}
	return addr
}

// parseInteger 识别十进制或 0x 十六进制整数字面量，结果按 2^64 回绕。
// 调用方再截取低 48 位，2^48 整除 2^64，因此等价于按 2^48 取模。
func parseInteger(s string) (uint64, bool) {
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		var v uint64
		for i := 2; i < len(s); i++ {
			h := hexValue(s[i])
			if h < 0 {
				return 0, false
			}
			v = v<<4 | uint64(h)
		}
		return v, true
	}

	var v uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + uint64(c-'0')
	}
	return v, true
}

// parseWithSeparator 解析 17 字符的冒号/短线分隔格式（xx:xx:xx:xx:xx:xx）。
func parseWithSeparator(s string, sep byte) (Addr, error) {
	if s[5] != sep || s[8] != sep || s[11] != sep || s[14] != sep {
		return Addr{}, fmt.Errorf("%w: inconsistent separators", ErrInvalidFormat)
	}

	var addr Addr
	for i := range 6 {
		offset := i * 3
		b, err := parseHexByte(s[offset], s[offset+1])
		if err != nil {
			return Addr{}, fmt.Errorf("%w: invalid hex at position %d", ErrInvalidFormat, offset)
		}
		addr.bytes[i] = b
	}
	return addr, nil
}

// parseDot 解析 14 字符的点分隔格式（xxxx.xxxx.xxxx）。
func parseDot(s string) (Addr, error) {
	offsets := [6]int{0, 2, 5, 7, 10, 12}
	var addr Addr
	for i, off := range offsets {
		b, err := parseHexByte(s[off], s[off+1])
		if err != nil {
			return Addr{}, fmt.Errorf("%w: invalid hex at position %d", ErrInvalidFormat, off)
		}
		addr.bytes[i] = b
	}
	return addr, nil
}

// parseStdlib 使用 [net.ParseMAC] 解析其余格式，仅接受 EUI-48。
func parseStdlib(s string) (Addr, error) {
	hw, err := net.ParseMAC(s)
	if err != nil {
		return Addr{}, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	if len(hw) != 6 {
		return Addr{}, fmt.Errorf("%w: expected 6 bytes, got %d", ErrInvalidLength, len(hw))
	}
	var addr Addr
	copy(addr.bytes[:], hw)
	return addr, nil
}

// parseNoSeparator 解析无分隔符的 12 字符十六进制字符串。
func parseNoSeparator(s string) (Addr, error) {
	var addr Addr
	for i := range 6 {
		b, err := parseHexByte(s[i*2], s[i*2+1])
		if err != nil {
			return Addr{}, fmt.Errorf("%w: invalid hex at position %d", ErrInvalidFormat, i*2)
		}
		addr.bytes[i] = b
	}
	return addr, nil
}

func containsSeparator(s string) bool {
	return strings.ContainsAny(s, ":-.")
}

// parseHexByte 解析两个十六进制字符为一个字节。
func parseHexByte(high, low byte) (byte, error) {
	h := hexValue(high)
	l := hexValue(low)
	if h < 0 || l < 0 {
		return 0, ErrInvalidFormat
	}
	return byte(h<<4 | l), nil
}

// hexValue 返回十六进制字符的数值，无效字符返回 -1。
func hexValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c - 'a' + 10)
	case 'A' <= c && c <= 'F':
		return int(c - 'A' + 10)
	default:
		return -1
	}
}
