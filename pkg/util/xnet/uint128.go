package xnet

import (
	"math/big"
	"math/bits"
	"strconv"
)

// Uint128 是以两个 64 位字表示的 128 位无符号整数。
// 所有运算按 2^128 回绕。
type Uint128 struct {
	Hi, Lo uint64
}

// Uint128From64 把 uint64 扩展为 Uint128。
func Uint128From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// Add 返回 x + y (mod 2^128)。
func (x Uint128) Add(y Uint128) Uint128 {
	lo, carry := bits.Add64(x.Lo, y.Lo, 0)
	hi, _ := bits.Add64(x.Hi, y.Hi, carry)
	return Uint128{Hi: hi, Lo: lo}
}

// Sub 返回 x - y (mod 2^128)。
func (x Uint128) Sub(y Uint128) Uint128 {
	lo, borrow := bits.Sub64(x.Lo, y.Lo, 0)
	hi, _ := bits.Sub64(x.Hi, y.Hi, borrow)
	return Uint128{Hi: hi, Lo: lo}
}

// Cmp 比较 x 与 y，返回 -1、0 或 1。
func (x Uint128) Cmp(y Uint128) int {
	switch {
	case x.Hi < y.Hi:
		return -1
	case x.Hi > y.Hi:
		return 1
	case x.Lo < y.Lo:
		return -1
	case x.Lo > y.Lo:
		return 1
	default:
		return 0
	}
}

// IsZero 报告 x 是否为 0。
func (x Uint128) IsZero() bool {
	return x.Hi == 0 && x.Lo == 0
}

// FitsUint64 报告 x 是否可以无损表示为 uint64。
func (x Uint128) FitsUint64() bool {
	return x.Hi == 0
}

// Uint64 返回低 64 位。
func (x Uint128) Uint64() uint64 {
	return x.Lo
}

// Mask 只保留低 n 位（0 ≤ n ≤ 128），即 x mod 2^n。
func (x Uint128) Mask(n int) Uint128 {
	switch {
	case n >= 128:
		return x
	case n <= 0:
		return Uint128{}
	case n >= 64:
		return Uint128{Hi: x.Hi & (1<<(n-64) - 1), Lo: x.Lo}
	default:
		return Uint128{Lo: x.Lo & (1<<n - 1)}
	}
}

// mulAdd 返回 x*m + a (mod 2^128)。
func (x Uint128) mulAdd(m, a uint64) Uint128 {
	carry, lo := bits.Mul64(x.Lo, m)
	hi := x.Hi*m + carry
	lo, c := bits.Add64(lo, a, 0)
	hi += c
	return Uint128{Hi: hi, Lo: lo}
}

// Big 返回 x 的 [*big.Int] 表示。
func (x Uint128) Big() *big.Int {
	v := new(big.Int).SetUint64(x.Hi)
	v.Lsh(v, 64)
	return v.Or(v, new(big.Int).SetUint64(x.Lo))
}

// String 返回十进制表示。
func (x Uint128) String() string {
	if x.Hi == 0 {
		return strconv.FormatUint(x.Lo, 10)
	}
	return x.Big().String()
}

// ParseUint128 解析十进制或 0x 前缀十六进制整数字面量，结果按 2^128 回绕。
// 不接受符号、空白和分隔符；ok=false 表示 s 不是整数字面量。
func ParseUint128(s string) (v Uint128, ok bool) {
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		for i := 2; i < len(s); i++ {
			h, isHex := hexDigit(s[i])
			if !isHex {
				return Uint128{}, false
			}
			v = Uint128{Hi: v.Hi<<4 | v.Lo>>60, Lo: v.Lo<<4 | uint64(h)}
		}
		return v, true
	}
	if s == "" {
		return Uint128{}, false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return Uint128{}, false
		}
		v = v.mulAdd(10, uint64(c-'0'))
	}
	return v, true
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
