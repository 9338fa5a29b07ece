package xaddr

import (
	"net/netip"

	"github.com/omeyang/macipr/pkg/util/xmac"
	"github.com/omeyang/macipr/pkg/util/xnet"
)

// Value 是带类型标签的定宽无符号整数。
// 不变式：n < 2^kind.Bits()。零值无类型，不可用于运算。
type Value struct {
	kind Kind
	n    xnet.Uint128
}

// New 以 n mod 2^kind.Bits() 创建 Value。
func New(kind Kind, n xnet.Uint128) Value {
	return Value{kind: kind, n: n.Mask(kind.Bits())}
}

// FromMAC 从 MAC 地址创建 Value。
func FromMAC(a xmac.Addr) Value {
	return Value{kind: MAC, n: xnet.Uint128From64(a.Uint64())}
}

// FromAddr 从 IP 地址创建 Value。IPv4 地址得到 IPv4 类型，
// 其余有效地址（包括 IPv4-mapped）得到 IPv6 类型，无效地址返回零值。
func FromAddr(addr netip.Addr) Value {
	switch xnet.AddrVersion(addr) {
	case xnet.V4:
		return Value{kind: IPv4, n: xnet.Uint128FromAddr(addr)}
	case xnet.V6:
		return Value{kind: IPv6, n: xnet.Uint128FromAddr(addr)}
	default:
		return Value{}
	}
}

// FromUint64 创建 Number 类型的 Value。
func FromUint64(v uint64) Value {
	return Value{kind: Number, n: xnet.Uint128From64(v)}
}

// Kind 返回类型标签。
func (v Value) Kind() Kind { return v.kind }

// Uint128 返回数值。
func (v Value) Uint128() xnet.Uint128 { return v.n }

// Uint64 返回数值的低 64 位。
func (v Value) Uint64() uint64 { return v.n.Lo }

// MAC 返回 MAC 表示，仅对 MAC 类型有意义。
func (v Value) MAC() xmac.Addr { return xmac.AddrFromUint64(v.n.Lo) }

// Addr 返回 IP 表示：IPv4 类型得到 4 字节地址，IPv6 类型得到 16 字节地址，
// 其他类型返回无效地址。
func (v Value) Addr() netip.Addr {
	switch v.kind {
	case IPv4:
		return xnet.AddrFromUint32(uint32(v.n.Lo))
	case IPv6:
		return xnet.AddrFromUint128(v.n)
	default:
		return netip.Addr{}
	}
}

// Forward 返回前进 n 步后的值，按位宽回绕。
func (v Value) Forward(n uint64) Value {
	return v.step(n, false)
}

// Backward 返回后退 n 步后的值，按位宽回绕。
func (v Value) Backward(n uint64) Value {
	return v.step(n, true)
}

// Add 返回 v + delta，delta 为负数时后退。
func (v Value) Add(delta int64) Value {
	if v.kind == IPv4 || v.kind == IPv6 {
		return FromAddr(xnet.AddrAdd(v.Addr(), delta))
	}
	if delta >= 0 {
		return v.Forward(uint64(delta))
	}
	return v.Backward(uint64(^delta) + 1)
}

// step 按类型委托给 xmac / xnet 的回绕运算，Number 直接在 64 位上计算。
func (v Value) step(n uint64, backward bool) Value {
	switch v.kind {
	case MAC:
		if backward {
			return FromMAC(v.MAC().Sub(n))
		}
		return FromMAC(v.MAC().Add(n))
	case IPv4, IPv6:
		return FromAddr(xnet.AddrAddN(v.Addr(), n, backward))
	default:
		if backward {
			return New(v.kind, xnet.Uint128From64(v.n.Lo-n))
		}
		return New(v.kind, xnet.Uint128From64(v.n.Lo+n))
	}
}

// Distance 返回从 v 前进到 to 所需的步数 (to - v) mod 2^Bits。
func (v Value) Distance(to Value) xnet.Uint128 {
	return to.n.Sub(v.n).Mask(v.kind.Bits())
}

// Less 按无符号数值比较。
func (v Value) Less(w Value) bool {
	return v.n.Cmp(w.n) < 0
}

// Compare 按无符号数值比较，返回 -1、0 或 1。
func (v Value) Compare(w Value) int {
	return v.n.Cmp(w.n)
}

// String 以类型的默认样式渲染。
func (v Value) String() string {
	return Render(v, v.kind.DefaultStyle())
}
