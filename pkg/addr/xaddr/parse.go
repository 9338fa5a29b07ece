package xaddr

import (
	"fmt"
	"strings"

	"github.com/omeyang/macipr/pkg/util/xmac"
	"github.com/omeyang/macipr/pkg/util/xnet"
)

// Parse 按 kind 的语法解析 text。
//
// 每种类型都接受十进制或 0x 前缀的十六进制整数，结果按位宽取模。
// 失败时返回的错误包装 [ErrInvalidMAC]、[ErrInvalidIPv4]、[ErrInvalidIPv6]
// 或 [ErrInvalidNumber] 之一，并给出期望的格式。
func Parse(kind Kind, text string) (Value, error) {
	switch kind {
	case MAC:
		a, err := xmac.Parse(text)
		if err != nil {
			return Value{}, invalid(ErrInvalidMAC, kind, text)
		}
		return FromMAC(a), nil
	case IPv4:
		addr, err := xnet.ParseIPv4(text)
		if err != nil {
			return Value{}, invalid(ErrInvalidIPv4, kind, text)
		}
		return FromAddr(addr), nil
	case IPv6:
		addr, err := xnet.ParseIPv6(text)
		if err != nil {
			return Value{}, invalid(ErrInvalidIPv6, kind, text)
		}
		return Value{kind: IPv6, n: xnet.Uint128FromAddr(addr)}, nil
	case Number:
		n, ok := xnet.ParseUint128(strings.TrimSpace(text))
		if !ok {
			return Value{}, invalid(ErrInvalidNumber, kind, text)
		}
		return New(Number, n), nil
	default:
		return Value{}, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
}

// MustParse 类似 [Parse]，但解析失败时 panic。
// 仅用于测试或已知有效的常量。
func MustParse(kind Kind, text string) Value {
	v, err := Parse(kind, text)
	if err != nil {
		panic(err)
	}
	return v
}

func invalid(sentinel error, kind Kind, text string) error {
	return fmt.Errorf("%w: %q (want %s)", sentinel, text, kind.Grammar())
}
