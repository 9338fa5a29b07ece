package xaddr

import (
	"strconv"

	"github.com/omeyang/macipr/pkg/util/xnet"
)

// Style 表示值的文本渲染样式。
type Style uint8

const (
	// StyleMAC 渲染为小写冒号分隔的 MAC："aa:bb:cc:dd:ee:ff"。
	StyleMAC Style = iota + 1
	// StyleIPv4 渲染为点分十进制。
	StyleIPv4
	// StyleIPv6 渲染为 RFC 5952 压缩形式。
	StyleIPv6
	// StyleIPv6Full 渲染为八组 4 位十六进制，不压缩。
	StyleIPv6Full
	// StyleDecimal 渲染为十进制整数。
	StyleDecimal
)

// Kind 返回该样式要求的值类型。
func (s Style) Kind() Kind {
	switch s {
	case StyleMAC:
		return MAC
	case StyleIPv4:
		return IPv4
	case StyleIPv6, StyleIPv6Full:
		return IPv6
	case StyleDecimal:
		return Number
	default:
		return 0
	}
}

// DefaultStyle 返回类型的默认渲染样式。
func (k Kind) DefaultStyle() Style {
	switch k {
	case MAC:
		return StyleMAC
	case IPv4:
		return StyleIPv4
	case IPv6:
		return StyleIPv6
	default:
		return StyleDecimal
	}
}

// Render 按 style 渲染 v。样式与类型不匹配时按数值重新解释，
// 例如以 StyleIPv4 渲染 Number 取其低 32 位。
func Render(v Value, style Style) string {
	return string(AppendRender(nil, v, style))
}

// AppendRender 把 [Render] 的结果追加到 dst。
func AppendRender(dst []byte, v Value, style Style) []byte {
	switch style {
	case StyleMAC:
		return New(MAC, v.n).MAC().AppendTo(dst)
	case StyleIPv4:
		return New(IPv4, v.n).Addr().AppendTo(dst)
	case StyleIPv6:
		return xnet.AppendCompact(dst, New(IPv6, v.n).Addr())
	case StyleIPv6Full:
		return xnet.AppendExpanded(dst, New(IPv6, v.n).Addr())
	default:
		if v.n.FitsUint64() {
			return strconv.AppendUint(dst, v.n.Lo, 10)
		}
		return append(dst, v.n.String()...)
	}
}
