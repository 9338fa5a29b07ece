package xformat

import (
	"strconv"

	"github.com/omeyang/macipr/pkg/addr/xaddr"
)

// TokenKind 区分字面量与指令。
type TokenKind uint8

const (
	// Literal 是原样输出的文本，"%%" 与转义已折叠进 Text。
	Literal TokenKind = iota
	// Directive 消费一个参数并按 Style 渲染。
	Directive
)

// String 返回 token 类型名称。
func (k TokenKind) String() string {
	if k == Directive {
		return "directive"
	}
	return "literal"
}

// Token 是编译后格式串的一个片段。
type Token struct {
	Kind TokenKind
	// Text 是字面量文本，仅 Literal 有效。
	Text string
	// Verb 是指令字符（'m'、'i'、'x'、'X'、'n'），仅 Directive 有效。
	Verb byte
	// Style 是渲染样式，仅 Directive 有效。
	Style xaddr.Style
	// Width 是 %n 的最小宽度，0 表示不补齐。
	Width int
	// Pad 是补齐字符，' ' 或 '0'。
	Pad byte
}

// ValueKind 返回指令绑定的参数类型，Literal 返回 0。
func (t Token) ValueKind() xaddr.Kind {
	if t.Kind != Directive {
		return 0
	}
	return t.Style.Kind()
}

// AppendValue 把 v 按指令样式渲染后追加到 dst，%n 指令按 Width/Pad 左侧补齐。
// Literal token 忽略 v，追加 Text。
func (t Token) AppendValue(dst []byte, v xaddr.Value) []byte {
	if t.Kind != Directive {
		return append(dst, t.Text...)
	}
	if t.Style != xaddr.StyleDecimal || t.Width == 0 {
		return xaddr.AppendRender(dst, v, t.Style)
	}
	start := len(dst)
	dst = xaddr.AppendRender(dst, v, t.Style)
	return padLeft(dst, start, t.Width, t.Pad)
}

// String 返回 token 的源码形式，如 "%05n"，字面量中的 '%'、'\' 和换行会重新转义。
func (t Token) String() string {
	if t.Kind == Directive {
		buf := []byte{'%'}
		if t.Pad == '0' {
			buf = append(buf, '0')
		}
		if t.Width > 0 {
			buf = strconv.AppendInt(buf, int64(t.Width), 10)
		}
		return string(append(buf, t.Verb))
	}
	buf := make([]byte, 0, len(t.Text))
	for i := 0; i < len(t.Text); i++ {
		switch c := t.Text[i]; c {
		case '%':
			buf = append(buf, '%', '%')
		case '\\':
			buf = append(buf, '\\', '\\')
		case '\n':
			buf = append(buf, '\\', 'n')
		default:
			buf = append(buf, c)
		}
	}
	return string(buf)
}
