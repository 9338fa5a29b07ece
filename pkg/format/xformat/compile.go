package xformat

import (
	"fmt"
	"strings"

	"github.com/omeyang/macipr/pkg/addr/xaddr"
)

// MaxWidth 是 %n 补齐宽度的上限。
const MaxWidth = 4096

// verbs 把指令字符映射到渲染样式。
var verbs = map[byte]xaddr.Style{
	'm': xaddr.StyleMAC,
	'i': xaddr.StyleIPv4,
	'x': xaddr.StyleIPv6,
	'X': xaddr.StyleIPv6Full,
	'n': xaddr.StyleDecimal,
}

// Program 是编译后的格式串，创建后不可变，可并发使用。
type Program struct {
	source     string
	tokens     []Token
	directives []Token
	kinds      []xaddr.Kind
}

// Compile 编译格式串。相邻的字面量文本、"%%" 与转义合并为一个 Literal token。
func Compile(format string) (*Program, error) {
	var (
		tokens []Token
		lit    strings.Builder
	)
	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, Token{Kind: Literal, Text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(format); i++ {
		switch c := format[i]; c {
		case '%':
			if i+1 < len(format) && format[i+1] == '%' {
				lit.WriteByte('%')
				i++
				continue
			}
			tok, next, err := parseDirective(format, i)
			if err != nil {
				return nil, err
			}
			flush()
			tokens = append(tokens, tok)
			i = next - 1
		case '\\':
			if i+1 >= len(format) {
				return nil, fmt.Errorf("%w: trailing '\\' at offset %d", ErrUnknownEscape, i)
			}
			switch format[i+1] {
			case 'n':
				lit.WriteByte('\n')
			case '\\':
				lit.WriteByte('\\')
			default:
				return nil, fmt.Errorf("%w: %q at offset %d", ErrUnknownEscape, format[i:i+2], i)
			}
			i++
		default:
			lit.WriteByte(c)
		}
	}
	flush()

	p := &Program{source: format, tokens: tokens}
	for _, tok := range tokens {
		if tok.Kind == Directive {
			p.directives = append(p.directives, tok)
			p.kinds = append(p.kinds, tok.ValueKind())
		}
	}
	return p, nil
}

// parseDirective 解析 format[at] == '%' 开始的指令，返回 token 与指令之后的偏移。
func parseDirective(format string, at int) (Token, int, error) {
	i := at + 1
	for i < len(format) && format[i] >= '0' && format[i] <= '9' {
		i++
	}
	digits := format[at+1 : i]
	if i >= len(format) {
		return Token{}, 0, fmt.Errorf("%w: trailing %q at offset %d", ErrUnknownDirective, format[at:], at)
	}

	verb := format[i]
	style, ok := verbs[verb]
	if !ok || (digits != "" && verb != 'n') {
		return Token{}, 0, fmt.Errorf("%w: %q at offset %d", ErrUnknownDirective, format[at:i+1], at)
	}

	tok := Token{Kind: Directive, Verb: verb, Style: style, Pad: ' '}
	if digits != "" {
		width := 0
		for j := 0; j < len(digits); j++ {
			width = width*10 + int(digits[j]-'0')
			if width > MaxWidth {
				return Token{}, 0, fmt.Errorf("%w: width in %q at offset %d exceeds %d",
					ErrUnknownDirective, format[at:i+1], at, MaxWidth)
			}
		}
		tok.Width = width
		if digits[0] == '0' {
			tok.Pad = '0'
		}
	}
	return tok, i + 1, nil
}

// MustCompile 类似 [Compile]，但编译失败时 panic。
func MustCompile(format string) *Program {
	p, err := Compile(format)
	if err != nil {
		panic(err)
	}
	return p
}

// CompileFor 编译格式串并检查指令数是否等于 nargs。
func CompileFor(format string, nargs int) (*Program, error) {
	p, err := Compile(format)
	if err != nil {
		return nil, err
	}
	if err := p.Check(nargs); err != nil {
		return nil, err
	}
	return p, nil
}

// Check 检查指令数是否等于 nargs。
func (p *Program) Check(nargs int) error {
	if len(p.directives) != nargs {
		return fmt.Errorf("%w: format has %d directives, got %d arguments",
			ErrArgumentCountMismatch, len(p.directives), nargs)
	}
	return nil
}

// Source 返回编译前的格式串。
func (p *Program) Source() string { return p.source }

// Tokens 返回全部 token 的副本。
func (p *Program) Tokens() []Token { return append([]Token(nil), p.tokens...) }

// Directives 按从左到右的顺序返回指令 token 的副本。
func (p *Program) Directives() []Token { return append([]Token(nil), p.directives...) }

// Kinds 按从左到右的顺序返回每个指令绑定的参数类型。
func (p *Program) Kinds() []xaddr.Kind { return append([]xaddr.Kind(nil), p.kinds...) }

// NumDirectives 返回指令数。
func (p *Program) NumDirectives() int { return len(p.directives) }

// AppendLine 按 token 顺序渲染一行（不含换行符），values[k] 对应第 k 个指令。
// values 少于指令数时 panic。
func (p *Program) AppendLine(dst []byte, values []xaddr.Value) []byte {
	k := 0
	for _, tok := range p.tokens {
		if tok.Kind == Literal {
			dst = append(dst, tok.Text...)
			continue
		}
		dst = tok.AppendValue(dst, values[k])
		k++
	}
	return dst
}
