package xformat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/macipr/pkg/addr/xaddr"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name   string
		format string
		tokens []Token
	}{
		{"empty", "", nil},
		{"literal only", "hello", []Token{{Kind: Literal, Text: "hello"}}},
		{"percent literal", "100%%", []Token{{Kind: Literal, Text: "100%"}}},
		{"escapes fold", `a\nb\\c`, []Token{{Kind: Literal, Text: "a\nb\\c"}}},
		{"mac", "%m", []Token{{Kind: Directive, Verb: 'm', Style: xaddr.StyleMAC, Pad: ' '}}},
		{"ipv4 with text", "ip=%i;", []Token{
			{Kind: Literal, Text: "ip="},
			{Kind: Directive, Verb: 'i', Style: xaddr.StyleIPv4, Pad: ' '},
			{Kind: Literal, Text: ";"},
		}},
		{"ipv6 styles", "%x%X", []Token{
			{Kind: Directive, Verb: 'x', Style: xaddr.StyleIPv6, Pad: ' '},
			{Kind: Directive, Verb: 'X', Style: xaddr.StyleIPv6Full, Pad: ' '},
		}},
		{"number", "%n", []Token{{Kind: Directive, Verb: 'n', Style: xaddr.StyleDecimal, Pad: ' '}}},
		{"space pad", "%5n", []Token{{Kind: Directive, Verb: 'n', Style: xaddr.StyleDecimal, Width: 5, Pad: ' '}}},
		{"zero pad", "%05n", []Token{{Kind: Directive, Verb: 'n', Style: xaddr.StyleDecimal, Width: 5, Pad: '0'}}},
		{"zero width", "%0n", []Token{{Kind: Directive, Verb: 'n', Style: xaddr.StyleDecimal, Width: 0, Pad: '0'}}},
		{"utf8 literal", "主机 %i", []Token{
			{Kind: Literal, Text: "主机 "},
			{Kind: Directive, Verb: 'i', Style: xaddr.StyleIPv4, Pad: ' '},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Compile(tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.tokens, p.Tokens())
			assert.Equal(t, tt.format, p.Source())
		})
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		format string
		want   error
		offset string
	}{
		{"%q", ErrUnknownDirective, "offset 0"},
		{"abc%", ErrUnknownDirective, "offset 3"},
		{"%5", ErrUnknownDirective, "offset 0"},
		{"%5m", ErrUnknownDirective, "offset 0"},
		{"%05i", ErrUnknownDirective, "offset 0"},
		{"ok %m %Z", ErrUnknownDirective, "offset 6"},
		{"%99999n", ErrUnknownDirective, "exceeds"},
		{`\t`, ErrUnknownEscape, "offset 0"},
		{`abc\`, ErrUnknownEscape, "offset 3"},
		{`%m\q`, ErrUnknownEscape, "offset 2"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			_, err := Compile(tt.format)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), tt.offset)
		})
	}
}

func TestProgramKinds(t *testing.T) {
	p := MustCompile("host h%03n { hardware ethernet %m; fixed-address %i; } %x %X")
	assert.Equal(t, []xaddr.Kind{xaddr.Number, xaddr.MAC, xaddr.IPv4, xaddr.IPv6, xaddr.IPv6}, p.Kinds())
	assert.Equal(t, 5, p.NumDirectives())
	require.Len(t, p.Directives(), 5)
	assert.Equal(t, byte('X'), p.Directives()[4].Verb)

	// 返回副本，修改不影响 Program
	kinds := p.Kinds()
	kinds[0] = xaddr.MAC
	assert.Equal(t, xaddr.Number, p.Kinds()[0])
}

func TestCheck(t *testing.T) {
	p := MustCompile("%m %i")
	require.NoError(t, p.Check(2))

	err := p.Check(1)
	require.ErrorIs(t, err, ErrArgumentCountMismatch)
	assert.Contains(t, err.Error(), "2 directives, got 1")

	_, err = CompileFor("%m", 0)
	assert.ErrorIs(t, err, ErrArgumentCountMismatch)

	_, err = CompileFor("literal", 1)
	assert.ErrorIs(t, err, ErrArgumentCountMismatch)

	_, err = CompileFor("%q", 1)
	assert.ErrorIs(t, err, ErrUnknownDirective)

	p, err = CompileFor("%n", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, p.NumDirectives())
}

func TestMustCompilePanics(t *testing.T) {
	assert.Panics(t, func() { MustCompile("%") })
}

func TestAppendLine(t *testing.T) {
	p := MustCompile(`%05n: %m %i %x\n`)
	line := p.AppendLine(nil, []xaddr.Value{
		xaddr.FromUint64(45),
		xaddr.MustParse(xaddr.MAC, "aa:bb:cc:dd:ee:ff"),
		xaddr.MustParse(xaddr.IPv4, "180000000"),
		xaddr.MustParse(xaddr.IPv6, "100000"),
	})
	assert.Equal(t, "00045: aa:bb:cc:dd:ee:ff 10.186.149.0 ::1:86a0\n", string(line))
}
