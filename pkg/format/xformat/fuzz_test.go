package xformat

import (
	"strings"
	"testing"
)

// FuzzCompileRoundTrip 检查编译结果重新转义后能得到等价的 Program。
func FuzzCompileRoundTrip(f *testing.F) {
	f.Add("host h%03n { hardware ethernet %m; fixed-address %i; }")
	f.Add(`100%% \n\\ %x %X`)
	f.Add("%5n")
	f.Add("%q")

	f.Fuzz(func(t *testing.T, format string) {
		p, err := Compile(format)
		if err != nil {
			return
		}
		var b strings.Builder
		for _, tok := range p.Tokens() {
			b.WriteString(tok.String())
		}
		q, err := Compile(b.String())
		if err != nil {
			t.Fatalf("recompile %q (from %q): %v", b.String(), format, err)
		}
		if len(q.Tokens()) != len(p.Tokens()) {
			t.Fatalf("token count changed: %q -> %q", format, b.String())
		}
		for i, tok := range p.Tokens() {
			if q.Tokens()[i] != tok {
				t.Fatalf("token %d changed: %+v -> %+v", i, tok, q.Tokens()[i])
			}
		}
	})
}
