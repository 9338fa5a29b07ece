package xrender

import (
	"fmt"

	"github.com/omeyang/macipr/pkg/addr/xcycle"
	"github.com/omeyang/macipr/pkg/format/xformat"
)

// Renderer 持有编译后的格式串和与指令一一对应的 Cycle，创建后不可变，可并发使用。
type Renderer struct {
	prog   *xformat.Program
	tokens []xformat.Token
	cycles []xcycle.Cycle
	rows   uint64
}

// New 校验 cycles 与 prog 的指令按位置一一对应（数量与类型），并计算总行数。
func New(prog *xformat.Program, cycles []xcycle.Cycle) (*Renderer, error) {
	if err := prog.Check(len(cycles)); err != nil {
		return nil, err
	}
	kinds := prog.Kinds()
	r := &Renderer{
		prog:   prog,
		tokens: prog.Tokens(),
		cycles: make([]xcycle.Cycle, len(cycles)),
		rows:   1,
	}
	for k, c := range cycles {
		if c.Kind() != kinds[k] {
			return nil, fmt.Errorf("%w: directive %d wants %s, got %s", ErrKindMismatch, k+1, kinds[k], c.Kind())
		}
		if c.Count == 0 {
			c.Count = 1
		}
		r.cycles[k] = c
		r.rows = max(r.rows, c.Count)
	}
	return r, nil
}

// Prepare 完成整个解析阶段：编译格式串、检查参数数量、按指令类型解析参数。
// 返回第一个错误，此时调用方不应输出任何内容。
func Prepare(format string, args []string) (*Renderer, error) {
	prog, err := xformat.CompileFor(format, len(args))
	if err != nil {
		return nil, err
	}
	cycles, err := xcycle.Bind(prog.Kinds(), args)
	if err != nil {
		return nil, err
	}
	return New(prog, cycles)
}

// Rows 返回总行数。
func (r *Renderer) Rows() uint64 { return r.rows }

// Program 返回格式串。
func (r *Renderer) Program() *xformat.Program { return r.prog }

// Cycles 返回 Cycle 列表的副本。
func (r *Renderer) Cycles() []xcycle.Cycle { return append([]xcycle.Cycle(nil), r.cycles...) }

// Line 返回第 row 行（不含换行符）。
func (r *Renderer) Line(row uint64) string {
	return string(r.AppendLine(nil, row))
}

// AppendLine 把第 row 行（不含换行符）追加到 dst。
func (r *Renderer) AppendLine(dst []byte, row uint64) []byte {
	k := 0
	for _, tok := range r.tokens {
		if tok.Kind == xformat.Literal {
			dst = append(dst, tok.Text...)
			continue
		}
		dst = tok.AppendValue(dst, r.cycles[k].At(row))
		k++
	}
	return dst
}

// appendRows 追加 [lo, hi) 行，每行以 '\n' 结尾。
func (r *Renderer) appendRows(dst []byte, lo, hi uint64) []byte {
	for row := lo; row < hi; row++ {
		dst = r.AppendLine(dst, row)
		dst = append(dst, '\n')
	}
	return dst
}
