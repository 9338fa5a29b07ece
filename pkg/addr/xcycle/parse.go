package xcycle

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/omeyang/macipr/pkg/addr/xaddr"
)

// Parse 按 kind 把 text 解析为 [Cycle]，语法与优先级见包文档。
//
// 错误分类：
//   - 含 '+' 但任一侧无效，或某个 '-' 位置恰好一侧可解析：[ErrInvalidRange]
//   - 其他情况：xaddr 的类型错误，如 [xaddr.ErrInvalidMAC]
//
// Number 类型的错误还同时匹配 [ErrInvalidNumberArgument]。
func Parse(kind xaddr.Kind, text string) (Cycle, error) {
	c, err := parse(kind, text)
	if err != nil && kind == xaddr.Number {
		return Cycle{}, fmt.Errorf("%w: %w", ErrInvalidNumberArgument, err)
	}
	return c, err
}

func parse(kind xaddr.Kind, text string) (Cycle, error) {
	if i := strings.LastIndexByte(text, '+'); i >= 0 {
		return parseOffset(kind, text, i)
	}

	oneSided := false
	for i := strings.LastIndexByte(text, '-'); i >= 0; i = strings.LastIndexByte(text[:i], '-') {
		start, startErr := xaddr.Parse(kind, text[:i])
		end, endErr := xaddr.Parse(kind, text[i+1:])
		if startErr == nil && endErr == nil {
			return between(text, start, end)
		}
		if (startErr == nil) != (endErr == nil) {
			oneSided = true
		}
	}

	v, err := xaddr.Parse(kind, text)
	if err == nil {
		return Single(v), nil
	}
	if oneSided {
		return Cycle{}, fmt.Errorf("%w: %q (want START-END with both ends a %s)", ErrInvalidRange, text, kind)
	}
	return Cycle{}, err
}

// parseOffset 解析 "START+OFFSET"，i 为 '+' 的位置。
func parseOffset(kind xaddr.Kind, text string, i int) (Cycle, error) {
	start, err := xaddr.Parse(kind, text[:i])
	if err != nil {
		return Cycle{}, fmt.Errorf("%w: %q: invalid start: %w", ErrInvalidRange, text, err)
	}
	offset, err := strconv.ParseInt(strings.TrimSpace(text[i+1:]), 10, 64)
	if err != nil {
		return Cycle{}, fmt.Errorf("%w: %q: offset must be a signed decimal integer: %w", ErrInvalidRange, text, err)
	}
	if offset < 0 {
		// ^offset+1 即 |offset|，offset 为 MinInt64 时也成立
		return Cycle{Start: start, Dir: Backward, Count: uint64(^offset) + 2}, nil
	}
	return Cycle{Start: start, Dir: Forward, Count: uint64(offset) + 1}, nil
}

// between 构造 START-END 区间，END 小于 START 时后退。
func between(text string, start, end xaddr.Value) (Cycle, error) {
	dir := Forward
	steps := start.Distance(end)
	if end.Less(start) {
		dir = Backward
		steps = end.Distance(start)
	}
	if !steps.FitsUint64() || steps.Lo == ^uint64(0) {
		return Cycle{}, fmt.Errorf("%w: %q: range too large (%s addresses)",
			ErrInvalidRange, text, new(big.Int).Add(steps.Big(), big.NewInt(1)))
	}
	return Cycle{Start: start, Dir: dir, Count: steps.Lo + 1}, nil
}

// Bind 按位置把 args[k] 以 kinds[k] 解析，返回同样长度的 Cycle 列表。
// 返回第一个错误，错误信息包含从 1 开始的参数位置和原文。
func Bind(kinds []xaddr.Kind, args []string) ([]Cycle, error) {
	if len(kinds) != len(args) {
		return nil, fmt.Errorf("%w: %d kinds, %d arguments", ErrKindCount, len(kinds), len(args))
	}
	cycles := make([]Cycle, len(args))
	for k, arg := range args {
		c, err := Parse(kinds[k], arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d %q: %w", k+1, arg, err)
		}
		cycles[k] = c
	}
	return cycles, nil
}
