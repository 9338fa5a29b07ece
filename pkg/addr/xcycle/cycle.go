package xcycle

import (
	"fmt"

	"go4.org/netipx"

	"github.com/omeyang/macipr/pkg/addr/xaddr"
	"github.com/omeyang/macipr/pkg/util/xnet"
)

// Direction 表示遍历方向。
type Direction uint8

const (
	// Forward 逐个递增。
	Forward Direction = iota
	// Backward 逐个递减。
	Backward
)

// String 返回方向名称。
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Cycle 是从 Start 出发、沿 Dir 方向的 Count 个地址，遍历完后从头重复。
// Count 至少为 1；零值 Cycle 视为 Count 为 1。
type Cycle struct {
	Start xaddr.Value
	Dir   Direction
	Count uint64
}

// Single 返回只含 v 的 Cycle。
func Single(v xaddr.Value) Cycle {
	return Cycle{Start: v, Dir: Forward, Count: 1}
}

// Kind 返回地址类型。
func (c Cycle) Kind() xaddr.Kind {
	return c.Start.Kind()
}

// At 返回第 index mod Count 个地址。
func (c Cycle) At(index uint64) xaddr.Value {
	if c.Count > 1 {
		index %= c.Count
	} else {
		index = 0
	}
	if c.Dir == Backward {
		return c.Start.Backward(index)
	}
	return c.Start.Forward(index)
}

// End 返回最后一个地址。
func (c Cycle) End() xaddr.Value {
	if c.Count == 0 {
		return c.Start
	}
	return c.At(c.Count - 1)
}

// Span 返回 IPv4/IPv6 Cycle 覆盖的地址区间。
// 其他类型，或遍历过程发生回绕时返回 ok=false。
func (c Cycle) Span() (r netipx.IPRange, ok bool) {
	kind := c.Kind()
	if kind != xaddr.IPv4 && kind != xaddr.IPv6 {
		return netipx.IPRange{}, false
	}
	if kind == xaddr.IPv4 && c.Count > 1<<32 {
		return netipx.IPRange{}, false
	}
	start, end := c.Start, c.End()
	if (c.Dir == Forward && end.Less(start)) || (c.Dir == Backward && start.Less(end)) {
		return netipx.IPRange{}, false
	}
	r, err := xnet.SpanOf(start.Addr(), end.Addr())
	if err != nil {
		return netipx.IPRange{}, false
	}
	return r, true
}

// String 返回便于日志输出的描述，如 "192.168.1.1-192.168.0.254 (4, backward)"。
func (c Cycle) String() string {
	if c.Count <= 1 {
		return c.Start.String()
	}
	return fmt.Sprintf("%s-%s (%d, %s)", c.Start, c.End(), c.Count, c.Dir)
}
