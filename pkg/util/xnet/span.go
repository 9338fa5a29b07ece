package xnet

import (
	"fmt"
	"net/netip"

	"go4.org/netipx"
)

// SpanOf 返回覆盖 a 与 b（含两端，顺序无关）的 [netipx.IPRange]。
// 两个地址必须同为 IPv4 或同为 IPv6。
func SpanOf(a, b netip.Addr) (netipx.IPRange, error) {
	va, vb := AddrVersion(a), AddrVersion(b)
	if va == V0 || va != vb {
		return netipx.IPRange{}, fmt.Errorf("%w: %s and %s are not the same family", ErrInvalidRange, a, b)
	}
	if b.Less(a) {
		a, b = b, a
	}
	r := netipx.IPRangeFrom(a, b)
	if !r.IsValid() {
		return netipx.IPRange{}, fmt.Errorf("%w: %s-%s", ErrInvalidRange, a, b)
	}
	return r, nil
}
