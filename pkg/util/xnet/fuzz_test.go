package xnet

import (
	"net/netip"
	"testing"
)

func FuzzCompactRoundTrip(f *testing.F) {
	f.Add("::1")
	f.Add("2001:db8::1")
	f.Add("::ffff:192.168.1.1")
	f.Add("1:0:0:2:0:0:0:3")
	f.Add("100000")

	f.Fuzz(func(t *testing.T, s string) {
		addr, err := ParseIPv6(s)
		if err != nil {
			return
		}
		text := FormatCompact(addr)
		back, err := ParseIPv6(text)
		if err != nil {
			t.Fatalf("ParseIPv6(%q) failed: %v (from %q)", text, err, s)
		}
		if back != addr {
			t.Fatalf("round trip mismatch: %q -> %q -> %s", s, text, back)
		}
		if exp := FormatExpanded(addr); len(exp) != 39 {
			t.Fatalf("FormatExpanded(%s) = %q, want 39 chars", addr, exp)
		}
	})
}

func FuzzIPv4RoundTrip(f *testing.F) {
	f.Add("192.168.1.1")
	f.Add("180000000")
	f.Add("0xffffffff")

	f.Fuzz(func(t *testing.T, s string) {
		addr, err := ParseIPv4(s)
		if err != nil {
			return
		}
		if !addr.Is4() {
			t.Fatalf("ParseIPv4(%q) returned non-IPv4 %s", s, addr)
		}
		back, err := ParseIPv4(addr.String())
		if err != nil || back != addr {
			t.Fatalf("round trip mismatch: %q -> %s -> %s (%v)", s, addr, back, err)
		}
	})
}

func FuzzAddrAddInverse(f *testing.F) {
	f.Add("10.0.0.1", int64(5))
	f.Add("::", int64(-1))
	f.Add("255.255.255.255", int64(-9223372036854775808))

	f.Fuzz(func(t *testing.T, s string, delta int64) {
		addr, err := netip.ParseAddr(s)
		if err != nil || addr.Zone() != "" {
			return
		}
		abs := uint64(delta)
		if delta < 0 {
			abs = uint64(^delta) + 1
		}
		// 先按 delta 移动，再反向移动 |delta| 步，应回到原点
		if got := AddrAddN(AddrAdd(addr, delta), abs, delta >= 0); got != addr {
			t.Fatalf("AddrAdd(%s, %d) not inverted: %s", addr, delta, got)
		}
	})
}
