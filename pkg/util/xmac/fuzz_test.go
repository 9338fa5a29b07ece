package xmac

import "testing"

// FuzzRoundTrip 验证任意 48 位值经 String 输出后可被 Parse 还原。
func FuzzRoundTrip(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(0xaabbccddeeff))
	f.Add(uint64(1<<48 - 1))

	f.Fuzz(func(t *testing.T, v uint64) {
		addr := AddrFromUint64(v)
		got, err := Parse(addr.String())
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", addr.String(), err)
		}
		if got != addr {
			t.Fatalf("round trip %v -> %v", addr, got)
		}
	})
}

// FuzzParse 验证 Parse 对任意输入不 panic，成功结果可往返。
func FuzzParse(f *testing.F) {
	for _, s := range []string{"aa:bb:cc:dd:ee:ff", "16", "0x10", "aabb.ccdd.eeff", "1-3", ""} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		addr, err := Parse(s)
		if err != nil {
			return
		}
		if again := MustParse(addr.String()); again != addr {
			t.Fatalf("Parse(%q) = %v, reparse = %v", s, addr, again)
		}
	})
}
