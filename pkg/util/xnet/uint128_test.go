package xnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUint128AddSub(t *testing.T) {
	max := Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}
	one := Uint128From64(1)

	assert.Equal(t, Uint128{}, max.Add(one), "overflow wraps to zero")
	assert.Equal(t, max, Uint128{}.Sub(one), "underflow wraps to max")
	assert.Equal(t, Uint128{Hi: 1}, Uint128From64(^uint64(0)).Add(one), "carry into high word")
	assert.Equal(t, Uint128From64(^uint64(0)), Uint128{Hi: 1}.Sub(one), "borrow from high word")
}

func TestUint128Cmp(t *testing.T) {
	a := Uint128{Hi: 1, Lo: 0}
	b := Uint128{Hi: 0, Lo: ^uint64(0)}
	assert.Equal(t, 1, a.Cmp(b))
	assert.Equal(t, -1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(a))
	assert.True(t, Uint128{}.IsZero())
	assert.False(t, a.IsZero())
	assert.True(t, b.FitsUint64())
	assert.False(t, a.FitsUint64())
}

func TestUint128Mask(t *testing.T) {
	max := Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}
	assert.Equal(t, Uint128From64(1<<32-1), max.Mask(32))
	assert.Equal(t, Uint128From64(1<<48-1), max.Mask(48))
	assert.Equal(t, Uint128From64(^uint64(0)), max.Mask(64))
	assert.Equal(t, Uint128{Hi: 0xff, Lo: ^uint64(0)}, max.Mask(72))
	assert.Equal(t, max, max.Mask(128))
	assert.Equal(t, Uint128{}, max.Mask(0))
}

func TestParseUint128(t *testing.T) {
	tests := []struct {
		in   string
		want Uint128
		ok   bool
	}{
		{"0", Uint128{}, true},
		{"100000", Uint128From64(100000), true},
		{"18446744073709551616", Uint128{Hi: 1}, true},
		{"340282366920938463463374607431768211455", Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}, true},
		{"340282366920938463463374607431768211456", Uint128{}, true}, // 2^128 回绕
		{"0x186a0", Uint128From64(0x186a0), true},
		{"0XFF", Uint128From64(0xff), true},
		{"0x10000000000000000", Uint128{Hi: 1}, true},
		{"", Uint128{}, false},
		{"0x", Uint128{}, false},
		{"-1", Uint128{}, false},
		{"12a", Uint128{}, false},
		{"0xzz", Uint128{}, false},
		{" 1", Uint128{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseUint128(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUint128String(t *testing.T) {
	assert.Equal(t, "0", Uint128{}.String())
	assert.Equal(t, "18446744073709551615", Uint128From64(^uint64(0)).String())
	assert.Equal(t, "18446744073709551616", Uint128{Hi: 1}.String())
	assert.Equal(t, uint64(42), Uint128From64(42).Uint64())
}
