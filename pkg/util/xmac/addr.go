package xmac

// mask48 是 48 位地址空间的掩码。
const mask48 = 1<<48 - 1

// Addr 表示 48 位 MAC 地址（EUI-48/MAC-48）。
//
// Addr 是不可变值类型：
//   - 零值即 00:00:00:00:00:00
//   - 可直接比较（==）和用作 map key
//   - 并发安全，无需加锁
type Addr struct {
	bytes [6]byte
}

// AddrFromUint64 从整数创建 MAC 地址，高 16 位被丢弃（按 2^48 取模）。
func AddrFromUint64(v uint64) Addr {
	v &= mask48
	return Addr{bytes: [6]byte{
		byte(v >> 40), byte(v >> 32), byte(v >> 24),
		byte(v >> 16), byte(v >> 8), byte(v),
	}}
}

// Uint64 返回地址的整数表示（网络字节序）。
func (a Addr) Uint64() uint64 {
	b := a.bytes
	return uint64(b[0])<<40 | uint64(b[1])<<32 | uint64(b[2])<<24 |
		uint64(b[3])<<16 | uint64(b[4])<<8 | uint64(b[5])
}

// Add 返回 a + n (mod 2^48)。
func (a Addr) Add(n uint64) Addr {
	return AddrFromUint64(a.Uint64() + n)
}

// Sub 返回 a - n (mod 2^48)。
//
// uint64 减法在 2^64 上回绕，2^48 整除 2^64，截取低 48 位即得正确结果。
func (a Addr) Sub(n uint64) Addr {
	return AddrFromUint64(a.Uint64() - n)
}
