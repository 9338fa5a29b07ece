// Package xaddr 提供带类型标签的地址值。
//
// [Value] 把 MAC（48 位）、IPv4（32 位）、IPv6（128 位）和普通整数（64 位）
// 统一表示为定宽无符号整数，所有加减运算按 2^Bits 回绕：
//
//	v, _ := xaddr.Parse(xaddr.IPv4, "0.0.0.0")
//	fmt.Println(v.Add(-1))                        // 255.255.255.255
//
//	m, _ := xaddr.Parse(xaddr.MAC, "281474976710656") // 2^48
//	fmt.Println(m)                                // 00:00:00:00:00:00
//
// 解析委托给 [xmac] 与 [xnet]，渲染见 [Render] 与 [Style]。
//
// [xmac]: github.com/omeyang/macipr/pkg/util/xmac
// [xnet]: github.com/omeyang/macipr/pkg/util/xnet
package xaddr
