// Package xnet 提供 IPv4/IPv6 地址的数值模型。
//
// xnet 基于 Go 标准库 [net/netip] 和社区库 [go4.org/netipx] 构建，
// 把 IP 地址视为定宽无符号整数（IPv4 32 位，IPv6 128 位）：
//
//   - uint128.go: [Uint128] 128 位整数及回绕加减、比较、整数字面量解析
//   - convert.go: uint32/[Uint128] 与 [netip.Addr] 互转、回绕加减运算
//   - parse.go: [ParseIPv4] / [ParseIPv6]，接受标准文本或整数字面量
//   - format.go: IPv6 压缩（RFC 5952）/全长格式
//   - span.go: 两个地址覆盖的 [netipx.IPRange]
//   - version.go: IP 版本类型 [Version] 及 [AddrVersion]
//
// # 快速示例
//
//	v4, _ := xnet.ParseIPv4("180000000")
//	fmt.Println(v4)                          // 10.186.149.0（按 2^32 取模）
//
//	v6, _ := xnet.ParseIPv6("fe80::1")
//	fmt.Println(xnet.FormatExpanded(v6))     // fe80:0000:0000:0000:0000:0000:0000:0001
//
//	prev := xnet.AddrAdd(netip.MustParseAddr("0.0.0.0"), -1)
//	fmt.Println(prev)                        // 255.255.255.255
//
// # 设计决策
//
//   - 所有运算按地址宽度回绕，溢出不是错误
//   - IPv6 地址统一以 16 字节形式保存，IPv4-mapped 地址（::ffff:a.b.c.d）
//     被当作普通 128 位值，不做 Unmap
//   - 拒绝 IPv6 zone ID（"fe80::1%eth0"），zone 不属于数值空间
//   - 所有可失败函数返回 error，预定义错误变量支持 errors.Is
package xnet
