// Package xmac 提供 48 位 MAC 地址的数值模型。
//
// xmac 把 MAC 地址视为 48 位无符号整数，所有运算在 2^48 上回绕：
//
//   - 多格式解析（冒号、短线、点、无分隔符、十进制整数、0x 十六进制整数）
//   - 小写冒号格式输出（String、零分配的 AppendTo）
//   - 回绕运算（Add/Sub），ff:ff:ff:ff:ff:ff 加 1 回到 00:00:00:00:00:00
//
// # 快速示例
//
//	addr, err := xmac.Parse("AA:BB:CC:DD:EE:FF")
//	fmt.Println(addr)                                // aa:bb:cc:dd:ee:ff
//	fmt.Println(addr.Add(1))                         // aa:bb:cc:dd:ef:00
//	fmt.Println(xmac.MustParse("16"))                // 00:00:00:00:00:10
//
// # 整数字面量
//
// 纯十进制数字串一律按十进制解析，即使长度恰好为 12（"001122334455" 是十进制，
// 不是无分隔符十六进制）。十六进制整数需要 0x 前缀。超出 48 位的整数按 2^48 取模，
// 不报错。
//
// # 零值
//
// 零值 Addr{} 就是 00:00:00:00:00:00，是地址空间中的普通一点，可以参与运算和输出。
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xmac.Parse("invalid")
//	if errors.Is(err, xmac.ErrInvalidFormat) {
//	    // 格式错误
//	}
package xmac
