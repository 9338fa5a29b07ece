// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xmac: MAC 地址工具库，多格式解析、按 48 位回绕的整数运算、格式化
//   - xnet: IP 地址工具库，基于 net/netip + go4.org/netipx 的增量函数（128 位运算、解析、格式化、区间）
//
// 设计原则：
//   - 地址均为值类型，零分配地追加到调用方缓冲区
//   - 优先复用标准库 net/netip 的表示
package util
