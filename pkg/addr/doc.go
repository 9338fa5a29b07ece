// Package addr 提供地址值与地址范围相关的子包。
//
// 子包列表：
//   - xaddr: 带类型标签的地址值（MAC/IPv4/IPv6/整数），按位宽回绕运算
//   - xcycle: 地址范围解析（start-end、start+offset、单地址），生成可循环遍历的 Cycle
//
// 设计原则：
//   - 所有地址视为定宽无符号整数，溢出回绕而非报错
//   - 值类型不可变，可安全并发读取
package addr
