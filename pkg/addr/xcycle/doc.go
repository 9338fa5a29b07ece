// Package xcycle 把单个命令行参数解析为可循环遍历的地址序列 [Cycle]。
//
// 支持 3 种写法，按以下优先级尝试：
//
//   - 偏移范围 "START+OFFSET"：按最右侧的 '+' 拆分，OFFSET 为带符号十进制 int64，
//     正数前进、负数后退，共 |OFFSET|+1 个地址。例如 IPv4 "10+-9" 得到
//     0.0.0.10, 0.0.0.9, ..., 0.0.0.1
//   - 区间范围 "START-END"：从右向左尝试每个 '-'，第一个两侧都能解析的位置生效。
//     END 小于 START 时后退。例如 "192.168.1.1-192.168.0.254" 得到 4 个地址
//   - 单地址：上述写法都不匹配且整体能解析（如 "11-22-33-44-55-66"），Count 为 1
//
// 地址按类型位宽回绕。Count 必须能用 uint64 表示，跨越 2^64 个及以上地址的
// IPv6 范围返回 [ErrInvalidRange]。
package xcycle
