// Package observability 提供可观测性相关的子包。
//
// 子包列表：
//   - xlog: 结构化日志，基于 log/slog 扩展
//   - xrotate: 日志文件轮转
//
// 设计原则：
//   - 日志只写 stderr 或轮转文件，不污染标准输出
//   - 支持动态级别控制
package observability
