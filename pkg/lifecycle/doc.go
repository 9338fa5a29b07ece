// Package lifecycle 提供进程生命周期相关的子包。
//
// 子包列表：
//   - xrun: 带信号处理的任务运行器，基于 errgroup
package lifecycle
