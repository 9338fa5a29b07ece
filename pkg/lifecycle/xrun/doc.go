// Package xrun 提供带信号处理的任务运行器。
//
// Run 在独立的 goroutine 中执行一个 Job，同时监听系统信号。
// 收到信号时取消 Job 的 context，并返回 *SignalError：
//
//	err := xrun.Run(ctx, func(ctx context.Context) error {
//	    return renderer.Write(ctx, os.Stdout)
//	}, xrun.WithLogger(logger))
//	if errors.Is(err, xrun.ErrSignal) {
//	    // 被 SIGINT/SIGTERM 中断
//	}
//
// 基于 golang.org/x/sync/errgroup 实现，Run 返回时所有内部 goroutine 均已退出。
package xrun
