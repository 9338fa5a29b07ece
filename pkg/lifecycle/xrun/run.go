package xrun

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/omeyang/macipr/pkg/observability/xlog"
)

// Job 是 Run 执行的任务，ctx 在收到信号或父 context 取消时结束。
type Job func(ctx context.Context) error

// Run 执行 job 并监听信号，直到 job 返回。
//
// 返回值：
//   - job 正常返回时为 job 的错误（可能为 nil）
//   - 收到信号时为 *SignalError（errors.Is(err, ErrSignal) 为 true），
//     即使 job 因 ctx 取消返回了 context.Canceled
func Run(ctx context.Context, job Job, opts ...Option) error {
	if job == nil {
		return ErrNilJob
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	logger := o.logger.With(xlog.Component(o.name))

	causeCtx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	g, gctx := errgroup.WithContext(causeCtx)
	done := make(chan struct{})

	if !o.noSignalHandler && (len(o.signals) > 0 || o.testSignals != nil) {
		g.Go(func() error {
			return watchSignals(gctx, done, o, cancel, logger)
		})
	}

	start := time.Now()
	g.Go(func() error {
		defer close(done)
		return job(gctx)
	})

	err := g.Wait()
	if cause := context.Cause(causeCtx); errors.Is(cause, ErrSignal) {
		logger.Warn(ctx, "job interrupted", xlog.Duration(time.Since(start)), xlog.Err(err))
		return cause
	}
	if err != nil {
		logger.Debug(ctx, "job failed", xlog.Duration(time.Since(start)), xlog.Err(err))
		return err
	}
	logger.Debug(ctx, "job finished", xlog.Duration(time.Since(start)))
	return nil
}

// watchSignals 等待第一个信号并以 *SignalError 取消 ctx；job 结束后立即退出。
func watchSignals(ctx context.Context, done <-chan struct{}, o *runOptions,
	cancel context.CancelCauseFunc, logger xlog.Logger) error {
	var sigCh chan os.Signal
	if len(o.signals) > 0 {
		sigCh = make(chan os.Signal, 1)
		signal.Notify(sigCh, o.signals...)
		defer signal.Stop(sigCh)
	}

	var sig os.Signal
	select {
	case sig = <-sigCh:
	case sig = <-o.testSignals:
	case <-done:
		return nil
	case <-ctx.Done():
		return nil
	}
	logger.Info(ctx, "received signal, cancelling", slog.String("signal", signalName(sig)))
	cancel(&SignalError{Signal: sig})
	return nil
}

func signalName(sig os.Signal) string {
	if sig == nil {
		return "<nil>"
	}
	return sig.String()
}
