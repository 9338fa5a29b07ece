package xrender

import (
	"bufio"
	"context"
	"io"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultChunk 是 WriteParallel 每个任务渲染的默认行数。
	DefaultChunk = 4096

	// MaxChunk 是 WriteParallel 单块行数的上限，更大的 chunk 会被截断到此值。
	MaxChunk = 1 << 16

	writeBufferSize = 64 << 10
)

// Write 按行号递增写出全部行，每行后跟 '\n'。
// 每行写出前检查 ctx，取消时返回 ctx.Err()，已缓冲的内容会先刷出。
func (r *Renderer) Write(ctx context.Context, w io.Writer) error {
	bw := bufio.NewWriterSize(w, writeBufferSize)
	var line []byte
	for row := uint64(0); row < r.rows; row++ {
		if err := ctx.Err(); err != nil {
			_ = bw.Flush()
			return err
		}
		line = r.AppendLine(line[:0], row)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteParallel 把行按 chunk 分块，由最多 workers 个 goroutine 并发渲染，
// 再按块顺序写出，输出与 [Renderer.Write] 逐字节相同。
//
// workers ≤ 1 或总行数不超过一个块时退化为 Write。chunk ≤ 0 时使用 [DefaultChunk]，
// 超过 [MaxChunk] 时使用 MaxChunk。
// 任一块写出失败或 ctx 取消时，其余任务尽快结束并返回第一个错误。
func (r *Renderer) WriteParallel(ctx context.Context, w io.Writer, workers, chunk int) error {
	if chunk <= 0 {
		chunk = DefaultChunk
	}
	chunk = min(chunk, MaxChunk)
	size := uint64(chunk)
	if workers <= 1 || r.rows <= size {
		return r.Write(ctx, w)
	}

	g, gctx := errgroup.WithContext(ctx)
	// pending 的容量限制同时在途的块数
	pending := make(chan chan []byte, workers)

	g.Go(func() error {
		defer close(pending)
		for lo := uint64(0); lo < r.rows; lo += size {
			hi := min(lo+size, r.rows)
			if hi < lo { // lo+size 溢出
				hi = r.rows
			}
			done := make(chan []byte, 1)
			select {
			case pending <- done:
			case <-gctx.Done():
				return gctx.Err()
			}
			g.Go(func() error {
				done <- r.appendRows(make([]byte, 0, int(hi-lo)*32), lo, hi)
				return nil
			})
			if hi == r.rows {
				break
			}
		}
		return nil
	})

	g.Go(func() error {
		bw := bufio.NewWriterSize(w, writeBufferSize)
		for done := range pending {
			select {
			case buf := <-done:
				if _, err := bw.Write(buf); err != nil {
					return err
				}
			case <-gctx.Done():
				_ = bw.Flush()
				return gctx.Err()
			}
		}
		return bw.Flush()
	})

	return g.Wait()
}
