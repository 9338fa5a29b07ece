package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/macipr/pkg/format/xrender"
	"github.com/omeyang/macipr/pkg/lifecycle/xrun"
	"github.com/omeyang/macipr/pkg/observability/xlog"
)

// largeOutputRows 超过此行数时输出警告日志。
const largeOutputRows = 10_000_000

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:      "macipr",
		Usage:     "按格式串批量输出 MAC/IPv4/IPv6 地址与编号",
		ArgsUsage: "[--] FORMAT [ARG...]",
		Description: `选项可以出现在位置参数之后（macipr %i 10.0.0.1+9 -w 2）。
FORMAT 或 ARG 以 "-" 开头时，在它们前面加 "--" 结束选项解析：

  macipr -- '-%n-' 1+9`,
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径（.yaml/.yml/.json）",
				Sources: cli.EnvVars("MACIPR_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "preset",
				Aliases: []string{"p"},
				Usage:   "使用配置文件 presets 中的格式串",
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   "并发渲染的 goroutine 数",
				Value:   1,
			},
			&cli.BoolFlag{
				Name:  "count",
				Usage: "只输出总行数",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "日志级别 (debug/info/warn/error)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "日志格式 (text/json)",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "日志文件路径（按大小轮转），默认写 stderr",
			},
		},
		Action:          renderAction,
		HideHelpCommand: true,
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return usageError(err)
		},
		// 禁止 urfave/cli 直接调用 os.Exit，由 run() 统一映射退出码。
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
}

// renderAction 完成解析阶段后再写出任何一行：解析失败时 stdout 为空。
func renderAction(ctx context.Context, cmd *cli.Command) error {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return usageError(err)
	}

	logger, cleanup, err := newLogger(opts, cmd.Root().ErrWriter)
	if err != nil {
		return usageError(err)
	}
	defer func() { _ = cleanup() }()

	format, args, err := opts.formatAndArgs(cmd.Args().Slice())
	if err != nil {
		return usageError(err)
	}

	r, err := xrender.Prepare(format, args)
	if err != nil {
		logger.Debug(ctx, "parse failed", xlog.Format(format), xlog.Err(err))
		return usageError(err)
	}
	logParsed(ctx, logger, r)

	out := cmd.Root().Writer
	if opts.countOnly {
		_, err = fmt.Fprintln(out, r.Rows())
		return err
	}

	return xrun.Run(ctx, func(ctx context.Context) error {
		return r.WriteParallel(ctx, out, opts.workers, opts.chunk)
	}, xrun.WithLogger(logger), xrun.WithName("render"))
}

func logParsed(ctx context.Context, logger xlog.LoggerWithLevel, r *xrender.Renderer) {
	if logger.Enabled(ctx, xlog.LevelDebug) {
		prog := r.Program()
		logger.Debug(ctx, "format compiled",
			xlog.Format(prog.Source()),
			xlog.Count(int64(prog.NumDirectives())))
		for i, c := range r.Cycles() {
			attrs := []slog.Attr{
				slog.Int("index", i+1),
				slog.String("kind", c.Kind().String()),
				slog.String("cycle", c.String()),
			}
			// IP 区间不回绕时附带覆盖范围及其 CIDR 数
			if span, ok := c.Span(); ok {
				attrs = append(attrs,
					slog.String("span", span.String()),
					slog.Int("prefixes", len(span.Prefixes())))
			}
			logger.Debug(ctx, "argument bound", attrs...)
		}
		logger.Debug(ctx, "output planned", xlog.Rows(r.Rows()))
	}
	if r.Rows() >= largeOutputRows {
		logger.Warn(ctx, "large output", xlog.Rows(r.Rows()))
	}
}
