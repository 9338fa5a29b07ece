// macipr 按 printf 风格的格式串批量输出 MAC、IPv4、IPv6 地址与编号。
//
// 用法:
//
//	macipr [选项] FORMAT [ARG...]
//	macipr [选项] --preset NAME [ARG...]
//	macipr [选项] -- FORMAT [ARG...]
//
// 选项在位置参数之后同样生效；FORMAT 或 ARG 以 "-" 开头时用 "--" 结束选项解析。
//
// 格式指令:
//
//	%m   MAC 地址（aa:bb:cc:dd:ee:ff）
//	%i   IPv4 地址
//	%x   IPv6 地址（RFC 5952 压缩形式）
//	%X   IPv6 地址（完整 8 组 4 位十六进制）
//	%n   十进制编号，支持宽度与补零：%5n、%05n
//	%%   字面量 %
//
// 每个指令按位置消费一个 ARG。ARG 可以是单个值、起止区间（START-END）或
// 偏移区间（START+N、START+-N）。最长的区间决定输出行数，较短的区间循环。
//
// 选项:
//
//	-c, --config   配置文件（YAML/JSON），也可通过 MACIPR_CONFIG 指定
//	-p, --preset   使用配置文件中的命名格式串，此时省略 FORMAT
//	-w, --workers  并发渲染的 goroutine 数（默认 1）
//	    --count    只输出总行数
//	    --log-level / --log-format / --log-file  诊断日志（写入 stderr 或轮转文件）
//
// 退出码:
//
//	0: 成功
//	1: 渲染或写出失败
//	2: 参数错误（用法错误、格式串或地址解析失败、配置错误）
//	128+N: 被信号 N 中断
//
// 示例:
//
//	macipr '%i' 192.168.0.1-192.168.0.4
//	macipr 'host h%03n { hardware ethernet %m; fixed-address %i; }' 1+99 00:16:3e:00:00:01+99 10.0.0.10+99
//	macipr '%x' 2001:db8::ff+-3
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/omeyang/macipr/pkg/lifecycle/xrun"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

// run 执行 CLI 并把错误映射为退出码，诊断信息写入 stderr。
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	app := createApp()
	app.Writer = stdout
	app.ErrWriter = stderr

	err := app.Run(ctx, args)
	if err == nil {
		return exitOK
	}

	fmt.Fprintf(stderr, "macipr: %v\n", err)

	var sigErr *xrun.SignalError
	if errors.As(err, &sigErr) {
		return sigErr.ExitCode()
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	return exitFailure
}
