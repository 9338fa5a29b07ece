// Package xlog 基于 log/slog 的结构化日志库。
//
// # 创建 Logger
//
// 使用 Builder 模式（first-error-wins：遇到第一个配置错误后，Build 返回该错误）：
//
//	logger, cleanup, err := xlog.New().
//	    SetOutput(os.Stderr).
//	    SetLevelString("debug").
//	    SetFormat("json").
//	    Build()
//	if err != nil {
//	    return err
//	}
//	defer cleanup()
//
// 设置 [Builder.SetRotation] 后日志写入按大小轮转的文件，cleanup 负责关闭文件。
//
// # 日志级别
//
// LevelDebug(-4)、LevelInfo(0)、LevelWarn(4)、LevelError(8)。
// 可通过 [ParseLevel] 从字符串解析。Level 实现 encoding.TextMarshaler/TextUnmarshaler，
// 支持配置文件直接反序列化。
//
// # 便捷属性
//
// [Err]、[Duration]、[Component]、[Count]、[Rows]、[Format]。
//
// # 派生 Logger
//
// [Logger.With] 和 [Logger.WithGroup] 返回 [Logger] 接口，派生 logger 共享父级的
// LevelVar，动态级别变更会同步生效。
package xlog
