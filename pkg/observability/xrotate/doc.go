// Package xrotate 提供日志文件轮转功能。
//
// [Rotator] 接口定义了轮转器的核心行为（Write/Close/Rotate），所有实现并发安全。
// 当前实现 [NewLumberjack] 基于 lumberjack v2，按文件大小轮转，
// 按数量和天数清理备份，可选 gzip 压缩。
//
// lumberjack 使用 0600 权限创建日志文件，父目录不存在时以 0750 创建。
package xrotate
