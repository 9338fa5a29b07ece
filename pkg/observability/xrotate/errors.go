package xrotate

import "errors"

var (
	// ErrEmptyFilename 表示未指定日志文件路径。
	ErrEmptyFilename = errors.New("xrotate: filename is required")

	// ErrInvalidMaxSize 表示单文件大小上限超出 1~10240 MB。
	ErrInvalidMaxSize = errors.New("xrotate: invalid max size")

	// ErrInvalidMaxBackups 表示保留的备份数超出 0~1024。
	ErrInvalidMaxBackups = errors.New("xrotate: invalid max backups")

	// ErrInvalidMaxAge 表示备份保留天数超出 0~3650。
	ErrInvalidMaxAge = errors.New("xrotate: invalid max age")

	// ErrNoCleanupPolicy 表示备份数与保留天数同时为 0，旧文件将无限增长。
	ErrNoCleanupPolicy = errors.New("xrotate: no cleanup policy configured")

	// ErrClosed 表示轮转器已关闭。
	ErrClosed = errors.New("xrotate: rotator is closed")
)
