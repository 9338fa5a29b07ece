package main

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/macipr/pkg/config/xconf"
	"github.com/omeyang/macipr/pkg/format/xrender"
	"github.com/omeyang/macipr/pkg/observability/xlog"
)

// fileConfig 是配置文件的结构：
//
//	log:
//	  level: warn
//	  format: text
//	  file: ""
//	render:
//	  workers: 1
//	  chunk: 4096
//	presets:
//	  dhcp: 'host h%03n { hardware ethernet %m; fixed-address %i; }'
type fileConfig struct {
	Log struct {
		Level  string `koanf:"level"`
		Format string `koanf:"format"`
		File   string `koanf:"file"`
	} `koanf:"log"`
	Render struct {
		Workers int `koanf:"workers"`
		Chunk   int `koanf:"chunk"`
	} `koanf:"render"`
	Presets map[string]string `koanf:"presets"`
}

// options 是合并配置文件与命令行后的最终设置，命令行优先。
type options struct {
	logLevel  string
	logFormat string
	logFile   string
	workers   int
	chunk     int
	countOnly bool
	preset    string
	presets   map[string]string
}

func defaultFileConfig() fileConfig {
	var fc fileConfig
	fc.Log.Level = "warn"
	fc.Log.Format = "text"
	fc.Render.Workers = 1
	fc.Render.Chunk = xrender.DefaultChunk
	return fc
}

// loadFileConfig 读取 path 指向的配置；path 为空时返回默认值。
func loadFileConfig(path string) (fileConfig, error) {
	fc := defaultFileConfig()
	if path == "" {
		return fc, nil
	}
	cfg, err := xconf.New(path)
	if err != nil {
		return fc, err
	}
	if err := cfg.Unmarshal("", &fc); err != nil {
		return fc, fmt.Errorf("%s: %w", path, err)
	}
	return fc, nil
}

func resolveOptions(cmd *cli.Command) (*options, error) {
	fc, err := loadFileConfig(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	o := &options{
		logLevel:  fc.Log.Level,
		logFormat: fc.Log.Format,
		logFile:   fc.Log.File,
		workers:   fc.Render.Workers,
		chunk:     fc.Render.Chunk,
		countOnly: cmd.Bool("count"),
		preset:    cmd.String("preset"),
		presets:   fc.Presets,
	}
	if cmd.IsSet("log-level") {
		o.logLevel = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		o.logFormat = cmd.String("log-format")
	}
	if cmd.IsSet("log-file") {
		o.logFile = cmd.String("log-file")
	}
	if cmd.IsSet("workers") {
		o.workers = cmd.Int("workers")
	}
	if o.workers < 1 {
		return nil, fmt.Errorf("workers must be positive, got %d", o.workers)
	}
	return o, nil
}

// formatAndArgs 从位置参数中取出格式串：使用 preset 时全部位置参数都是 ARG。
func (o *options) formatAndArgs(positional []string) (string, []string, error) {
	if o.preset != "" {
		format, ok := o.presets[o.preset]
		if !ok {
			return "", nil, fmt.Errorf("%w: %q", errUnknownPreset, o.preset)
		}
		return format, positional, nil
	}
	if len(positional) == 0 {
		return "", nil, errMissingFormat
	}
	return positional[0], positional[1:], nil
}

// newLogger 构建诊断日志：默认写 stderr，配置了日志文件时写入轮转文件。
func newLogger(o *options, stderr io.Writer) (xlog.LoggerWithLevel, func() error, error) {
	b := xlog.New().
		SetOutput(stderr).
		SetLevel(xlog.LevelWarn).
		SetLevelString(o.logLevel).
		SetFormat(o.logFormat)
	if o.logFile != "" {
		b = b.SetRotation(o.logFile)
	}
	return b.Build()
}
