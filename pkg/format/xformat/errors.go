package xformat

import "errors"

var (
	// ErrUnknownDirective 表示 '%' 之后的字符不是可识别的指令，
	// 包括格式串以 '%' 结尾，以及 "%<digits>" 之后不是 'n'。
	ErrUnknownDirective = errors.New("xformat: unknown directive")

	// ErrUnknownEscape 表示 '\' 之后的字符不是可识别的转义，包括格式串以 '\' 结尾。
	ErrUnknownEscape = errors.New("xformat: unknown escape")

	// ErrArgumentCountMismatch 表示指令数与参数数不一致。
	ErrArgumentCountMismatch = errors.New("xformat: argument count mismatch")
)
