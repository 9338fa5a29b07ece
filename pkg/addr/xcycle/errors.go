package xcycle

import "errors"

var (
	// ErrInvalidRange 表示参数是范围写法但至少一端无效，或范围过大。
	ErrInvalidRange = errors.New("xcycle: invalid range")

	// ErrInvalidNumberArgument 表示绑定到整数类型的参数无效。
	// Number 类型的所有解析错误同时匹配该错误和底层错误。
	ErrInvalidNumberArgument = errors.New("xcycle: invalid number argument")

	// ErrKindCount 表示 Bind 的类型列表与参数列表长度不同。
	ErrKindCount = errors.New("xcycle: kinds and arguments differ in length")
)
