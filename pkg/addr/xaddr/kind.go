package xaddr

// Kind 表示地址值的类型，决定位宽、解析语法和默认渲染方式。
type Kind uint8

const (
	// MAC 是 48 位 MAC 地址。
	MAC Kind = iota + 1
	// IPv4 是 32 位 IPv4 地址。
	IPv4
	// IPv6 是 128 位 IPv6 地址。
	IPv6
	// Number 是 64 位无符号整数。
	Number
)

// Bits 返回该类型的位宽，未知类型返回 0。
func (k Kind) Bits() int {
	switch k {
	case MAC:
		return 48
	case IPv4:
		return 32
	case IPv6:
		return 128
	case Number:
		return 64
	default:
		return 0
	}
}

// String 返回类型名称。
func (k Kind) String() string {
	switch k {
	case MAC:
		return "MAC"
	case IPv4:
		return "IPv4"
	case IPv6:
		return "IPv6"
	case Number:
		return "number"
	default:
		return "unknown"
	}
}

// Valid 报告 k 是否为已定义的类型。
func (k Kind) Valid() bool {
	return k.Bits() != 0
}

// Grammar 返回该类型可接受的文本形式，用于错误提示。
func (k Kind) Grammar() string {
	switch k {
	case MAC:
		return "aa:bb:cc:dd:ee:ff, aa-bb-cc-dd-ee-ff, aabb.ccdd.eeff, aabbccddeeff or an integer"
	case IPv4:
		return "a.b.c.d or an integer"
	case IPv6:
		return "RFC 4291 text such as 2001:db8::1 or an integer"
	case Number:
		return "a decimal or 0x-prefixed integer"
	default:
		return ""
	}
}
