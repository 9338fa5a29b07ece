package xmac

const hexLower = "0123456789abcdef"

// String 返回小写冒号格式。
func (a Addr) String() string {
	var buf [17]byte
	return string(a.AppendTo(buf[:0]))
}

// AppendTo 把小写冒号格式追加到 dst，供逐行渲染复用缓冲区。
func (a Addr) AppendTo(dst []byte) []byte {
	for i, b := range a.bytes {
		if i > 0 {
			dst = append(dst, ':')
		}
		dst = append(dst, hexLower[b>>4], hexLower[b&0x0f])
	}
	return dst
}
