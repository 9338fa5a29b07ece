package xformat

// PadNumber 在 s 左侧补 pad 直到长度达到 width。s 已不短于 width 时原样返回，不截断。
func PadNumber(s string, width int, pad byte) string {
	if len(s) >= width {
		return s
	}
	buf := append(make([]byte, 0, width), s...)
	return string(padLeft(buf, 0, width, pad))
}

// padLeft 把 dst[start:] 右移并在左侧补 pad，使其长度至少为 width。
func padLeft(dst []byte, start, width int, pad byte) []byte {
	n := len(dst) - start
	if n >= width {
		return dst
	}
	fill := width - n
	for i := 0; i < fill; i++ {
		dst = append(dst, 0)
	}
	copy(dst[start+fill:], dst[start:start+n])
	for i := start; i < start+fill; i++ {
		dst[i] = pad
	}
	return dst
}
