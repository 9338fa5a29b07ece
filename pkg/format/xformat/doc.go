// Package xformat 编译 printf 风格的格式串。
//
// 支持的指令：
//
//	%%          字面量 '%'
//	%m          MAC 地址，"aa:bb:cc:dd:ee:ff"
//	%i          IPv4 地址，"192.168.1.1"
//	%x          IPv6 地址，压缩形式 "fe80::1"
//	%X          IPv6 地址，全长形式 "fe80:0000:0000:0000:0000:0000:0000:0001"
//	%n          十进制整数
//	%5n         左侧补空格到 5 位
//	%05n        左侧补零到 5 位
//
// 支持的转义：\n（换行）与 \\（反斜杠）。其他转义或指令都是错误，
// 错误信息带有字节偏移。
//
// 基本用法：
//
//	prog, err := xformat.CompileFor("host h%03n { hardware ethernet %m; }", 2)
//	if err != nil {
//	    return err
//	}
//	kinds := prog.Kinds() // [number MAC]
package xformat
