package xaddr_test

import (
	"fmt"

	"github.com/omeyang/macipr/pkg/addr/xaddr"
)

func ExampleParse() {
	v, err := xaddr.Parse(xaddr.IPv4, "180000000")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(v)
	fmt.Println(v.Add(-180000001))
	// Output:
	// 10.186.149.0
	// 255.255.255.255
}

func ExampleRender() {
	v := xaddr.MustParse(xaddr.IPv6, "fe80::1")
	fmt.Println(xaddr.Render(v, xaddr.StyleIPv6))
	fmt.Println(xaddr.Render(v, xaddr.StyleIPv6Full))
	// Output:
	// fe80::1
	// fe80:0000:0000:0000:0000:0000:0000:0001
}
