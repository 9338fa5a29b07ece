package xrender_test

import (
	"context"
	"fmt"
	"os"

	"github.com/omeyang/macipr/pkg/format/xrender"
)

func ExamplePrepare() {
	r, err := xrender.Prepare("%m %i", []string{"aa:bb:cc:dd:ee:00+2", "10.0.0.1"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := r.Write(context.Background(), os.Stdout); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// aa:bb:cc:dd:ee:00 10.0.0.1
	// aa:bb:cc:dd:ee:01 10.0.0.1
	// aa:bb:cc:dd:ee:02 10.0.0.1
}

func ExampleRenderer_Line() {
	r, err := xrender.Prepare("%n %n %n", []string{"0-9", "0", "0-4"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(r.Rows())
	fmt.Println(r.Line(7))
	// Output:
	// 10
	// 7 0 2
}
