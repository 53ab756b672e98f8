package frame_test

import (
	"fmt"

	"github.com/tmittal947/qks-demo/frame"
)

func ExampleGenerate() {
	f := frame.Generate(8, 2.0, 0)
	fmt.Println(f.X)
	fmt.Println(f.Y)
	// Output:
	// [-1 1 -1 1 -1 -1 1 1]
	// [-1 -1 1 1 -1 1 -1 1]
}

func ExampleFrame_Side() {
	f := frame.NewSeededGenerator(1).Generate(4, 1.0, 0.1)
	for i := 0; i < f.Len(); i++ {
		fmt.Println(i, f.Side(i))
	}
	// Output:
	// 0 bottom
	// 1 top
	// 2 left
	// 3 right
}
