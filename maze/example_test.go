package maze_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mazedfs/maze"
)

// ExampleParse reads a small maze and reports its shape and markers.
func ExampleParse() {
	g, err := maze.Parse(strings.NewReader("S.#\n.#.\n..E\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%dx%d start=%v end=%v\n", g.Rows, g.Cols, g.Start, g.End)

	// Output:
	// 3x3 start=(0,0) end=(2,2)
}
