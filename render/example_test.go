package render_test

import (
	"fmt"

	"github.com/katalvlaran/mazedfs/dfs"
	"github.com/katalvlaran/mazedfs/maze"
	"github.com/katalvlaran/mazedfs/render"
)

// ExampleRender solves a small maze and prints it with the path marked.
func ExampleRender() {
	g, _ := maze.NewGrid([]string{"S.#", ".#.", "..E"})
	res, _ := dfs.Solve(g)
	fmt.Print(render.Render(g, res))

	// Output:
	// Path found:
	// *.#
	// *#.
	// ***
}
