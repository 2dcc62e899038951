package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/mazedfs/dfs"
	"github.com/katalvlaran/mazedfs/maze"
)

// ExampleSolve searches the maze
//
//	S.#
//	.#.
//	..E
//
// Neighbors are tried up, down, left, right, so the search goes down the
// left column before turning right along the bottom row.
func ExampleSolve() {
	g, err := maze.NewGrid([]string{"S.#", ".#.", "..E"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := dfs.Solve(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("found:", res.Found)
	fmt.Println("path:", res.Path)

	// Output:
	// found: true
	// path: [(0,0) (1,0) (2,0) (2,1) (2,2)]
}

// ExampleSolve_noPath shows that an unreachable end is a normal result.
func ExampleSolve_noPath() {
	g, _ := maze.NewGrid([]string{"S#E"})
	res, err := dfs.Solve(g)
	fmt.Println(res.Found, res.Path == nil, err)

	// Output:
	// false true <nil>
}
