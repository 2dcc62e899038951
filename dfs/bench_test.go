package dfs_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/mazedfs/dfs"
	"github.com/katalvlaran/mazedfs/maze"
)

// serpentine builds an n×n maze whose only route snakes across every
// other row, so the path covers about half the cells.
func serpentine(b *testing.B, n int) *maze.Grid {
	rows := make([]string, n)
	for y := 0; y < n; y++ {
		switch {
		case y%2 == 0:
			rows[y] = strings.Repeat(".", n)
		case y%4 == 1:
			rows[y] = strings.Repeat("#", n-1) + "."
		default:
			rows[y] = "." + strings.Repeat("#", n-1)
		}
	}
	rows[0] = "S" + rows[0][1:]
	last := []rune(rows[n-1])
	last[n-1] = maze.End
	rows[n-1] = string(last)

	g, err := maze.NewGrid(rows)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}

	return g
}

// BenchmarkSolve_Serpentine measures both strategies on a 501×501 snake.
// Complexity: O(Rows×Cols) per solve.
func BenchmarkSolve_Serpentine(b *testing.B) {
	g := serpentine(b, 501)
	for _, s := range []dfs.Strategy{dfs.Iterative, dfs.Recursive} {
		b.Run(s.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				res, err := dfs.Solve(g, dfs.WithStrategy(s))
				if err != nil || !res.Found {
					b.Fatalf("solve failed: found=%v err=%v", res != nil && res.Found, err)
				}
			}
		})
	}
}
