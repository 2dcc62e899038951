// Package mazedfs finds a path through a character-grid maze with
// depth-first search and prints the maze with the path marked.
//
// What is in here?
//
//	maze/            — Grid, Coordinate, Parse/Load with strict validation
//	dfs/             — Solve: DFS with fixed up, down, left, right priority
//	render/          — Render: notice line + grid with the path marked
//	config/          — optional YAML settings file
//	cmd/mazesolver/  — command-line entry point
//
// Quick ASCII example:
//
//	S.#        Path found:
//	.#.   →    *.#
//	..E        *#.
//	           ***
//
// Every cell of the found path, S and E included, is overwritten with '*'.
// The path is the first one DFS reaches, not necessarily the shortest.
//
//	go install github.com/katalvlaran/mazedfs/cmd/mazesolver@latest
package mazedfs
