// Command mazesolver reads a maze file, finds a path from S to E with
// depth-first search and prints the maze with the path marked.
//
// Usage:
//
//	mazesolver [flags] MAZE_FILE
//
// The maze file holds one row per line: '#' wall, '.' floor, 'S' start,
// 'E' end. Output starts with "Path found:" or "No path found.".
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := runMain(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// runMain executes the root command with args and returns the process
// exit status. Failures are reported on stderr as "Error: <msg>".
func runMain(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}
