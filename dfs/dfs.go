// Package dfs implements depth-first path search between two cells of a
// maze.Grid. Neighbors are tried in the fixed order up, down, left, right,
// so the same grid always yields the same path.
//
// Key features:
//   - Solve(g, opts...): search from g.Start to g.End, or overridden endpoints
//   - Iterative (default) or Recursive strategy with identical results
//   - Hooks: OnVisit (pre-order) with error abort
//   - Limits: MaxDepth
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(Rows×Cols), each cell is entered at most once.
//   - Memory: O(Rows×Cols) for visited marks and the path stack.
//
// Errors:
//
//   - ErrGridNil                  if g is nil.
//   - ErrStartOutOfBounds         if an overridden start is outside the grid.
//   - ErrEndOutOfBounds           if an overridden end is outside the grid.
//   - context.Canceled            if ctx is done.
//   - any error returned by OnVisit.
//
// Finding no path is not an error: Solve returns a Result with Found=false.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/mazedfs/maze"
)

// dfsWalker encapsulates state during one search.
type dfsWalker struct {
	grid    *maze.Grid
	opts    Options
	end     maze.Coordinate
	visited []bool            // row-major, never reset during the search
	stack   []maze.Coordinate // current path from start
	res     *Result
}

// Solve searches g for a path from start to end.
// Returns a Result, or an error if aborted by context or hook.
func Solve(g *maze.Grid, opts ...Option) (*Result, error) {
	// 1. Validate input grid
	if g == nil {
		return nil, ErrGridNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Resolve endpoints
	start, end := g.Start, g.End
	if dopts.HasEndpoints {
		start, end = dopts.Start, dopts.End
		if !g.InBounds(start) {
			return nil, ErrStartOutOfBounds
		}
		if !g.InBounds(end) {
			return nil, ErrEndOutOfBounds
		}
	}

	w := &dfsWalker{
		grid:    g,
		opts:    dopts,
		end:     end,
		visited: make([]bool, g.Rows*g.Cols),
		res:     &Result{},
	}

	// 4. Walk
	var (
		found bool
		err   error
	)
	if dopts.Strategy == Recursive {
		found, err = w.recurse(start)
	} else {
		found, err = w.iterate(start)
	}
	if err != nil {
		return w.res, err
	}

	// 5. Publish path
	if found {
		w.res.Found = true
		w.res.Path = append([]maze.Coordinate(nil), w.stack...)
	}

	return w.res, nil
}

// enter tries to step onto c. It reports false when c is unsafe, already
// visited or beyond MaxDepth; otherwise c is marked visited and pushed.
func (w *dfsWalker) enter(c maze.Coordinate) (bool, error) {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return false, w.opts.Ctx.Err()
	default:
	}
	w.res.Steps++

	// 2. Safe and unvisited
	if !w.grid.IsSafe(c) {
		return false, nil
	}
	idx := w.grid.Index(c)
	if w.visited[idx] {
		return false, nil
	}

	// 3. Depth limit
	if w.opts.MaxDepth >= 0 && len(w.stack) > w.opts.MaxDepth {
		return false, nil
	}

	// 4. Mark and push
	w.visited[idx] = true
	w.res.Visited++
	w.stack = append(w.stack, c)

	// 5. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(c); err != nil {
			return false, fmt.Errorf("dfs: OnVisit hook for %v: %w", c, err)
		}
	}

	return true, nil
}

// pop backtracks the most recent cell.
func (w *dfsWalker) pop() {
	w.stack = w.stack[:len(w.stack)-1]
}

// recurse is the call-stack form of the search.
func (w *dfsWalker) recurse(c maze.Coordinate) (bool, error) {
	ok, err := w.enter(c)
	if err != nil || !ok {
		return false, err
	}
	if c == w.end {
		return true, nil
	}
	for _, n := range c.Neighbors() {
		found, err := w.recurse(n)
		if err != nil {
			return false, err
		}
		if found {
			return true, nil
		}
	}
	w.pop()

	return false, nil
}

// iterate is the explicit-stack form of the search. next[i] holds the
// index into maze.Directions of the next neighbor to try for stack[i].
func (w *dfsWalker) iterate(start maze.Coordinate) (bool, error) {
	ok, err := w.enter(start)
	if err != nil || !ok {
		return false, err
	}
	next := []int{0}

	for len(w.stack) > 0 {
		top := len(w.stack) - 1
		cur := w.stack[top]
		if cur == w.end {
			return true, nil
		}
		if next[top] == len(maze.Directions) {
			w.pop()
			next = next[:top]
			continue
		}
		n := cur.Step(maze.Directions[next[top]])
		next[top]++

		ok, err = w.enter(n)
		if err != nil {
			return false, err
		}
		if ok {
			next = append(next, 0)
		}
	}

	return false, nil
}
