// Package dfs defines types and options for depth-first path search on a
// maze.Grid, including cancellation, a pre-order hook, depth limiting,
// endpoint overrides and the choice between iterative and recursive walking.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/mazedfs/maze"
)

var (
	// ErrGridNil is returned when a nil *maze.Grid is passed to Solve.
	ErrGridNil = errors.New("dfs: grid is nil")

	// ErrStartOutOfBounds indicates an overridden start lies outside the grid.
	ErrStartOutOfBounds = errors.New("dfs: start coordinate out of bounds")

	// ErrEndOutOfBounds indicates an overridden end lies outside the grid.
	ErrEndOutOfBounds = errors.New("dfs: end coordinate out of bounds")

	// ErrUnknownStrategy is returned by ParseStrategy for unrecognized names.
	ErrUnknownStrategy = errors.New("dfs: unknown strategy")
)

// Strategy selects how the search walks the grid. Both strategies visit
// cells in the same order and return the same Result.
type Strategy int

const (
	// Iterative keeps an explicit frame stack; depth is bounded only by memory.
	Iterative Strategy = iota
	// Recursive uses the Go call stack, one frame per path cell.
	Recursive
)

// String returns "iterative" or "recursive".
func (s Strategy) String() string {
	switch s {
	case Iterative:
		return "iterative"
	case Recursive:
		return "recursive"
	default:
		return "unknown"
	}
}

// ParseStrategy maps "iterative" or "recursive" to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "iterative", "":
		return Iterative, nil
	case "recursive":
		return Recursive, nil
	}

	return Iterative, fmt.Errorf("%w %q", ErrUnknownStrategy, s)
}

// Option configures optional behavior of Solve.
type Option func(*Options)

// Options holds configurable parameters for a search.
type Options struct {
	// Ctx allows cancellation; checked on every visit attempt.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a cell is marked visited and
	// pushed onto the path. Returning an error aborts the search.
	OnVisit func(c maze.Coordinate) error

	// Strategy selects iterative or recursive walking. Default Iterative.
	Strategy Strategy

	// MaxDepth, if non-negative, refuses to push a cell when the path
	// already holds more than MaxDepth cells, so paths hold at most
	// MaxDepth+1 cells. Because visited marks are never cleared, a limited
	// search may miss a path that exists within the limit. Default -1.
	MaxDepth int

	// Start and End override the grid's markers when HasEndpoints is set.
	Start, End   maze.Coordinate
	HasEndpoints bool
}

// DefaultOptions returns Options with a background context, no hook,
// the iterative strategy, no depth limit and the grid's own endpoints.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Strategy: Iterative,
		MaxDepth: -1,
	}
}

// WithContext sets the context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(c maze.Coordinate) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithStrategy selects the walking strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithMaxDepth limits the path length to limit+1 cells.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithEndpoints searches from start to end instead of the grid's S and E.
func WithEndpoints(start, end maze.Coordinate) Option {
	return func(o *Options) {
		o.Start, o.End, o.HasEndpoints = start, end, true
	}
}

// Result captures the outcome of a search.
type Result struct {
	// Found reports whether End was reached.
	Found bool

	// Path holds the cells from start to end inclusive when Found, else nil.
	Path []maze.Coordinate

	// Visited counts cells marked visited.
	Visited int

	// Steps counts visit attempts, including rejected ones (walls,
	// out-of-bounds and already visited cells).
	Steps int
}
