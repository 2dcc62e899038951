// Package render turns a maze.Grid and a dfs.Result into text: a notice
// line followed by the grid, with path cells replaced by a marker.
package render

import (
	"strconv"
	"strings"

	"github.com/gookit/color"

	"github.com/katalvlaran/mazedfs/dfs"
	"github.com/katalvlaran/mazedfs/maze"
)

// Notice lines written before the grid.
const (
	FoundNotice   = "Path found:"
	NoPathNotice  = "No path found."
	DefaultMarker = maze.PathMark
)

// Option configures Render.
type Option func(*Options)

// Options holds rendering parameters.
type Options struct {
	// Marker replaces every path cell, start and end included.
	Marker rune
	// Highlight wraps path cells in ANSI red.
	Highlight bool
	// Stats appends the path length, visited-cell count and path
	// coordinates after the grid.
	Stats bool
}

// DefaultOptions returns Marker='*', no highlight and no stats.
func DefaultOptions() Options {
	return Options{Marker: DefaultMarker}
}

// WithMarker sets the path marker. A zero rune keeps the default.
func WithMarker(m rune) Option {
	return func(o *Options) {
		if m != 0 {
			o.Marker = m
		}
	}
}

// WithHighlight toggles ANSI coloring of path cells.
func WithHighlight(on bool) Option {
	return func(o *Options) {
		o.Highlight = on
	}
}

// WithStats toggles the trailing statistics lines.
func WithStats(on bool) Option {
	return func(o *Options) {
		o.Stats = on
	}
}

// Mark returns a copy of g with every cell of path set to marker.
// g is not modified.
func Mark(g *maze.Grid, path []maze.Coordinate, marker rune) *maze.Grid {
	out := g.Clone()
	for _, c := range path {
		out.Set(c, marker)
	}

	return out
}

// Render formats the outcome of a search. A nil or unsuccessful result
// renders the unmodified grid under NoPathNotice. Every row, the last
// included, ends with '\n'.
func Render(g *maze.Grid, res *dfs.Result, opts ...Option) string {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	found := res != nil && res.Found
	var sb strings.Builder
	sb.Grow((g.Rows + 1) * (g.Cols + 1))

	if !found {
		sb.WriteString(NoPathNotice)
		sb.WriteByte('\n')
		sb.WriteString(g.String())
		writeStats(&sb, o, res)

		return sb.String()
	}

	sb.WriteString(FoundNotice)
	sb.WriteByte('\n')
	if !o.Highlight {
		sb.WriteString(Mark(g, res.Path, o.Marker).String())
		writeStats(&sb, o, res)

		return sb.String()
	}

	onPath := make([]bool, g.Rows*g.Cols)
	for _, c := range res.Path {
		onPath[g.Index(c)] = true
	}
	marker := color.Red.Sprint(string(o.Marker))
	for r, row := range g.Cells {
		for c, v := range row {
			if onPath[r*g.Cols+c] {
				sb.WriteString(marker)
			} else {
				sb.WriteRune(v)
			}
		}
		sb.WriteByte('\n')
	}
	writeStats(&sb, o, res)

	return sb.String()
}

func writeStats(sb *strings.Builder, o Options, res *dfs.Result) {
	if !o.Stats {
		return
	}
	var pathLen, visited int
	if res != nil {
		pathLen, visited = len(res.Path), res.Visited
	}
	sb.WriteString("path length: " + strconv.Itoa(pathLen) + "\n")
	sb.WriteString("visited cells: " + strconv.Itoa(visited) + "\n")
	if pathLen == 0 {
		return
	}
	sb.WriteString("path:")
	for _, c := range res.Path {
		sb.WriteByte(' ')
		sb.WriteString(c.String())
	}
	sb.WriteByte('\n')
}
