package render_test

import (
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazedfs/dfs"
	"github.com/katalvlaran/mazedfs/maze"
	"github.com/katalvlaran/mazedfs/render"
)

func solve(t *testing.T, rows ...string) (*maze.Grid, *dfs.Result) {
	t.Helper()
	g, err := maze.NewGrid(rows)
	require.NoError(t, err)
	res, err := dfs.Solve(g)
	require.NoError(t, err)

	return g, res
}

// TestRender_Found marks the whole path, S and E included.
func TestRender_Found(t *testing.T) {
	g, res := solve(t, "S.#", ".#.", "..E")
	got := render.Render(g, res)
	assert.Equal(t, "Path found:\n*.#\n*#.\n***\n", got)
}

func TestRender_NoPath(t *testing.T) {
	g, res := solve(t, "S#E")
	assert.Equal(t, "No path found.\nS#E\n", render.Render(g, res))
}

// TestRender_NoPathRoundTrip: without a path the grid text is reproduced
// exactly under the notice line.
func TestRender_NoPathRoundTrip(t *testing.T) {
	rows := []string{"S.#..", "..#.E", "###.."}
	g, res := solve(t, rows...)
	require.False(t, res.Found)

	got := render.Render(g, res)
	notice, rest, ok := strings.Cut(got, "\n")
	require.True(t, ok)
	assert.Equal(t, render.NoPathNotice, notice)
	assert.Equal(t, strings.Join(rows, "\n")+"\n", rest)
}

func TestRender_NilResult(t *testing.T) {
	g, _ := solve(t, "S.E")
	assert.Equal(t, "No path found.\nS.E\n", render.Render(g, nil))
}

func TestRender_DoesNotMutateGrid(t *testing.T) {
	g, res := solve(t, "S.E")
	before := g.String()
	_ = render.Render(g, res)
	_ = render.Mark(g, res.Path, 'o')
	assert.Equal(t, before, g.String())
}

func TestRender_Marker(t *testing.T) {
	g, res := solve(t, "S..", "#.E")
	assert.Equal(t, "Path found:\noo.\n#oo\n", render.Render(g, res, render.WithMarker('o')))
	assert.Equal(t, "Path found:\n**.\n#**\n", render.Render(g, res, render.WithMarker(0)))
}

func TestRender_Stats(t *testing.T) {
	g, res := solve(t, "S.#", ".#.", "..E")
	got := render.Render(g, res, render.WithStats(true))
	assert.True(t, strings.HasSuffix(got, "path length: 5\nvisited cells: 5\npath: (0,0) (1,0) (2,0) (2,1) (2,2)\n"), got)

	g, res = solve(t, "S#E")
	got = render.Render(g, res, render.WithStats(true))
	assert.Equal(t, "No path found.\nS#E\npath length: 0\nvisited cells: 1\n", got)
}

// TestRender_MultiByte: a two-byte floor character is one cell, so the
// marked row keeps its character width.
func TestRender_MultiByte(t *testing.T) {
	g, res := solve(t, "Sé.E")
	require.Equal(t, 4, g.Cols)
	assert.Equal(t, "Path found:\n****\n", render.Render(g, res))

	g, res = solve(t, "S#é", "..E")
	assert.Equal(t, "Path found:\n→#é\n→→→\n", render.Render(g, res, render.WithMarker('→')))
}

func TestRender_Highlight(t *testing.T) {
	prev := color.Enable
	color.Enable = true
	t.Cleanup(func() { color.Enable = prev })

	g, res := solve(t, "S.E", "###")
	red := color.Red.Sprint("*")
	got := render.Render(g, res, render.WithHighlight(true))
	assert.Equal(t, "Path found:\n"+red+red+red+"\n###\n", got)
}
