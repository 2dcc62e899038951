package main

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazedfs/config"
	"github.com/katalvlaran/mazedfs/dfs"
	"github.com/katalvlaran/mazedfs/internal/ctxlog"
	"github.com/katalvlaran/mazedfs/maze"
	"github.com/katalvlaran/mazedfs/render"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// flagValues mirrors config.Config for command-line overrides.
type flagValues struct {
	configPath string
	marker     string
	strategy   string
	color      bool
	stats      bool
	logLevel   string
	logFormat  string
}

// newRootCmd builds the mazesolver command writing results to stdout and
// logs to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var fv flagValues

	cmd := &cobra.Command{
		Use:   "mazesolver [flags] MAZE_FILE",
		Short: "Find a path through a character-grid maze with depth-first search",
		Long: `mazesolver reads a maze file, one row per line:

  #  wall
  .  open floor (any other character is floor too)
  S  start
  E  end

It searches for a path from S to E trying neighbors in the order up, down,
left, right, and prints "Path found:" followed by the maze with every path
cell (S and E included) replaced by the marker, or "No path found." followed
by the unchanged maze. The path is a path, not necessarily the shortest.

Settings can also come from a YAML file (--config); flags win over the file.`,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, fv)
			if err != nil {
				return err
			}

			logger := newLogger(cfg.LogLevel, cfg.LogFormat, stderr).With("run", uuid.NewString())
			ctx := ctxlog.WithLogger(cmd.Context(), logger)

			return run(ctx, args[0], cfg, stdout)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVar(&fv.configPath, "config", "", "Path to a YAML configuration file")
	flags.StringVar(&fv.marker, "marker", "*", "Character written over path cells")
	flags.StringVar(&fv.strategy, "strategy", "iterative", "Search strategy: iterative or recursive")
	flags.BoolVar(&fv.color, "color", false, "Highlight path cells with ANSI color")
	flags.BoolVar(&fv.stats, "stats", false, "Print path length and visited-cell count")
	flags.StringVar(&fv.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	flags.StringVar(&fv.logFormat, "log-format", "text", "Log format: text or json")

	return cmd
}

// resolveConfig loads the config file and applies the flags the user set.
func resolveConfig(cmd *cobra.Command, fv flagValues) (*config.Config, error) {
	cfg, err := config.Load(fv.configPath)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("marker") {
		cfg.Marker = fv.marker
	}
	if changed("strategy") {
		cfg.Strategy = fv.strategy
	}
	if changed("color") {
		cfg.Color = fv.color
	}
	if changed("stats") {
		cfg.Stats = fv.stats
	}
	if changed("log-level") {
		cfg.LogLevel = fv.logLevel
	}
	if changed("log-format") {
		cfg.LogFormat = fv.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// run loads the maze, solves it and writes the rendering to w.
func run(ctx context.Context, path string, cfg *config.Config, w io.Writer) error {
	logger := ctxlog.FromContext(ctx)

	g, err := maze.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("maze loaded",
		"path", path, "rows", g.Rows, "cols", g.Cols,
		"start", g.Start.String(), "end", g.End.String())

	strategy, err := dfs.ParseStrategy(cfg.Strategy)
	if err != nil {
		return err
	}
	res, err := dfs.Solve(g, dfs.WithContext(ctx), dfs.WithStrategy(strategy))
	if err != nil {
		return fmt.Errorf("solve %q: %w", path, err)
	}
	logger.Info("search finished",
		"strategy", strategy.String(), "found", res.Found,
		"path_len", len(res.Path), "visited", res.Visited, "steps", res.Steps)

	_, err = io.WriteString(w, render.Render(g, res,
		render.WithMarker(cfg.MarkerRune()),
		render.WithHighlight(cfg.Color),
		render.WithStats(cfg.Stats),
	))

	return err
}
