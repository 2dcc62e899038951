package maze

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineBytes bounds a single maze row read by Parse.
const maxLineBytes = 1 << 20

// Parse reads a maze from r, one row per line. A trailing '\r' on each
// line is dropped, and blank lines at the end of input are ignored.
// Read errors are returned wrapped; validation errors come from NewGrid.
func Parse(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maze: read: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return NewGrid(lines)
}

// Load opens the file at path and parses it with Parse.
// Open errors keep their fs error, so errors.Is(err, fs.ErrNotExist) works.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("maze: open %q: %w", path, err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("maze: load %q: %w", path, err)
	}

	return g, nil
}
