package model

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"
)

const (
	aliveRune = '#'
	deadRune  = '.'

	commentPrefix = "!"
)

// ParseGrid reads a plain-text pattern, one row per line.
// '#', 'O' and '*' are alive, '.' and '-' are dead; rows may differ in length.
// Lines starting with '!' are comments. Trailing blank lines are dropped.
func ParseGrid(text string) (Grid, error) {
	var (
		grid    Grid
		scanner = bufio.NewScanner(strings.NewReader(text))
		line    = 0
	)

	for scanner.Scan() {
		line++
		raw := strings.TrimRight(scanner.Text(), "\r")
		if strings.HasPrefix(raw, commentPrefix) {
			continue
		}

		row := make([]CellState, 0, len(raw))
		for col, r := range []rune(raw) {
			switch r {
			case '#', 'O', '*':
				row = append(row, Alive)
			case '.', '-':
				row = append(row, Dead)
			default:
				return nil, errors.Errorf("[ParseGrid] unexpected %q at line %d, column %d", r, line, col+1)
			}
		}
		grid = append(grid, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[ParseGrid] failed to scan pattern")
	}

	for len(grid) > 0 && len(grid[len(grid)-1]) == 0 {
		grid = grid[:len(grid)-1]
	}
	if grid == nil {
		grid = Grid{}
	}
	return grid, nil
}

// MustParseGrid is like ParseGrid but panics on malformed input
func MustParseGrid(text string) Grid {
	g, err := ParseGrid(text)
	if err != nil {
		panic(err)
	}
	return g
}

// LoadPattern reads a plain-text pattern file
func LoadPattern(filename string) (Grid, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadPattern] failed to read file: %+v", filename)
	}

	g, err := ParseGrid(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadPattern] failed to parse file: %+v", filename)
	}
	return g, nil
}

// String formats the grid in the format read by ParseGrid
func (g Grid) String() string {
	var sb strings.Builder
	for _, row := range g {
		for _, cell := range row {
			if cell == Alive {
				sb.WriteRune(aliveRune)
			} else {
				sb.WriteRune(deadRune)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
