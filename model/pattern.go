package model

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Pattern is a seed configuration: cells relative to the top-left corner of a
// bounding box of the declared size
type Pattern struct {
	Name  string `json:"name"`
	Size  Size   `json:"size"`
	Cells []Cell `json:"cells"`
}

// Center returns the offset subtracted from every cell when seeding
func (p Pattern) Center() Cell {
	return Cell{X: p.Size.W / 2, Y: p.Size.H / 2}
}

// Seed returns the pattern's cells shifted so the center lands on the origin
func (p Pattern) Seed() []Cell {
	center := p.Center()
	out := make([]Cell, len(p.Cells))
	for i, c := range p.Cells {
		out[i] = c.Sub(center)
	}
	return out
}

var builtinPatterns = map[string]Pattern{
	"glider": {
		Name:  "glider",
		Size:  Size{W: 3, H: 3},
		Cells: []Cell{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	},
	"blinker": {
		Name:  "blinker",
		Size:  Size{W: 1, H: 3},
		Cells: []Cell{{0, 0}, {0, 1}, {0, 2}},
	},
	"block": {
		Name:  "block",
		Size:  Size{W: 2, H: 2},
		Cells: []Cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	"r-pentomino": {
		Name:  "r-pentomino",
		Size:  Size{W: 3, H: 3},
		Cells: []Cell{{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	"acorn": {
		Name:  "acorn",
		Size:  Size{W: 7, H: 3},
		Cells: []Cell{{1, 0}, {3, 1}, {0, 2}, {1, 2}, {4, 2}, {5, 2}, {6, 2}},
	},
}

// PatternNames lists the built-in patterns in alphabetical order
func PatternNames() []string {
	names := make([]string, 0, len(builtinPatterns))
	for name := range builtinPatterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PatternByName returns a copy of a built-in pattern
func PatternByName(name string) (Pattern, error) {
	p, ok := builtinPatterns[strings.ToLower(name)]
	if !ok {
		return Pattern{}, errors.Wrapf(ErrUnknownPattern, "[PatternByName] %q (known: %s)",
			name, strings.Join(PatternNames(), ", "))
	}
	p.Cells = slices.Clone(p.Cells)
	return p, nil
}

/*
LoadPattern reads a pattern file.

Files ending in .json hold a Pattern object. Anything else is read as plaintext:
lines starting with '!' are comments, 'O' or '*' marks a live cell and any other
character a dead one. The size of a plaintext pattern is the width of its longest
row by its number of rows.
*/
func LoadPattern(filename string) (Pattern, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Pattern{}, errors.Wrapf(err, "[LoadPattern] failed to read file: %+v", filename)
	}

	if strings.EqualFold(filepath.Ext(filename), ".json") {
		var p Pattern
		if err = json.Unmarshal(data, &p); err != nil {
			return Pattern{}, errors.Wrapf(err, "[LoadPattern] failed to unmarshal data from file: %+v", filename)
		}
		if p.Size.W < 0 || p.Size.H < 0 {
			return Pattern{}, errors.Wrapf(ErrInvalidConfiguration, "[LoadPattern] negative size %dx%d in %+v",
				p.Size.W, p.Size.H, filename)
		}
		if p.Name == "" {
			p.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
		}
		return p, nil
	}

	p, err := ParsePlaintext(data)
	if err != nil {
		return Pattern{}, errors.Wrapf(err, "[LoadPattern] failed to parse file: %+v", filename)
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return p, nil
}

// ParsePlaintext parses the plaintext pattern format. A "!Name:" comment sets
// the pattern name.
func ParsePlaintext(data []byte) (Pattern, error) {
	var (
		p       Pattern
		y       int
		scanner = bufio.NewScanner(bytes.NewReader(data))
	)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if strings.HasPrefix(line, "!") {
			if name, ok := strings.CutPrefix(line, "!Name:"); ok {
				p.Name = strings.TrimSpace(name)
			}
			continue
		}
		for x, r := range []rune(line) {
			if r == 'O' || r == '*' {
				p.Cells = append(p.Cells, Cell{X: x, Y: y})
			}
		}
		p.Size.W = max(p.Size.W, len([]rune(line)))
		y++
	}
	if err := scanner.Err(); err != nil {
		return Pattern{}, errors.Wrap(err, "[ParsePlaintext] failed to scan pattern")
	}
	p.Size.H = y
	return p, nil
}
