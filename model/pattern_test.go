package model

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/pkg/errors"
)

func TestPatternCenter(t *testing.T) {
	tests := []struct {
		size Size
		want Cell
	}{
		{Size{W: 3, H: 3}, Cell{1, 1}},
		{Size{W: 1, H: 3}, Cell{0, 1}},
		{Size{W: 4, H: 2}, Cell{2, 1}},
		{Size{W: 0, H: 0}, Cell{0, 0}},
	}
	for _, tt := range tests {
		if got := (Pattern{Size: tt.size}).Center(); got != tt.want {
			t.Errorf("Center(%v) = %v, want %v", tt.size, got, tt.want)
		}
	}
}

func TestPatternSeed(t *testing.T) {
	p, err := PatternByName("glider")
	if err != nil {
		t.Fatal(err)
	}
	want := []Cell{{0, -1}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
	if got := p.Seed(); !slices.Equal(got, want) {
		t.Fatalf("Seed() = %v, want %v", got, want)
	}
}

func TestPatternByName(t *testing.T) {
	for _, name := range PatternNames() {
		p, err := PatternByName(name)
		if err != nil {
			t.Fatalf("PatternByName(%q): %v", name, err)
		}
		if p.Name != name || len(p.Cells) == 0 {
			t.Fatalf("PatternByName(%q) = %+v", name, p)
		}
		for _, c := range p.Cells {
			if c.X < 0 || c.Y < 0 || c.X >= p.Size.W || c.Y >= p.Size.H {
				t.Fatalf("%s: %v outside declared size %v", name, c, p.Size)
			}
		}
	}

	if _, err := PatternByName("GLIDER"); err != nil {
		t.Fatalf("names should be case-insensitive: %v", err)
	}

	_, err := PatternByName("spaceship-9000")
	if errors.Cause(err) != ErrUnknownPattern {
		t.Fatalf("unknown pattern error = %v", err)
	}
}

func TestPatternByNameReturnsCopy(t *testing.T) {
	p, _ := PatternByName("block")
	p.Cells[0] = Cell{99, 99}
	again, _ := PatternByName("block")
	if again.Cells[0] == (Cell{99, 99}) {
		t.Fatal("built-in pattern was modified through a returned copy")
	}
}

func TestLoadPatternJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tub.json")
	data := `{"size":{"w":3,"h":3},"cells":[{"x":1,"y":0},{"x":0,"y":1},{"x":2,"y":1},{"x":1,"y":2}]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadPattern(path)
	if err != nil {
		t.Fatalf("LoadPattern: %v", err)
	}
	if p.Name != "tub" || p.Size != (Size{W: 3, H: 3}) || len(p.Cells) != 4 {
		t.Fatalf("loaded %+v", p)
	}
}

func TestLoadPatternPlaintext(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "glider.cells")
	data := "!Name: Glider\n!A small spaceship\n.O.\n..O\nOOO\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadPattern(path)
	if err != nil {
		t.Fatalf("LoadPattern: %v", err)
	}
	glider, _ := PatternByName("glider")
	if p.Name != "Glider" || p.Size != glider.Size || !slices.Equal(p.Cells, glider.Cells) {
		t.Fatalf("loaded %+v, want cells %v", p, glider.Cells)
	}
}

func TestLoadPatternErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadPattern(filepath.Join(dir, "missing.json")); !os.IsNotExist(errors.Cause(err)) {
		t.Fatalf("missing file error = %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPattern(bad); err == nil {
		t.Fatal("malformed JSON accepted")
	}

	negative := filepath.Join(dir, "negative.json")
	if err := os.WriteFile(negative, []byte(`{"size":{"w":-1,"h":2}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPattern(negative); errors.Cause(err) != ErrInvalidConfiguration {
		t.Fatalf("negative size error = %v", err)
	}
}

func TestBundledPatternFiles(t *testing.T) {
	for _, tt := range []struct {
		file  string
		name  string
		cells int
		size  Size
	}{
		{"../patterns/diehard.cells", "Diehard", 7, Size{W: 8, H: 3}},
		{"../patterns/lwss.json", "lwss", 9, Size{W: 5, H: 4}},
	} {
		p, err := LoadPattern(tt.file)
		if err != nil {
			t.Fatalf("LoadPattern(%s): %v", tt.file, err)
		}
		if p.Name != tt.name || len(p.Cells) != tt.cells || p.Size != tt.size {
			t.Fatalf("%s loaded as %+v", tt.file, p)
		}
	}
}
