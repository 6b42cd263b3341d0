package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/zonelife/model"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	c := DefaultConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if c.UpdateInterval != 50*time.Millisecond || c.ReverseInterval != 5 {
		t.Fatalf("defaults = %+v", c)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero reverse interval", func(c *Config) { c.ReverseInterval = 0 }},
		{"negative reverse interval", func(c *Config) { c.ReverseInterval = -3 }},
		{"zero update interval", func(c *Config) { c.UpdateInterval = 0 }},
		{"negative viewport", func(c *Config) { c.Viewport = model.Size{W: -1, H: 4} }},
		{"negative generations", func(c *Config) { c.MaxGenerations = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(&c)
			err := c.Validate()
			if errors.Cause(err) != ErrInvalidConfiguration {
				t.Fatalf("Validate() = %v, want ErrInvalidConfiguration", err)
			}
		})
	}
}

func TestLoadConfigLayersOverDefaults(t *testing.T) {
	path := writeFile(t, "config.json", `{
		"grid_size": {"w": 10, "h": 20},
		"reverse_interval": 3,
		"pattern": "glider"
	}`)

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.GridSize != (model.Size{W: 10, H: 20}) || c.ReverseInterval != 3 || c.Pattern != "glider" {
		t.Fatalf("loaded %+v", c)
	}
	if c.UpdateInterval != DefaultConfig().UpdateInterval {
		t.Fatalf("update interval = %s, want default", c.UpdateInterval)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if !os.IsNotExist(errors.Cause(err)) {
		t.Fatalf("missing file error = %v", err)
	}

	if _, err = LoadConfig(writeFile(t, "bad.json", "{")); err == nil {
		t.Fatal("malformed JSON accepted")
	}

	_, err = LoadConfig(writeFile(t, "zero.json", `{"reverse_interval": 0}`))
	if errors.Cause(err) != ErrInvalidConfiguration {
		t.Fatalf("zero reverse interval error = %v", err)
	}
}

func TestConfigLoadPattern(t *testing.T) {
	c := DefaultConfig()
	c.Pattern = "acorn"
	p, err := c.LoadPattern()
	if err != nil || p.Name != "acorn" {
		t.Fatalf("LoadPattern() = %+v, %v", p, err)
	}

	c.PatternFile = writeFile(t, "dot.cells", "O\n")
	p, err = c.LoadPattern()
	if err != nil || p.Name != "dot" || len(p.Cells) != 1 {
		t.Fatalf("pattern file should win: %+v, %v", p, err)
	}

	c.PatternFile = ""
	c.Pattern = "nonexistent"
	if _, err = c.LoadPattern(); errors.Cause(err) != model.ErrUnknownPattern {
		t.Fatalf("unknown pattern error = %v", err)
	}
}
