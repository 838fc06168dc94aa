package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/decker502/kilogrid/pkg/grid"
)

// writeTestConfig 把 YAML 内容写入临时文件并返回路径
func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "world.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	return path
}

// TestLoadWorldConfig 测试世界配置文件加载
func TestLoadWorldConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		validYAML := `id: "demo"
name: "Test World"
width: 4
height: 3
bots:
  - uid: 1
    name: "alpha"
    x: 0
    y: 0
    facing: north
  - uid: 2
    x: 3
    y: 2
    facing: "135"
`
		cfg, err := LoadWorldConfig(writeTestConfig(t, validYAML))
		if err != nil {
			t.Fatalf("LoadWorldConfig() failed: %v", err)
		}

		if cfg.ID != "demo" {
			t.Errorf("Expected ID 'demo', got %q", cfg.ID)
		}
		if cfg.Width != 4 || cfg.Height != 3 {
			t.Errorf("Expected 4x3, got %dx%d", cfg.Width, cfg.Height)
		}
		if len(cfg.Bots) != 2 {
			t.Fatalf("Expected 2 bots, got %d", len(cfg.Bots))
		}
		if cfg.Bots[0].Facing != "north" || cfg.Bots[0].Name != "alpha" {
			t.Errorf("Bot 0 fields wrong: %+v", cfg.Bots[0])
		}
		if cfg.Bots[1].Facing != "135" {
			t.Errorf("Bot 1: expected facing '135', got %q", cfg.Bots[1].Facing)
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		yaml := `id: "defaults"
width: 2
height: 2
bots:
  - uid: 7
    x: 0
    y: 0
`
		cfg, err := LoadWorldConfig(writeTestConfig(t, yaml))
		if err != nil {
			t.Fatalf("LoadWorldConfig() failed: %v", err)
		}
		if cfg.Bots[0].Facing != "north" {
			t.Errorf("Expected default facing 'north', got %q", cfg.Bots[0].Facing)
		}
		if cfg.Bots[0].Name != "bot-7" {
			t.Errorf("Expected default name 'bot-7', got %q", cfg.Bots[0].Name)
		}
	})

	t.Run("zero sized world is legal", func(t *testing.T) {
		cfg, err := LoadWorldConfig(writeTestConfig(t, "id: \"empty\"\nwidth: 0\nheight: 0\n"))
		if err != nil {
			t.Fatalf("LoadWorldConfig() failed: %v", err)
		}
		if cfg.Width != 0 || cfg.Height != 0 {
			t.Errorf("Expected 0x0, got %dx%d", cfg.Width, cfg.Height)
		}
	})

	t.Run("file not found", func(t *testing.T) {
		if _, err := LoadWorldConfig("nonexistent-world.yaml"); err == nil {
			t.Error("Expected error for nonexistent file, got nil")
		}
	})

	t.Run("invalid YAML", func(t *testing.T) {
		if _, err := LoadWorldConfig(writeTestConfig(t, "id: [unclosed")); err == nil {
			t.Error("Expected error for invalid YAML, got nil")
		}
	})

	t.Run("missing id", func(t *testing.T) {
		if _, err := LoadWorldConfig(writeTestConfig(t, "width: 2\nheight: 2\n")); err == nil {
			t.Error("Expected error for missing id, got nil")
		}
	})

	t.Run("negative size", func(t *testing.T) {
		if _, err := LoadWorldConfig(writeTestConfig(t, "id: \"bad\"\nwidth: -1\nheight: 2\n")); err == nil {
			t.Error("Expected error for negative width, got nil")
		}
	})

	t.Run("zero uid", func(t *testing.T) {
		yaml := "id: \"bad\"\nwidth: 2\nheight: 2\nbots:\n  - uid: 0\n    x: 0\n    y: 0\n"
		if _, err := LoadWorldConfig(writeTestConfig(t, yaml)); err == nil {
			t.Error("Expected error for zero uid, got nil")
		}
	})

	t.Run("duplicate uid", func(t *testing.T) {
		yaml := `id: "bad"
width: 2
height: 2
bots:
  - uid: 1
    x: 0
    y: 0
  - uid: 1
    x: 1
    y: 1
`
		if _, err := LoadWorldConfig(writeTestConfig(t, yaml)); err == nil {
			t.Error("Expected error for duplicate uid, got nil")
		}
	})

	t.Run("bad facing", func(t *testing.T) {
		yaml := "id: \"bad\"\nwidth: 2\nheight: 2\nbots:\n  - uid: 1\n    x: 0\n    y: 0\n    facing: upward\n"
		if _, err := LoadWorldConfig(writeTestConfig(t, yaml)); err == nil {
			t.Error("Expected error for unparseable facing, got nil")
		}
	})
}

// TestParseFacing 测试朝向解析
func TestParseFacing(t *testing.T) {
	cases := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"north", grid.North, false},
		{"east", grid.East, false},
		{"south", grid.South, false},
		{"west", grid.West, false},
		{"0", 0, false},
		{"135", 135, false},
		{"359", 359, false},
		{"360", 0, true},
		{"-90", 0, true},
		{"sideways", 0, true},
		{"", 0, true},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			got, err := ParseFacing(c.input)
			if c.wantErr {
				if err == nil {
					t.Errorf("ParseFacing(%q): expected error, got %d", c.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFacing(%q) failed: %v", c.input, err)
			}
			if got != c.want {
				t.Errorf("ParseFacing(%q) = %d, expected %d", c.input, got, c.want)
			}
		})
	}
}

// TestFacingName 测试朝向的命名回显
func TestFacingName(t *testing.T) {
	if got := FacingName(grid.South); got != "south" {
		t.Errorf("Expected 'south', got %q", got)
	}
	if got := FacingName(135); got != "135" {
		t.Errorf("Expected '135', got %q", got)
	}
}
