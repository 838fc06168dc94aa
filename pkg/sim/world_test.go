package sim

import (
	"errors"
	"testing"

	"github.com/decker502/kilogrid/pkg/config"
	"github.com/decker502/kilogrid/pkg/grid"
)

// TestBuildWorld 测试按配置组装世界
func TestBuildWorld(t *testing.T) {
	t.Run("places all configured bots", func(t *testing.T) {
		cfg := &config.WorldConfig{
			ID:     "test",
			Width:  4,
			Height: 3,
			Bots: []config.BotPlacement{
				{UID: 1, Name: "alpha", X: 0, Y: 0, Facing: "north"},
				{UID: 2, Name: "bravo", X: 3, Y: 2, Facing: "south"},
			},
		}

		g, err := BuildWorld(cfg)
		if err != nil {
			t.Fatalf("BuildWorld() failed: %v", err)
		}

		if g.Occupied() != 2 {
			t.Errorf("Expected 2 occupied cells, got %d", g.Occupied())
		}

		loc, err := g.LocationAt(3, 2)
		if err != nil {
			t.Fatalf("LocationAt(3,2) failed: %v", err)
		}
		if loc.Agent().UID() != 2 {
			t.Errorf("Expected uid 2 at (3,2), got %d", loc.Agent().UID())
		}
		if loc.Facing() != grid.South {
			t.Errorf("Expected facing %d, got %d", grid.South, loc.Facing())
		}
	})

	t.Run("conflicting placement aborts", func(t *testing.T) {
		cfg := &config.WorldConfig{
			ID:     "conflict",
			Width:  2,
			Height: 2,
			Bots: []config.BotPlacement{
				{UID: 1, X: 0, Y: 0, Facing: "north"},
				{UID: 2, X: 0, Y: 0, Facing: "east"},
			},
		}

		g, err := BuildWorld(cfg)
		if !errors.Is(err, grid.ErrAlreadyOccupied) {
			t.Errorf("Expected ErrAlreadyOccupied, got %v", err)
		}
		if g != nil {
			t.Error("Failed build must not return a partial grid")
		}
	})

	t.Run("out of bounds placement aborts", func(t *testing.T) {
		cfg := &config.WorldConfig{
			ID:     "oob",
			Width:  2,
			Height: 2,
			Bots: []config.BotPlacement{
				{UID: 1, X: 5, Y: 0, Facing: "north"},
			},
		}

		if _, err := BuildWorld(cfg); !errors.Is(err, grid.ErrOutOfBounds) {
			t.Errorf("Expected ErrOutOfBounds, got %v", err)
		}
	})

	t.Run("empty world", func(t *testing.T) {
		g, err := BuildWorld(&config.WorldConfig{ID: "empty", Width: 0, Height: 0})
		if err != nil {
			t.Fatalf("BuildWorld() failed: %v", err)
		}
		if g.Cells() != 0 || g.Occupied() != 0 {
			t.Errorf("Expected empty grid, got %v", g)
		}
	})
}
