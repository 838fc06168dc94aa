package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/kilogrid/pkg/config"
	"github.com/decker502/kilogrid/pkg/sim"
	"github.com/decker502/kilogrid/pkg/viewer"
)

// 默认世界配置文件
const defaultWorldPath = "data/worlds/demo.yaml"

func main() {
	worldPath := defaultWorldPath
	if len(os.Args) > 1 {
		worldPath = os.Args[1]
	}

	// 加载世界配置并组装网格
	cfg, err := config.LoadWorldConfig(worldPath)
	if err != nil {
		log.Fatalf("Failed to load world config: %v", err)
	}

	g, err := sim.BuildWorld(cfg)
	if err != nil {
		log.Fatalf("Failed to build world: %v", err)
	}

	log.Printf("[Main] World %q loaded: %v", cfg.Name, g)

	v := viewer.New(g, cfg.Name)
	w, h := v.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Kilogrid - " + cfg.Name)

	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
