// 快照与持久化的端到端验证工具
// 流程：加载世界配置 -> 组装网格 -> 捕获快照 -> gdata 保存 -> 读回 -> 还原 -> 对比
package main

import (
	"log"
	"os"

	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/kilogrid/pkg/config"
	"github.com/decker502/kilogrid/pkg/sim"
)

const defaultWorldPath = "data/worlds/demo.yaml"

func main() {
	worldPath := defaultWorldPath
	if len(os.Args) > 1 {
		worldPath = os.Args[1]
	}

	log.Printf("=== 加载世界配置 %s ===", worldPath)
	cfg, err := config.LoadWorldConfig(worldPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	g, err := sim.BuildWorld(cfg)
	if err != nil {
		log.Fatalf("组装世界失败: %v", err)
	}
	log.Printf("世界: %v", g)

	log.Printf("\n=== 捕获快照 ===")
	snap := sim.Capture(g)
	log.Printf("快照: %dx%d, %d 个机器人", snap.Width, snap.Height, len(snap.Bots))

	log.Printf("\n=== gdata 保存/读回 ===")
	manager, err := gdata.Open(gdata.Config{AppName: "kilogrid_verify"})
	if err != nil {
		log.Fatalf("打开 gdata 存储失败: %v", err)
	}

	sm := sim.NewSaveManager(manager)
	if err := sm.SaveSnapshot("verify", snap); err != nil {
		log.Fatalf("保存快照失败: %v", err)
	}

	loaded, err := sm.LoadSnapshot("verify")
	if err != nil {
		log.Fatalf("读回快照失败: %v", err)
	}
	log.Printf("读回: %dx%d, %d 个机器人", loaded.Width, loaded.Height, len(loaded.Bots))

	log.Printf("\n=== 还原并对比 ===")
	restored, err := loaded.Restore()
	if err != nil {
		log.Fatalf("还原网格失败: %v", err)
	}

	if restored.String() != g.String() {
		log.Fatalf("还原结果不一致:\n原始: %v\n还原: %v", g, restored)
	}
	if restored.Render() != g.Render() {
		log.Fatalf("还原后的渲染输出不一致")
	}
	log.Printf("还原网格: %v (与原始一致)", restored)

	log.Printf("\n=== 验证通过 ===")
}
