// 网格核心 API 的端到端验证工具
// 在一个 4x3 网格上走完放置/查询/移除/渲染的完整流程并打印结果
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/kilogrid/pkg/bot"
	"github.com/decker502/kilogrid/pkg/grid"
)

func main() {
	log.Printf("=== 创建 4x3 网格 ===")
	g := grid.New(4, 3)
	log.Printf("网格: %v, 格子总数: %d", g, g.Cells())

	// 索引映射
	log.Printf("\n=== 坐标到索引映射 ===")
	index, err := g.Index(3, 2)
	if err != nil {
		log.Fatalf("Index(3,2) 失败: %v", err)
	}
	log.Printf("Index(3,2) = %d (最后一个有效索引)", index)

	for _, c := range [][2]int{{4, 0}, {0, 3}} {
		if _, err := g.Index(c[0], c[1]); !errors.Is(err, grid.ErrOutOfBounds) {
			log.Fatalf("Index(%d,%d) 应返回 ErrOutOfBounds, 实际: %v", c[0], c[1], err)
		}
		log.Printf("Index(%d,%d) -> %v", c[0], c[1], grid.ErrOutOfBounds)
	}

	// 放置
	log.Printf("\n=== 放置机器人 ===")
	if err := g.Place(bot.New(1, "alpha"), 0, 0, grid.North); err != nil {
		log.Fatalf("放置 alpha 失败: %v", err)
	}
	if err := g.Place(bot.New(2, "bravo"), 3, 2, grid.South); err != nil {
		log.Fatalf("放置 bravo 失败: %v", err)
	}
	log.Printf("网格: %v", g)

	// 重复放置应失败且不影响既有占用者
	if err := g.Place(bot.New(3, "intruder"), 0, 0, grid.East); !errors.Is(err, grid.ErrAlreadyOccupied) {
		log.Fatalf("重复放置应返回 ErrAlreadyOccupied, 实际: %v", err)
	}
	a, err := g.AgentAt(0, 0)
	if err != nil || a.UID() != 1 {
		log.Fatalf("重复放置后 (0,0) 应仍是 alpha, 实际: %v, %v", a, err)
	}
	log.Printf("重复放置被拒绝，原占用者不受影响")

	// 原地修改朝向
	log.Printf("\n=== 原地修改朝向 ===")
	loc, err := g.LocationAt(0, 0)
	if err != nil {
		log.Fatalf("LocationAt(0,0) 失败: %v", err)
	}
	loc.SetFacing(grid.West)
	log.Printf("alpha 朝向改为 %d: %v", grid.West, loc)

	// 渲染
	log.Printf("\n=== 渲染 ===")
	fmt.Print(g.Render())

	// 移除
	log.Printf("=== 移除 ===")
	removed, err := g.RemoveAt(3, 2)
	if err != nil {
		log.Fatalf("移除 bravo 失败: %v", err)
	}
	log.Printf("移除得到 %v", removed)

	if _, err := g.RemoveAt(3, 2); !errors.Is(err, grid.ErrNotOccupied) {
		log.Fatalf("移除空格子应返回 ErrNotOccupied, 实际: %v", err)
	}
	log.Printf("再次移除 -> %v", grid.ErrNotOccupied)
	log.Printf("网格: %v", g)

	// 零尺寸网格
	log.Printf("\n=== 零尺寸网格 ===")
	empty := grid.New(0, 5)
	if _, err := empty.Index(0, 0); !errors.Is(err, grid.ErrOutOfBounds) {
		log.Fatalf("零尺寸网格的任何坐标都应越界, 实际: %v", err)
	}
	log.Printf("零尺寸网格: %v, 所有坐标均越界", empty)

	log.Printf("\n=== 验证通过 ===")
}
