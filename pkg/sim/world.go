package sim

import (
	"fmt"

	"github.com/decker502/kilogrid/pkg/bot"
	"github.com/decker502/kilogrid/pkg/config"
	"github.com/decker502/kilogrid/pkg/grid"
)

// BuildWorld 根据世界配置组装一个已摆放好机器人的网格
//
// 逐条执行配置里的摆放；任何一条失败（越界、格子冲突）都会中止并返回
// 包含出错摆放信息的错误，不返回部分构建的网格
func BuildWorld(cfg *config.WorldConfig) (*grid.Grid, error) {
	g := grid.New(cfg.Width, cfg.Height)

	for _, p := range cfg.Bots {
		facing, err := config.ParseFacing(p.Facing)
		if err != nil {
			return nil, fmt.Errorf("bot %d: %w", p.UID, err)
		}

		b := bot.New(p.UID, p.Name)
		if err := g.Place(b, p.X, p.Y, facing); err != nil {
			return nil, fmt.Errorf("failed to place bot %d at (%d, %d): %w", p.UID, p.X, p.Y, err)
		}
	}

	return g, nil
}
