package sim

import (
	"errors"
	"fmt"

	"github.com/decker502/kilogrid/pkg/bot"
	"github.com/decker502/kilogrid/pkg/grid"
)

// snapshotVersion 快照格式版本号，格式变更时递增
const snapshotVersion = 1

// Snapshot 网格占用状态的可序列化快照
// 只记录重建世界所需的最小状态：网格尺寸和每个机器人的位置与朝向
type Snapshot struct {
	Version int        `yaml:"version"` // 快照格式版本
	Width   int        `yaml:"width"`   // 网格宽度
	Height  int        `yaml:"height"`  // 网格高度
	Bots    []BotState `yaml:"bots"`    // 所有在格机器人的状态
}

// BotState 单个机器人在快照中的状态
type BotState struct {
	UID    uint32 `yaml:"uid"`    // 机器人唯一标识
	Name   string `yaml:"name"`   // 机器人名称
	X      int    `yaml:"x"`      // 列坐标
	Y      int    `yaml:"y"`      // 行坐标
	Facing int    `yaml:"facing"` // 朝向角度，按网格中存储的原值记录
}

// Capture 扫描网格，生成当前占用状态的快照
// 网格本身不变；扫描顺序为行优先，快照中的机器人顺序因此是确定的
func Capture(g *grid.Grid) *Snapshot {
	snap := &Snapshot{
		Version: snapshotVersion,
		Width:   g.Width(),
		Height:  g.Height(),
		Bots:    make([]BotState, 0, g.Occupied()),
	}

	width := g.Width()
	for index := 0; index < g.Cells(); index++ {
		loc, err := g.LocationAtIndex(index)
		if err != nil {
			// 空格子，跳过
			continue
		}

		state := BotState{
			UID:    loc.Agent().UID(),
			X:      index % width,
			Y:      index / width,
			Facing: loc.Facing(),
		}
		// 名称只有具体的 bot 类型才有，其他 Agent 实现留空
		if kb, ok := loc.Agent().(*bot.Bot); ok {
			state.Name = kb.Name()
		}
		snap.Bots = append(snap.Bots, state)
	}

	return snap
}

// Restore 从快照重建网格
//
// 重建走公开的 Place 接口，越界和单格占用不变量会被重新校验；
// 损坏的快照（坐标越界、位置冲突）因此无法还原成非法状态
func (s *Snapshot) Restore() (*grid.Grid, error) {
	if s.Version != snapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d (expected %d)", s.Version, snapshotVersion)
	}

	g := grid.New(s.Width, s.Height)
	for _, state := range s.Bots {
		b := bot.New(state.UID, state.Name)
		if err := g.Place(b, state.X, state.Y, state.Facing); err != nil {
			if errors.Is(err, grid.ErrAlreadyOccupied) {
				return nil, fmt.Errorf("corrupt snapshot: duplicate position (%d, %d): %w", state.X, state.Y, err)
			}
			return nil, fmt.Errorf("corrupt snapshot: bot %d: %w", state.UID, err)
		}
	}

	return g, nil
}
