package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/decker502/kilogrid/pkg/grid"
)

// WorldConfig 世界配置数据结构
// 定义网格尺寸和初始机器人摆放
type WorldConfig struct {
	ID          string         `yaml:"id"`          // 世界ID，如 "demo"
	Name        string         `yaml:"name"`        // 世界名称
	Description string         `yaml:"description"` // 世界描述（可选）
	Width       int            `yaml:"width"`       // 网格宽度（列数），0 合法（空网格）
	Height      int            `yaml:"height"`      // 网格高度（行数），0 合法（空网格）
	Bots        []BotPlacement `yaml:"bots"`        // 初始机器人摆放列表
}

// BotPlacement 单个机器人的初始摆放配置
type BotPlacement struct {
	UID    uint32 `yaml:"uid"`    // 机器人唯一标识，必填且非 0
	Name   string `yaml:"name"`   // 机器人名称，默认 "bot-<uid>"
	X      int    `yaml:"x"`      // 列坐标（0 起）
	Y      int    `yaml:"y"`      // 行坐标（0 起）
	Facing string `yaml:"facing"` // 朝向：命名方向（north/east/south/west）或十进制角度，默认 "north"
}

// LoadWorldConfig 从YAML文件加载世界配置
// 参数：
//
//	path - 世界配置文件的路径（相对或绝对路径）
//
// 返回：
//
//	*WorldConfig - 解析后的世界配置对象
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadWorldConfig(path string) (*WorldConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read world config file %s: %w", path, err)
	}

	var cfg WorldConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse world config YAML from %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validateWorldConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid world config in %s: %w", path, err)
	}

	return &cfg, nil
}

// applyDefaults 为缺失的可选字段设置默认值
func applyDefaults(cfg *WorldConfig) {
	for i := range cfg.Bots {
		if cfg.Bots[i].Facing == "" {
			cfg.Bots[i].Facing = "north"
		}
		if cfg.Bots[i].Name == "" {
			cfg.Bots[i].Name = fmt.Sprintf("bot-%d", cfg.Bots[i].UID)
		}
	}
}

// validateWorldConfig 校验必填字段和取值范围
// 摆放坐标是否落在网格内不在这里检查，统一由网格的 Place 判定
func validateWorldConfig(cfg *WorldConfig) error {
	if cfg.ID == "" {
		return fmt.Errorf("world config missing required field: id")
	}
	if cfg.Width < 0 || cfg.Height < 0 {
		return fmt.Errorf("world size must be non-negative, got %dx%d", cfg.Width, cfg.Height)
	}

	seen := make(map[uint32]bool, len(cfg.Bots))
	for i, p := range cfg.Bots {
		if p.UID == 0 {
			return fmt.Errorf("bot placement %d: uid must be non-zero", i)
		}
		if seen[p.UID] {
			return fmt.Errorf("duplicate bot uid %d", p.UID)
		}
		seen[p.UID] = true

		if _, err := ParseFacing(p.Facing); err != nil {
			return fmt.Errorf("bot %d: %w", p.UID, err)
		}
	}
	return nil
}

// ParseFacing 把配置中的朝向字符串解析为角度
// 接受四个命名方向或 [0,360) 内的十进制角度；
// 配置层在此做严格范围校验，网格核心本身不限制角度取值
func ParseFacing(s string) (int, error) {
	switch s {
	case "north":
		return grid.North, nil
	case "east":
		return grid.East, nil
	case "south":
		return grid.South, nil
	case "west":
		return grid.West, nil
	}

	deg, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid facing %q: expected north/east/south/west or degrees", s)
	}
	if deg < 0 || deg >= 360 {
		return 0, fmt.Errorf("invalid facing %d: degrees must be in [0, 360)", deg)
	}
	return deg, nil
}

// FacingName 返回角度对应的命名方向，非基准方向返回十进制字符串
func FacingName(deg int) string {
	switch deg {
	case grid.North:
		return "north"
	case grid.East:
		return "east"
	case grid.South:
		return "south"
	case grid.West:
		return "west"
	}
	return strconv.Itoa(deg)
}
