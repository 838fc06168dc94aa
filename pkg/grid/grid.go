package grid

import (
	"errors"
	"fmt"
	"strings"
)

// 朝向常量，以北为 0 度、顺时针方向的角度值
// 这四个值是常用的基准方向，并非穷举：[0,360) 内的任意角度都是合法朝向
const (
	North = 0
	East  = 90
	South = 180
	West  = 270
)

// 网格操作的哨兵错误
// 这些错误都是正常使用中可恢复的结果（如探测未知格子），调用方通过 errors.Is 分支处理
var (
	// ErrOutOfBounds 坐标或索引超出网格范围
	ErrOutOfBounds = errors.New("grid: out of bounds")
	// ErrAlreadyOccupied 目标格子已被占用
	ErrAlreadyOccupied = errors.New("grid: cell already occupied")
	// ErrNotOccupied 目标格子为空
	ErrNotOccupied = errors.New("grid: cell not occupied")
)

// Agent 网格中可放置的占用者
// 网格只要求一个稳定的身份标识（用于 Render 输出标记），不关心其内部状态
type Agent interface {
	UID() uint32
}

// Grid 固定尺寸的占用网格
//
// 每个格子最多容纳一个 BotLocation，这是所有变更操作维护的核心不变量。
// 内部用一维切片按行优先（row-major）存储：index = x + y*width，
// cells 长度恒为 width*height，构造后不再调整。
//
// Grid 本身不做任何同步，多协程并发访问需由外层加锁
type Grid struct {
	width  int
	height int
	cells  []*BotLocation // nil 表示空格子
}

// New 创建所有格子均为空的网格
// 宽或高为 0 是合法的，得到一个没有任何有效坐标的空网格
func New(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]*BotLocation, width*height),
	}
}

// Width 返回网格宽度（列数）
func (g *Grid) Width() int {
	return g.width
}

// Height 返回网格高度（行数）
func (g *Grid) Height() int {
	return g.height
}

// Cells 返回格子总数（width * height）
func (g *Grid) Cells() int {
	return len(g.cells)
}

// Index 把坐标换算为行优先的一维索引
// 这是坐标映射的唯一入口，所有基于坐标的操作都经由它换算
//
// 返回:
//   - int: x + y*width
//   - error: 坐标越界时返回 ErrOutOfBounds
func (g *Grid) Index(x, y int) (int, error) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return 0, fmt.Errorf("%w: coordinate (%d, %d) outside %dx%d grid", ErrOutOfBounds, x, y, g.width, g.height)
	}
	return x + y*g.width, nil
}

// Place 在指定坐标放置一个占用者
//
// facing 按原样存储，不做归一化；[0,360) 之外的值由调用方自行负责
// （配置层 config.ParseFacing 提供严格校验）。
//
// 返回:
//   - error: 坐标越界返回 ErrOutOfBounds；格子已被占用返回 ErrAlreadyOccupied，
//     此时既有占用者保持原样，agent 不会被写入（无部分变更）
func (g *Grid) Place(agent Agent, x, y, facing int) error {
	index, err := g.Index(x, y)
	if err != nil {
		return err
	}
	if g.cells[index] != nil {
		return fmt.Errorf("%w: cell (%d, %d) holds bot %d", ErrAlreadyOccupied, x, y, g.cells[index].agent.UID())
	}
	g.cells[index] = &BotLocation{agent: agent, facing: facing}
	return nil
}

// RemoveAt 取出指定坐标的占用者，格子随之变空
// 换算索引后委托给 RemoveAtIndex
func (g *Grid) RemoveAt(x, y int) (*BotLocation, error) {
	index, err := g.Index(x, y)
	if err != nil {
		return nil, err
	}
	return g.RemoveAtIndex(index)
}

// RemoveAtIndex 取出指定索引处的占用者，格子随之变空
//
// 这是所有权转移而非复制：返回后 BotLocation 归调用方所有，
// 网格不再保留对它的引用
//
// 返回:
//   - *BotLocation: 被取出的占用记录
//   - error: 索引越界返回 ErrOutOfBounds；格子为空返回 ErrNotOccupied
func (g *Grid) RemoveAtIndex(index int) (*BotLocation, error) {
	if index < 0 || index >= len(g.cells) {
		return nil, fmt.Errorf("%w: index %d outside %d cells", ErrOutOfBounds, index, len(g.cells))
	}
	loc := g.cells[index]
	if loc == nil {
		return nil, fmt.Errorf("%w: index %d", ErrNotOccupied, index)
	}
	g.cells[index] = nil
	return loc, nil
}

// LocationAt 返回指定坐标处的占用记录，不转移所有权
// 调用方可借此原地修改朝向（SetFacing）或访问占用者，格子占用状态不变
func (g *Grid) LocationAt(x, y int) (*BotLocation, error) {
	index, err := g.Index(x, y)
	if err != nil {
		return nil, err
	}
	return g.LocationAtIndex(index)
}

// LocationAtIndex 返回指定索引处的占用记录，不转移所有权
func (g *Grid) LocationAtIndex(index int) (*BotLocation, error) {
	if index < 0 || index >= len(g.cells) {
		return nil, fmt.Errorf("%w: index %d outside %d cells", ErrOutOfBounds, index, len(g.cells))
	}
	if g.cells[index] == nil {
		return nil, fmt.Errorf("%w: index %d", ErrNotOccupied, index)
	}
	return g.cells[index], nil
}

// AgentAt 返回指定坐标处的占用者
func (g *Grid) AgentAt(x, y int) (Agent, error) {
	loc, err := g.LocationAt(x, y)
	if err != nil {
		return nil, err
	}
	return loc.agent, nil
}

// AgentAtIndex 返回指定索引处的占用者
func (g *Grid) AgentAtIndex(index int) (Agent, error) {
	loc, err := g.LocationAtIndex(index)
	if err != nil {
		return nil, err
	}
	return loc.agent, nil
}

// Occupied 返回当前被占用的格子数
// 每次调用扫描全部格子（O(cells)），仅用于诊断，不在热路径上
func (g *Grid) Occupied() int {
	count := 0
	for _, loc := range g.cells {
		if loc != nil {
			count++
		}
	}
	return count
}

// Render 生成网格占用快照文本，自上而下逐行、行内从左到右
// 被占用的格子输出占用者的 uid 标记，空格子输出自身坐标，行与行之间空一行
//
// 这是调试视图，不是数据交换格式
func (g *Grid) Render() string {
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			loc := g.cells[x+y*g.width]
			if loc != nil {
				fmt.Fprintf(&b, "  %d   ", loc.agent.UID())
			} else {
				fmt.Fprintf(&b, "(%d,%d) ", x, y)
			}
		}
		b.WriteString("\n\n")
	}
	return b.String()
}

// String 返回网格的摘要描述，占用数通过扫描统计
func (g *Grid) String() string {
	return fmt.Sprintf("(width:%d, height:%d, number of bots:%d)", g.width, g.height, g.Occupied())
}
