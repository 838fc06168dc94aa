package viewer

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/kilogrid/pkg/grid"
)

// 布局常量
const (
	cellSize  = 64.0 // 单个格子的边长（像素）
	marginX   = 24.0 // 网格左边距
	marginY   = 24.0 // 网格上边距
	footerPad = 40.0 // 底部摘要文本预留高度
)

// 配色
var (
	backgroundColor = color.RGBA{32, 32, 40, 255}
	gridLineColor   = color.RGBA{90, 90, 110, 255}
	occupiedColor   = color.RGBA{70, 130, 80, 255}
	facingColor     = color.RGBA{240, 220, 120, 255}
)

// Viewer 网格占用状态的窗口视图
// 只读展示：画出每个格子的边框、被占用格子的填充、朝向刻线和 uid 标记，
// 从不修改网格
type Viewer struct {
	grid  *grid.Grid
	title string
}

// New 创建网格视图
func New(g *grid.Grid, title string) *Viewer {
	return &Viewer{grid: g, title: title}
}

// Update 处理输入，按 Escape 退出
func (v *Viewer) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

// Draw 渲染一帧
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	for y := 0; y < v.grid.Height(); y++ {
		for x := 0; x < v.grid.Width(); x++ {
			px := marginX + float64(x)*cellSize
			py := marginY + float64(y)*cellSize

			loc, err := v.grid.LocationAt(x, y)
			if err == nil {
				// 被占用的格子：填充 + 朝向刻线 + uid 标记
				vector.DrawFilledRect(
					screen,
					float32(px),
					float32(py),
					float32(cellSize),
					float32(cellSize),
					occupiedColor,
					false,
				)
				v.drawFacing(screen, px, py, loc.Facing())
				ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", loc.Agent().UID()), int(px)+4, int(py)+4)
			}

			vector.StrokeRect(
				screen,
				float32(px),
				float32(py),
				float32(cellSize),
				float32(cellSize),
				1,
				gridLineColor,
				false,
			)
		}
	}

	// 底部摘要
	footerY := int(marginY + float64(v.grid.Height())*cellSize + 12)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %v", v.title, v.grid), int(marginX), footerY)
	ebitenutil.DebugPrintAt(screen, "ESC: quit", int(marginX), footerY+16)
}

// drawFacing 从格子中心画一条指向朝向的刻线
// 朝向以北（屏幕上方）为 0 度、顺时针增加
func (v *Viewer) drawFacing(screen *ebiten.Image, px, py float64, facing int) {
	cx := px + cellSize/2
	cy := py + cellSize/2
	rad := float64(facing) * math.Pi / 180

	// 北对应 -Y 方向
	dx := math.Sin(rad) * (cellSize/2 - 6)
	dy := -math.Cos(rad) * (cellSize/2 - 6)

	vector.StrokeLine(
		screen,
		float32(cx),
		float32(cy),
		float32(cx+dx),
		float32(cy+dy),
		3,
		facingColor,
		false,
	)
}

// Layout 返回逻辑屏幕尺寸，由网格大小决定
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := int(marginX*2 + float64(v.grid.Width())*cellSize)
	h := int(marginY*2 + float64(v.grid.Height())*cellSize + footerPad)
	// 空网格也要有一个可见的窗口
	if w < 320 {
		w = 320
	}
	if h < 200 {
		h = 200
	}
	return w, h
}
