package grid

import "fmt"

// BotLocation 一个被放置的占用记录：占用者与其朝向的配对
//
// BotLocation 只能由成功的 Place 创建，在格子中最多存在一个；
// 成功的 Remove 把它整体移交给调用方
type BotLocation struct {
	agent  Agent
	facing int // 以北为 0 度、顺时针方向的角度
}

// Agent 返回其中的占用者，不释放所有权
func (l *BotLocation) Agent() Agent {
	return l.agent
}

// Facing 返回存储的朝向角度
func (l *BotLocation) Facing() int {
	return l.facing
}

// SetFacing 无条件覆盖朝向，不做范围校验
func (l *BotLocation) SetFacing(facing int) {
	l.facing = facing
}

func (l *BotLocation) String() string {
	return fmt.Sprintf("[Bot: %v, Facing: %d]", l.agent, l.facing)
}
