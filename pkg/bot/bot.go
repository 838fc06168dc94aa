package bot

import "fmt"

// Bot 一个 kilobot 个体
// 对网格而言它是不透明载荷，网格只通过 UID 读取其身份标记
type Bot struct {
	uid  uint32
	name string
}

// New 创建一个 kilobot
func New(uid uint32, name string) *Bot {
	return &Bot{uid: uid, name: name}
}

// UID 返回机器人的稳定唯一标识
func (b *Bot) UID() uint32 {
	return b.uid
}

// Name 返回机器人名称
func (b *Bot) Name() string {
	return b.name
}

// SetName 修改机器人名称
// 机器人在网格上时也可调用，不影响其占用的格子
func (b *Bot) SetName(name string) {
	b.name = name
}

func (b *Bot) String() string {
	return fmt.Sprintf("%d (%s)", b.uid, b.name)
}
