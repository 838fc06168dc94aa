package sim

import (
	"errors"
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ErrNoSnapshot 指定槽位没有已保存的快照
var ErrNoSnapshot = errors.New("sim: no snapshot saved")

// 存储路径常量
const snapshotObject = "snapshots"

// SaveManager 快照保存管理器
// 负责把网格快照持久化到本地并按槽位读回
//
// 架构说明：
//   - 数据经 yaml 序列化后交给 gdata 存储（与项目其他配置保持一致）
//   - 每个槽位对应 gdata 的一个属性，槽位名由调用方决定（如 "auto"、"slot1"）
type SaveManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
}

// NewSaveManager 创建快照保存管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，不持久化）
func NewSaveManager(gdataManager *gdata.Manager) *SaveManager {
	return &SaveManager{gdataManager: gdataManager}
}

// SaveSnapshot 把快照保存到指定槽位
//
// 如果 gdataManager 为 nil，静默跳过（降级模式，不报错）
func (sm *SaveManager) SaveSnapshot(slot string, snap *Snapshot) error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(snapshotObject, slot, data); err != nil {
		return fmt.Errorf("failed to save snapshot to slot %s: %w", slot, err)
	}

	log.Printf("[SaveManager] Snapshot saved to slot %s (%d bots)", slot, len(snap.Bots))
	return nil
}

// LoadSnapshot 从指定槽位读取快照
//
// 返回：
//   - *Snapshot: 读取到的快照
//   - error: 槽位不存在（或降级模式）返回 ErrNoSnapshot，读取或反序列化失败返回相应错误
func (sm *SaveManager) LoadSnapshot(slot string) (*Snapshot, error) {
	if sm.gdataManager == nil {
		return nil, ErrNoSnapshot
	}

	if !sm.gdataManager.ObjectPropExists(snapshotObject, slot) {
		return nil, fmt.Errorf("%w: slot %s", ErrNoSnapshot, slot)
	}

	data, err := sm.gdataManager.LoadObjectProp(snapshotObject, slot)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot from slot %s: %w", slot, err)
	}

	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot from slot %s: %w", slot, err)
	}

	return &snap, nil
}

// HasSnapshot 检查指定槽位是否有已保存的快照
func (sm *SaveManager) HasSnapshot(slot string) bool {
	if sm.gdataManager == nil {
		return false
	}
	return sm.gdataManager.ObjectPropExists(snapshotObject, slot)
}
