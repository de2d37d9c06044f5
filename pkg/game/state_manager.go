package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName gdata 存储使用的应用名
const AppName = "gonewx_carousel"

// CarouselState 跨运行保留的轮播状态
type CarouselState struct {
	ActiveIndex int  `yaml:"activeIndex"` // 上次停留的幻灯片
	SlideCount  int  `yaml:"slideCount"`  // 保存时的幻灯片数量
	Fullscreen  bool `yaml:"fullscreen"`  // 启动时是否全屏
}

// DefaultState 返回默认状态
func DefaultState() *CarouselState {
	return &CarouselState{}
}

// 存储路径常量
const (
	stateObject   = "carousel"
	stateProperty = "state"
)

// StateManager 状态管理器
// 负责轮播状态的加载、保存和内存管理
type StateManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	state        *CarouselState
	dirty        bool
}

// OpenStore 打开 gdata 存储
// 失败时返回 nil，调用方以降级模式运行
func OpenStore(appName string) *gdata.Manager {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[StateManager] Warning: gdata unavailable: %v (state will not persist)", err)
		return nil
	}
	return manager
}

// NewStateManager 创建新的状态管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存状态）
//
// 返回：
//   - *StateManager: 状态管理器实例
//   - error: 始终为 nil，加载失败只记录日志
func NewStateManager(gdataManager *gdata.Manager) (*StateManager, error) {
	sm := &StateManager{
		gdataManager: gdataManager,
		state:        DefaultState(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[StateManager] Warning: Failed to load state: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载状态
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认状态
func (sm *StateManager) Load() error {
	sm.dirty = false

	// 降级模式：无法持久化，使用默认状态
	if sm.gdataManager == nil {
		sm.state = DefaultState()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(stateObject, stateProperty) {
		sm.state = DefaultState()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(stateObject, stateProperty)
	if err != nil {
		sm.state = DefaultState()
		return fmt.Errorf("failed to load state: %w", err)
	}

	var loaded CarouselState
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.state = DefaultState()
		return fmt.Errorf("failed to unmarshal state: %w", err)
	}
	if loaded.ActiveIndex < 0 {
		loaded.ActiveIndex = 0
	}

	sm.state = &loaded
	log.Printf("[StateManager] State loaded: active=%d slides=%d", loaded.ActiveIndex, loaded.SlideCount)
	return nil
}

// Save 保存状态到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *StateManager) Save() error {
	if sm.gdataManager == nil {
		sm.dirty = false
		return nil
	}

	data, err := yaml.Marshal(sm.state)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(stateObject, stateProperty, data); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	sm.dirty = false
	log.Printf("[StateManager] State saved: active=%d", sm.state.ActiveIndex)
	return nil
}

// GetState 获取当前状态
func (sm *StateManager) GetState() *CarouselState {
	return sm.state
}

// IsDirty 内存状态是否有未保存的修改
func (sm *StateManager) IsDirty() bool {
	return sm.dirty
}

// RestoreIndex 返回可用于 n 张幻灯片的起始索引
// 保存的索引超出范围时截断到最后一张，没有幻灯片时为 0
func (sm *StateManager) RestoreIndex(n int) int {
	if n <= 0 {
		return 0
	}
	return min(max(sm.state.ActiveIndex, 0), n-1)
}

// SetActiveIndex 记录当前幻灯片
// 注意：仅修改内存中的状态，需调用 Save() 方法持久化
func (sm *StateManager) SetActiveIndex(index, slideCount int) {
	if sm.state.ActiveIndex == index && sm.state.SlideCount == slideCount {
		return
	}
	sm.state.ActiveIndex = index
	sm.state.SlideCount = slideCount
	sm.dirty = true
}

// SetFullscreen 设置全屏模式
// 注意：仅修改内存中的状态，需调用 Save() 方法持久化
func (sm *StateManager) SetFullscreen(enabled bool) {
	if sm.state.Fullscreen == enabled {
		return
	}
	sm.state.Fullscreen = enabled
	sm.dirty = true
}
