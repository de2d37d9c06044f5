package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// newTestGdataManager 在临时 HOME 下创建 gdata manager
func newTestGdataManager(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")

	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Skipf("Cannot create gdata manager for testing: %v", err)
	}
	return manager
}

// TestNewStateManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewStateManagerNilGdata(t *testing.T) {
	sm, err := NewStateManager(nil)
	if err != nil {
		t.Fatalf("NewStateManager(nil) error: %v", err)
	}

	if sm.GetState().ActiveIndex != 0 {
		t.Errorf("ActiveIndex: got %d, want 0", sm.GetState().ActiveIndex)
	}

	sm.SetActiveIndex(3, 5)
	if !sm.IsDirty() {
		t.Error("expected dirty state after SetActiveIndex")
	}
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode: %v", err)
	}
	if sm.IsDirty() {
		t.Error("expected clean state after Save")
	}
}

// TestStateLoadSave 测试 Load() 和 Save() 功能
func TestStateLoadSave(t *testing.T) {
	manager := newTestGdataManager(t, "test_carousel_state")

	sm1, err := NewStateManager(manager)
	if err != nil {
		t.Fatalf("NewStateManager() error: %v", err)
	}
	sm1.SetActiveIndex(2, 4)
	sm1.SetFullscreen(true)

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// 创建新的状态管理器，验证加载
	sm2, err := NewStateManager(manager)
	if err != nil {
		t.Fatalf("NewStateManager() error on reload: %v", err)
	}

	state := sm2.GetState()
	if state.ActiveIndex != 2 {
		t.Errorf("Loaded ActiveIndex: got %d, want 2", state.ActiveIndex)
	}
	if state.SlideCount != 4 {
		t.Errorf("Loaded SlideCount: got %d, want 4", state.SlideCount)
	}
	if !state.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
	if sm2.IsDirty() {
		t.Error("freshly loaded state should be clean")
	}
}

// TestStateLoadCorrupted 测试损坏的数据回退到默认状态
func TestStateLoadCorrupted(t *testing.T) {
	manager := newTestGdataManager(t, "test_carousel_state_corrupt")

	if err := manager.SaveObjectProp(stateObject, stateProperty, []byte("activeIndex: [")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm, _ := NewStateManager(manager)
	if sm.GetState().ActiveIndex != 0 {
		t.Errorf("ActiveIndex: got %d, want 0", sm.GetState().ActiveIndex)
	}
	if err := sm.Load(); err == nil {
		t.Error("expected Load() error for corrupted data")
	}
}

// TestRestoreIndex 测试起始索引截断
func TestRestoreIndex(t *testing.T) {
	sm, _ := NewStateManager(nil)

	tests := []struct {
		saved  int
		slides int
		want   int
	}{
		{0, 5, 0},  // 默认
		{3, 5, 3},  // 范围内
		{7, 5, 4},  // 超出，截断到最后一张
		{2, 0, 0},  // 没有幻灯片
		{-1, 3, 0}, // 负数
	}

	for _, tt := range tests {
		sm.GetState().ActiveIndex = tt.saved
		if got := sm.RestoreIndex(tt.slides); got != tt.want {
			t.Errorf("RestoreIndex(%d) with saved=%d: got %d, want %d", tt.slides, tt.saved, got, tt.want)
		}
	}
}

// TestSetActiveIndexUnchanged 测试相同值不标记修改
func TestSetActiveIndexUnchanged(t *testing.T) {
	sm, _ := NewStateManager(nil)
	sm.SetActiveIndex(0, 0)
	sm.SetFullscreen(false)
	if sm.IsDirty() {
		t.Error("unchanged values should not mark state dirty")
	}
}
