// Package utils 提供通用工具：去抖、缓动、输入读取
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenInput 直接读取 Ebitengine 的鼠标、触摸和键盘状态
// 系统通过接口使用它，测试时替换为 mock
type EbitenInput struct{}

// CursorPosition 鼠标位置
func (EbitenInput) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

// IsMouseButtonJustPressed 鼠标按键是否本帧按下
func (EbitenInput) IsMouseButtonJustPressed(button ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(button)
}

// IsMouseButtonJustReleased 鼠标按键是否本帧释放
func (EbitenInput) IsMouseButtonJustReleased(button ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustReleased(button)
}

// AppendTouchIDs 所有活动的触摸点
func (EbitenInput) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return ebiten.AppendTouchIDs(ids)
}

// TouchPosition 触摸点位置
func (EbitenInput) TouchPosition(id ebiten.TouchID) (int, int) {
	return ebiten.TouchPosition(id)
}

// IsFocused 窗口是否拥有焦点
func (EbitenInput) IsFocused() bool {
	return ebiten.IsFocused()
}

// IsKeyJustPressed 键盘按键是否本帧按下
func (EbitenInput) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}
