package systems

import (
	"slices"

	"github.com/gonewx/carousel/pkg/dom"
	"github.com/gonewx/carousel/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerInput 输入系统读取的鼠标、触摸和焦点状态
// 用于依赖注入，测试时替换为 mock
type PointerInput interface {
	CursorPosition() (int, int)
	IsMouseButtonJustPressed(button ebiten.MouseButton) bool
	IsMouseButtonJustReleased(button ebiten.MouseButton) bool
	AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID
	TouchPosition(id ebiten.TouchID) (int, int)
	IsFocused() bool
}

// Dispatcher 接收输入系统生成的事件
type Dispatcher interface {
	Dispatch(ev *dom.Event)
}

// defaultPointerInput 默认使用 Ebitengine 的输入
var defaultPointerInput PointerInput = utils.EbitenInput{}

type touchPoint struct {
	x, y int
}

// InputSystem 把每帧轮询到的输入状态转换为 DOM 风格的事件
//
// 每帧依次生成：
//   - touchcancel / blur：窗口失去焦点（先中断仍按下的触摸点）
//   - touchstart / touchmove / touchend：按触摸 ID 比较前后两帧
//   - mousemove / mousedown / mouseup：鼠标位置变化与按键边沿
//
// touchend 使用触摸点最后一次的位置（释放后 Ebitengine 不再报告位置）。
// 被中断的触摸点在抬起之前不再产生事件。
type InputSystem struct {
	input  PointerInput
	target Dispatcher

	focused     bool
	cursorKnown bool
	cursorX     int
	cursorY     int
	touches     map[ebiten.TouchID]touchPoint
	cancelled   map[ebiten.TouchID]bool
	touchIDs    []ebiten.TouchID
}

// NewInputSystem 创建使用 Ebitengine 输入的系统
func NewInputSystem(target Dispatcher) *InputSystem {
	return NewInputSystemWithInput(target, defaultPointerInput)
}

// NewInputSystemWithInput 创建带自定义输入的系统（用于测试）
func NewInputSystemWithInput(target Dispatcher, input PointerInput) *InputSystem {
	return &InputSystem{
		input:   input,
		target:  target,
		focused: true,
		touches:   make(map[ebiten.TouchID]touchPoint),
		cancelled: make(map[ebiten.TouchID]bool),
	}
}

// Update 轮询输入并分发事件
func (s *InputSystem) Update() {
	s.updateFocus()
	s.updateTouches()
	s.updateMouse()
}

func (s *InputSystem) updateFocus() {
	focused := s.input.IsFocused()
	if s.focused && !focused {
		s.cancelTouches()
		s.target.Dispatch(&dom.Event{Type: dom.EventBlur})
	}
	s.focused = focused
}

func (s *InputSystem) updateTouches() {
	s.touchIDs = s.input.AppendTouchIDs(s.touchIDs[:0])
	slices.Sort(s.touchIDs)

	current := make(map[ebiten.TouchID]touchPoint, len(s.touchIDs))
	for _, id := range s.touchIDs {
		x, y := s.input.TouchPosition(id)
		point := touchPoint{x: x, y: y}
		current[id] = point

		if s.cancelled[id] {
			continue
		}
		prev, existed := s.touches[id]
		switch {
		case !existed:
			s.target.Dispatch(dom.NewTouchEvent(dom.EventTouchStart, int(id), float64(x), float64(y)))
		case prev != point:
			s.target.Dispatch(dom.NewTouchEvent(dom.EventTouchMove, int(id), float64(x), float64(y)))
		}
	}

	released := make([]ebiten.TouchID, 0)
	for id := range s.touches {
		if _, ok := current[id]; !ok {
			released = append(released, id)
		}
	}
	slices.Sort(released)
	for _, id := range released {
		if s.cancelled[id] {
			delete(s.cancelled, id)
			continue
		}
		last := s.touches[id]
		s.target.Dispatch(dom.NewTouchEvent(dom.EventTouchEnd, int(id), float64(last.x), float64(last.y)))
	}

	s.touches = current
}

func (s *InputSystem) cancelTouches() {
	ids := make([]ebiten.TouchID, 0, len(s.touches))
	for id := range s.touches {
		if !s.cancelled[id] {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	for _, id := range ids {
		last := s.touches[id]
		s.target.Dispatch(dom.NewTouchEvent(dom.EventTouchCancel, int(id), float64(last.x), float64(last.y)))
		s.cancelled[id] = true
	}
}

func (s *InputSystem) updateMouse() {
	x, y := s.input.CursorPosition()
	if s.cursorKnown && (x != s.cursorX || y != s.cursorY) {
		s.target.Dispatch(dom.NewMouseEvent(dom.EventMouseMove, float64(x), float64(y)))
	}
	s.cursorX, s.cursorY = x, y
	s.cursorKnown = true

	for _, button := range []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonRight} {
		if s.input.IsMouseButtonJustPressed(button) {
			ev := dom.NewMouseEvent(dom.EventMouseDown, float64(x), float64(y))
			ev.Button = domButton(button)
			s.target.Dispatch(ev)
		}
	}
	for _, button := range []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonRight} {
		if s.input.IsMouseButtonJustReleased(button) {
			ev := dom.NewMouseEvent(dom.EventMouseUp, float64(x), float64(y))
			ev.Button = domButton(button)
			s.target.Dispatch(ev)
		}
	}
}

// domButton 将 Ebitengine 按键映射为 DOM 的 button 编号（0 主键，2 右键）
func domButton(button ebiten.MouseButton) int {
	switch button {
	case ebiten.MouseButtonRight:
		return 2
	case ebiten.MouseButtonMiddle:
		return 1
	default:
		return dom.ButtonPrimary
	}
}
