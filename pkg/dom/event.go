// Package dom 定义轮播控制器依赖的类 DOM 抽象
//
// 控制器不直接依赖渲染引擎或输入系统，只通过本包的接口与宿主交互：
//   - Element / Layer / Viewport：几何查询、变换、过渡、class 标记
//   - EventTarget / Event：事件订阅与分发（订阅返回取消函数）
package dom

// EventType 事件类型（与浏览器事件名一致）
type EventType string

const (
	EventMouseDown     EventType = "mousedown"
	EventMouseMove     EventType = "mousemove"
	EventMouseUp       EventType = "mouseup"
	EventTouchStart    EventType = "touchstart"
	EventTouchMove     EventType = "touchmove"
	EventTouchEnd      EventType = "touchend"
	EventTouchCancel   EventType = "touchcancel"
	EventPointerCancel EventType = "pointercancel"
	EventBlur          EventType = "blur"
	EventResize        EventType = "resize"
)

// Kind 事件在手势状态机中的语义分类
type Kind int

const (
	KindUnknown Kind = iota
	KindStart
	KindMove
	KindEnd
	KindCancel
	KindResize
)

// String 返回分类名称（用于日志）
func (k Kind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindMove:
		return "move"
	case KindEnd:
		return "end"
	case KindCancel:
		return "cancel"
	case KindResize:
		return "resize"
	default:
		return "unknown"
	}
}

// Channel 输入通道，鼠标与触摸互斥
type Channel int

const (
	// ChannelNone 不属于任何指针通道（resize、blur、pointercancel）
	ChannelNone Channel = iota
	ChannelMouse
	ChannelTouch
)

// String 返回通道名称（用于日志）
func (c Channel) String() string {
	switch c {
	case ChannelMouse:
		return "mouse"
	case ChannelTouch:
		return "touch"
	default:
		return "none"
	}
}

// MoveEvent 返回该通道对应的移动事件类型
func (c Channel) MoveEvent() EventType {
	if c == ChannelTouch {
		return EventTouchMove
	}
	return EventMouseMove
}

// Kind 返回事件类型的语义分类
func (t EventType) Kind() Kind {
	switch t {
	case EventMouseDown, EventTouchStart:
		return KindStart
	case EventMouseMove, EventTouchMove:
		return KindMove
	case EventMouseUp, EventTouchEnd:
		return KindEnd
	case EventTouchCancel, EventPointerCancel, EventBlur:
		return KindCancel
	case EventResize:
		return KindResize
	default:
		return KindUnknown
	}
}

// Channel 返回事件类型所属的输入通道
func (t EventType) Channel() Channel {
	switch t {
	case EventMouseDown, EventMouseMove, EventMouseUp:
		return ChannelMouse
	case EventTouchStart, EventTouchMove, EventTouchEnd, EventTouchCancel:
		return ChannelTouch
	default:
		return ChannelNone
	}
}

// ButtonPrimary 鼠标主键
const ButtonPrimary = 0

// Touch 单个触摸点
type Touch struct {
	Identifier int
	ClientX    float64
	ClientY    float64
}

// Event 输入事件
type Event struct {
	Type EventType

	// 鼠标坐标与按键
	ClientX float64
	ClientY float64
	Button  int

	// 本次事件中状态发生变化的触摸点
	ChangedTouches []Touch

	defaultPrevented bool
}

// PreventDefault 阻止宿主的默认行为（例如鼠标拖拽选中）
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented 返回是否调用过 PreventDefault
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// PointerX 返回事件的水平坐标
// 鼠标事件使用 ClientX，触摸事件使用第一个变化触摸点的 ClientX
// 触摸事件没有触摸点时返回 false
func (e *Event) PointerX() (float64, bool) {
	if e.Type.Channel() == ChannelTouch {
		if len(e.ChangedTouches) == 0 {
			return 0, false
		}
		return e.ChangedTouches[0].ClientX, true
	}
	return e.ClientX, true
}

// TouchX 返回指定触摸点在本次事件中的水平坐标
// 该触摸点不在 ChangedTouches 中时返回 false
func (e *Event) TouchX(id int) (float64, bool) {
	for _, t := range e.ChangedTouches {
		if t.Identifier == id {
			return t.ClientX, true
		}
	}
	return 0, false
}

// NewMouseEvent 创建主键鼠标事件
func NewMouseEvent(t EventType, x, y float64) *Event {
	return &Event{Type: t, ClientX: x, ClientY: y, Button: ButtonPrimary}
}

// NewTouchEvent 创建单点触摸事件
func NewTouchEvent(t EventType, id int, x, y float64) *Event {
	return &Event{
		Type:           t,
		ChangedTouches: []Touch{{Identifier: id, ClientX: x, ClientY: y}},
	}
}
