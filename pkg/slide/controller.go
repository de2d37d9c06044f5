// Package slide 实现拖拽轮播控制器
//
// Controller 是一个单线程状态机，由四部分组成：
//   - 手势跟踪（gesture.go）：start/move/end 事件，计算拖拽位移
//   - 位置引擎（position.go）：位移 → 滑动层偏移，唯一的渲染副作用
//   - 索引导航（navigator.go）：slide 几何表、prev/active/next 索引、松手吸附策略
//   - 尺寸响应（resize.go）：去抖后重新计算几何并吸附到当前 slide
//
// 所有方法必须在宿主的事件循环（ebiten Update）中调用，不加锁。
package slide

import (
	"fmt"
	"log"

	"github.com/gonewx/carousel/pkg/dom"
)

// State 手势状态
type State int

const (
	// StateIdle 没有进行中的手势
	StateIdle State = iota
	// StateDragging 手势进行中，移动事件已订阅
	StateDragging
)

// String 返回状态名称
func (s State) String() string {
	if s == StateDragging {
		return "dragging"
	}
	return "idle"
}

// Slide 单个 slide：元素引用 + 使其在视口中居中的偏移
type Slide struct {
	Element  dom.Element
	Position float64
}

// Distance 手势跟踪数据
type Distance struct {
	// FinalPosition 已提交的偏移（手势结束或吸附时更新）
	FinalPosition float64
	// StartX 手势开始时的指针坐标
	StartX float64
	// Movement 放大后的实时位移 (StartX - x) * sensitivity
	Movement float64
	// MovePosition 最近一次应用到滑动层的偏移
	MovePosition float64
}

// gestureEvents 手势边界与尺寸事件，Init 时订阅，Destroy 时取消
var gestureEvents = []dom.EventType{
	dom.EventMouseDown,
	dom.EventMouseUp,
	dom.EventTouchStart,
	dom.EventTouchEnd,
	dom.EventPointerCancel,
	dom.EventTouchCancel,
	dom.EventBlur,
	dom.EventResize,
}

// Controller 轮播控制器
type Controller struct {
	layer   dom.Layer
	wrapper dom.Viewport
	opts    options

	slides   []Slide
	index    Index
	distance Distance

	state      State
	channel    dom.Channel
	touchID    int
	transition bool

	debouncer Debouncer

	// handler 是订阅与取消时使用的同一个处理函数
	handler       dom.Handler
	subscriptions []func()
	stopMove      func()

	initialized bool
}

// New 创建控制器
// layer 或 wrapper 为 nil 时返回 ErrConfiguration
func New(layer dom.Layer, wrapper dom.Viewport, opts ...Option) (*Controller, error) {
	if layer == nil {
		return nil, fmt.Errorf("%w: slide layer is nil", ErrConfiguration)
	}
	if wrapper == nil {
		return nil, fmt.Errorf("%w: wrapper is nil", ErrConfiguration)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		layer:   layer,
		wrapper: wrapper,
		opts:    o,
		index:   Index{Prev: NoIndex, Active: 0, Next: NoIndex},
	}
	c.handler = c.handleEvent
	c.debouncer = o.newDebouncer(o.debounceWindow, c.reflow)
	return c, nil
}

// Init 订阅事件、计算几何、吸附到初始 slide 并开启过渡
func (c *Controller) Init() (*Controller, error) {
	if c.initialized {
		return c, ErrAlreadyInitialized
	}

	// 初始定位不需要动画
	c.Transition(false)
	c.ComputeGeometry()
	if len(c.slides) > 0 {
		if err := c.ChangeSlide(c.opts.initialIndex); err != nil {
			return c, fmt.Errorf("initial slide: %w", err)
		}
	}

	for _, t := range gestureEvents {
		c.subscriptions = append(c.subscriptions, c.wrapper.AddEventListener(t, c.handler))
	}
	c.Transition(true)
	c.initialized = true

	log.Printf("[SlideController] Initialized with %d slides, active=%d", len(c.slides), c.index.Active)
	return c, nil
}

// Destroy 取消所有订阅和待执行的尺寸响应
func (c *Controller) Destroy() {
	for _, unsubscribe := range c.subscriptions {
		unsubscribe()
	}
	c.subscriptions = nil
	c.releaseMove()
	c.state = StateIdle
	c.channel = dom.ChannelNone
	c.debouncer.Cancel()
	c.initialized = false
}

// Update 推进去抖计时，每帧调用一次
func (c *Controller) Update(deltaTime float64) {
	c.debouncer.Update(deltaTime)
}

// Handle 状态机的统一入口：按事件分类执行一次状态转移
func (c *Controller) Handle(ev *dom.Event) error {
	switch ev.Type.Kind() {
	case dom.KindStart:
		c.OnStart(ev)
		return nil
	case dom.KindMove:
		c.OnMove(ev)
		return nil
	case dom.KindEnd:
		return c.OnEnd(ev)
	case dom.KindCancel:
		return c.OnCancel(ev)
	case dom.KindResize:
		c.OnResize()
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}
}

func (c *Controller) handleEvent(ev *dom.Event) {
	if err := c.Handle(ev); err != nil {
		log.Printf("[SlideController] Warning: %s event failed: %v", ev.Type, err)
	}
}

// Slides 返回当前几何表的副本
func (c *Controller) Slides() []Slide {
	out := make([]Slide, len(c.slides))
	copy(out, c.slides)
	return out
}

// Index 返回当前索引
func (c *Controller) Index() Index {
	return c.index
}

// Distance 返回手势跟踪数据
func (c *Controller) Distance() Distance {
	return c.distance
}

// State 返回手势状态
func (c *Controller) State() State {
	return c.state
}

// TransitionEnabled 返回过渡是否开启
func (c *Controller) TransitionEnabled() bool {
	return c.transition
}
