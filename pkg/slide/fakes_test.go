package slide

import (
	"github.com/gonewx/carousel/pkg/dom"
)

// fakeElement 固定几何的元素
type fakeElement struct {
	left, width float64
	classes     dom.ClassSet
}

func (e *fakeElement) OffsetLeft() float64  { return e.left }
func (e *fakeElement) OffsetWidth() float64 { return e.width }
func (e *fakeElement) ToggleClass(name string, on bool) {
	e.classes.Toggle(name, on)
}
func (e *fakeElement) HasClass(name string) bool { return e.classes.Has(name) }

// fakeLayer 记录变换与过渡状态
type fakeLayer struct {
	children    []*fakeElement
	x, y        float64
	transforms  int
	transition  bool
	transitions []bool
}

func (l *fakeLayer) Children() []dom.Element {
	out := make([]dom.Element, len(l.children))
	for i, c := range l.children {
		out[i] = c
	}
	return out
}

func (l *fakeLayer) SetTransform(x, y float64) {
	l.x, l.y = x, y
	l.transforms++
}

func (l *fakeLayer) SetTransition(enabled bool) {
	l.transition = enabled
	l.transitions = append(l.transitions, enabled)
}

// fakeViewport 固定宽度的视口
type fakeViewport struct {
	*dom.Listeners
	width float64
}

func (v *fakeViewport) OffsetWidth() float64 { return v.width }

// newFakeLayer 创建 n 个等宽、首尾相接的 slide
// 视口宽度与 slide 宽度相同时，第 i 张的位置为 -i*width
func newFakeLayer(n int, width float64) *fakeLayer {
	layer := &fakeLayer{}
	for i := 0; i < n; i++ {
		layer.children = append(layer.children, &fakeElement{
			left:    float64(i) * width,
			width:   width,
			classes: dom.ClassSet{},
		})
	}
	return layer
}

func newFakeViewport(width float64) *fakeViewport {
	return &fakeViewport{Listeners: dom.NewListeners(), width: width}
}

// manualDebouncer 由测试直接控制的去抖器
type manualDebouncer struct {
	fn        func()
	triggers  int
	cancelled bool
}

func (d *manualDebouncer) Trigger()          { d.triggers++ }
func (d *manualDebouncer) Update(dt float64) {}
func (d *manualDebouncer) Cancel()           { d.cancelled = true }
func (d *manualDebouncer) fire()             { d.fn() }

// drag 通过视口分发一次完整的鼠标手势
func drag(v *fakeViewport, fromX, toX float64) {
	v.Dispatch(dom.NewMouseEvent(dom.EventMouseDown, fromX, 0))
	v.Dispatch(dom.NewMouseEvent(dom.EventMouseMove, toX, 0))
	v.Dispatch(dom.NewMouseEvent(dom.EventMouseUp, toX, 0))
}

// touchDrag 通过视口分发一次完整的触摸手势
func touchDrag(v *fakeViewport, fromX, toX float64) {
	v.Dispatch(dom.NewTouchEvent(dom.EventTouchStart, 1, fromX, 0))
	v.Dispatch(dom.NewTouchEvent(dom.EventTouchMove, 1, toX, 0))
	v.Dispatch(dom.NewTouchEvent(dom.EventTouchEnd, 1, toX, 0))
}

// activeCount 返回带有 class 的 slide 数量和最后一个的索引
func activeCount(layer *fakeLayer, class string) (int, int) {
	count, last := 0, NoIndex
	for i, c := range layer.children {
		if c.HasClass(class) {
			count++
			last = i
		}
	}
	return count, last
}
