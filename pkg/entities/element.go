package entities

import (
	"log"

	"github.com/gonewx/carousel/pkg/components"
	"github.com/gonewx/carousel/pkg/dom"
	"github.com/gonewx/carousel/pkg/ecs"
)

var (
	_ dom.Element  = (*SlideElement)(nil)
	_ dom.Layer    = (*LayerElement)(nil)
	_ dom.Viewport = (*ViewportElement)(nil)
)

// SlideElement 将幻灯片实体包装为 dom.Element
// 几何来自 LayoutSystem 写入的 BoxComponent
type SlideElement struct {
	em *ecs.EntityManager
	id ecs.EntityID
}

// NewSlideElement 创建幻灯片适配器
func NewSlideElement(em *ecs.EntityManager, id ecs.EntityID) *SlideElement {
	return &SlideElement{em: em, id: id}
}

// ID 返回实体 ID
func (e *SlideElement) ID() ecs.EntityID { return e.id }

// OffsetLeft 相对滑动层左边缘的偏移，未布局时为 0
func (e *SlideElement) OffsetLeft() float64 {
	if box, ok := ecs.GetComponent[*components.BoxComponent](e.em, e.id); ok {
		return box.Left
	}
	return 0
}

// OffsetWidth 卡片宽度，未布局时为 0
func (e *SlideElement) OffsetWidth() float64 {
	if box, ok := ecs.GetComponent[*components.BoxComponent](e.em, e.id); ok {
		return box.Width
	}
	return 0
}

// ToggleClass 添加或移除 class，实体没有 ClassComponent 时自动补上
func (e *SlideElement) ToggleClass(name string, on bool) {
	classes, ok := ecs.GetComponent[*components.ClassComponent](e.em, e.id)
	if !ok {
		classes = components.NewClassComponent()
		e.em.AddComponent(e.id, classes)
	}
	classes.Classes.Toggle(name, on)
}

// HasClass 检查 class
func (e *SlideElement) HasClass(name string) bool {
	classes, ok := ecs.GetComponent[*components.ClassComponent](e.em, e.id)
	return ok && classes.Classes.Has(name)
}

// LayerElement 将滑动层实体包装为 dom.Layer
type LayerElement struct {
	em *ecs.EntityManager
	id ecs.EntityID
}

// NewLayerElement 创建滑动层适配器
func NewLayerElement(em *ecs.EntityManager, id ecs.EntityID) *LayerElement {
	return &LayerElement{em: em, id: id}
}

// Children 按布局顺序返回幻灯片
func (l *LayerElement) Children() []dom.Element {
	layer, ok := ecs.GetComponent[*components.LayerComponent](l.em, l.id)
	if !ok {
		return nil
	}
	children := make([]dom.Element, 0, len(layer.Children))
	for _, id := range layer.Children {
		children = append(children, NewSlideElement(l.em, id))
	}
	return children
}

// SetTransform 设置滑动层平移，过渡开启时由 TransitionSystem 逐帧推进
func (l *LayerElement) SetTransform(x, y float64) {
	l.transform().SetTarget(x, y)
}

// SetTransition 开启或关闭过渡
func (l *LayerElement) SetTransition(enabled bool) {
	l.transform().SetTransition(enabled)
}

// Offset 返回当前渲染的平移量
func (l *LayerElement) Offset() (x, y float64) {
	tr := l.transform()
	return tr.X, tr.Y
}

func (l *LayerElement) transform() *components.TransformComponent {
	tr, ok := ecs.GetComponent[*components.TransformComponent](l.em, l.id)
	if !ok {
		tr = &components.TransformComponent{}
		l.em.AddComponent(l.id, tr)
	}
	return tr
}

// ViewportElement 将视口实体包装为 dom.Viewport
// 事件订阅由内嵌的 dom.Listeners 管理
type ViewportElement struct {
	*dom.Listeners

	em *ecs.EntityManager
	id ecs.EntityID
}

// NewViewportElement 创建视口适配器
func NewViewportElement(em *ecs.EntityManager, id ecs.EntityID) *ViewportElement {
	return &ViewportElement{Listeners: dom.NewListeners(), em: em, id: id}
}

// OffsetWidth 视口宽度
func (v *ViewportElement) OffsetWidth() float64 {
	if vp, ok := ecs.GetComponent[*components.ViewportComponent](v.em, v.id); ok {
		return vp.Width
	}
	return 0
}

// Resize 更新视口尺寸，尺寸变化时分发 resize 事件
//
// 返回：
//   - bool: 尺寸是否发生变化
func (v *ViewportElement) Resize(width, height float64) bool {
	vp, ok := ecs.GetComponent[*components.ViewportComponent](v.em, v.id)
	if !ok {
		vp = &components.ViewportComponent{}
		v.em.AddComponent(v.id, vp)
	}
	if vp.Width == width && vp.Height == height {
		return false
	}
	log.Printf("[Viewport] Resize %.0fx%.0f -> %.0fx%.0f", vp.Width, vp.Height, width, height)
	vp.Width, vp.Height = width, height
	v.Dispatch(&dom.Event{Type: dom.EventResize})
	return true
}
