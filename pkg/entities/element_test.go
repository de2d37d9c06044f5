package entities

import (
	"testing"

	"github.com/gonewx/carousel/pkg/components"
	"github.com/gonewx/carousel/pkg/dom"
	"github.com/gonewx/carousel/pkg/ecs"
)

func TestSlideElementGeometry(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	el := NewSlideElement(em, id)

	// 未布局时几何为 0
	if el.OffsetLeft() != 0 || el.OffsetWidth() != 0 {
		t.Errorf("expected zero geometry, got %v/%v", el.OffsetLeft(), el.OffsetWidth())
	}

	em.AddComponent(id, &components.BoxComponent{Left: 420, Width: 400})
	if el.OffsetLeft() != 420 || el.OffsetWidth() != 400 {
		t.Errorf("geometry = %v/%v, want 420/400", el.OffsetLeft(), el.OffsetWidth())
	}
}

func TestSlideElementClasses(t *testing.T) {
	em := ecs.NewEntityManager()
	el := NewSlideElement(em, em.CreateEntity())

	if el.HasClass("active") {
		t.Error("new element should not have class")
	}
	el.ToggleClass("active", true)
	if !el.HasClass("active") {
		t.Error("expected class after ToggleClass(true)")
	}
	el.ToggleClass("active", false)
	if el.HasClass("active") {
		t.Error("expected class removed after ToggleClass(false)")
	}
}

func TestLayerElementTransform(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &components.TransformComponent{Duration: 0.3})
	layer := NewLayerElement(em, id)

	// 过渡关闭时立即生效
	layer.SetTransform(-150, 0)
	if x, _ := layer.Offset(); x != -150 {
		t.Errorf("Offset() = %v, want -150", x)
	}

	// 过渡开启时只设置目标
	layer.SetTransition(true)
	layer.SetTransform(-600, 0)
	tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
	if tr.X != -150 || tr.TargetX != -600 || !tr.Animating {
		t.Errorf("unexpected transform %+v", tr)
	}

	// 关闭过渡时跳到目标
	layer.SetTransition(false)
	if x, _ := layer.Offset(); x != -600 {
		t.Errorf("Offset() = %v, want -600", x)
	}
}

func TestLayerElementChildrenOrder(t *testing.T) {
	em := ecs.NewEntityManager()
	a, b := em.CreateEntity(), em.CreateEntity()
	layerID := em.CreateEntity()
	// 顺序以 LayerComponent 为准，而非实体 ID
	em.AddComponent(layerID, &components.LayerComponent{Children: []ecs.EntityID{b, a}})

	children := NewLayerElement(em, layerID).Children()
	if len(children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(children))
	}
	if children[0].(*SlideElement).ID() != b || children[1].(*SlideElement).ID() != a {
		t.Error("children not in layer order")
	}
}

func TestViewportElementResize(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &components.ViewportComponent{Width: 800, Height: 600})
	vp := NewViewportElement(em, id)

	resizes := 0
	remove := vp.AddEventListener(dom.EventResize, func(ev *dom.Event) { resizes++ })

	if vp.Resize(800, 600) {
		t.Error("same size should not report a change")
	}
	if !vp.Resize(1024, 600) {
		t.Error("new size should report a change")
	}
	if resizes != 1 {
		t.Errorf("resize events = %d, want 1", resizes)
	}
	if vp.OffsetWidth() != 1024 {
		t.Errorf("OffsetWidth() = %v, want 1024", vp.OffsetWidth())
	}

	remove()
	vp.Resize(640, 480)
	if resizes != 1 {
		t.Errorf("listener still called after remove, resizes = %d", resizes)
	}
}
