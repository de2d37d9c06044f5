package systems

import (
	"math"
	"testing"

	"github.com/gonewx/carousel/pkg/components"
	"github.com/gonewx/carousel/pkg/ecs"
	"github.com/gonewx/carousel/pkg/utils"
)

// TestTransitionSystem_Animates 测试过渡从起点缓动到目标
func TestTransitionSystem_Animates(t *testing.T) {
	em, layer, _ := newTestCarousel(800, 400, 2)
	tr, _ := ecs.GetComponent[*components.TransformComponent](em, layer)
	tr.Easing = utils.EaseLinear
	tr.SetTransition(true)
	tr.SetTarget(-300, 0)

	system := NewTransitionSystem(em)

	system.Update(0.15) // 一半
	if math.Abs(tr.X-(-150)) > 1e-9 {
		t.Errorf("X at half = %v, want -150", tr.X)
	}
	if !tr.Animating {
		t.Error("transition should still be running")
	}

	system.Update(0.2)
	if tr.X != -300 || tr.Animating {
		t.Errorf("X = %v, Animating = %v, want -300 / false", tr.X, tr.Animating)
	}
}

// TestTransitionSystem_DefaultEasing 测试未设置缓动函数时使用默认值
func TestTransitionSystem_DefaultEasing(t *testing.T) {
	em, layer, _ := newTestCarousel(800, 400, 1)
	tr, _ := ecs.GetComponent[*components.TransformComponent](em, layer)
	tr.SetTransition(true)
	tr.SetTarget(100, 0)

	NewTransitionSystem(em).Update(0.15)

	want := utils.EaseOutCubic(0.5) * 100
	if math.Abs(tr.X-want) > 1e-9 {
		t.Errorf("X = %v, want %v", tr.X, want)
	}
}

// TestTransitionSystem_Idle 测试没有过渡时不修改位置
func TestTransitionSystem_Idle(t *testing.T) {
	em, layer, _ := newTestCarousel(800, 400, 1)
	tr, _ := ecs.GetComponent[*components.TransformComponent](em, layer)
	tr.SetTarget(-42, 0)

	NewTransitionSystem(em).Update(1)
	if tr.X != -42 {
		t.Errorf("X = %v, want -42", tr.X)
	}
}
