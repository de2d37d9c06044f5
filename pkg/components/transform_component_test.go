package components

import (
	"testing"

	"github.com/gonewx/carousel/pkg/utils"
)

// TestTransformSetTargetWithoutTransition 测试过渡关闭时立即生效
func TestTransformSetTargetWithoutTransition(t *testing.T) {
	tr := &TransformComponent{Duration: 0.3, Easing: utils.EaseOutCubic}
	tr.SetTarget(-120, 0)

	if tr.X != -120 || tr.TargetX != -120 {
		t.Errorf("X = %v, TargetX = %v, want -120", tr.X, tr.TargetX)
	}
	if tr.Animating {
		t.Error("Animating should be false without transition")
	}
}

// TestTransformSetTargetWithTransition 测试过渡开启时从当前位置开始缓动
func TestTransformSetTargetWithTransition(t *testing.T) {
	tr := &TransformComponent{Duration: 0.3, Easing: utils.EaseOutCubic}
	tr.SetTarget(-100, 0)
	tr.SetTransition(true)
	tr.SetTarget(-400, 0)

	if tr.X != -100 || tr.FromX != -100 {
		t.Errorf("X = %v, FromX = %v, want -100", tr.X, tr.FromX)
	}
	if tr.TargetX != -400 || !tr.Animating || tr.Elapsed != 0 {
		t.Errorf("unexpected transition state: %+v", tr)
	}
}

// TestTransformDisableTransitionFinishes 测试关闭过渡时跳到目标值
func TestTransformDisableTransitionFinishes(t *testing.T) {
	tr := &TransformComponent{Duration: 0.3, TransitionEnabled: true}
	tr.SetTarget(-300, 0)
	tr.SetTransition(false)

	if tr.X != -300 || tr.Animating {
		t.Errorf("X = %v, Animating = %v, want -300 / false", tr.X, tr.Animating)
	}
}
