package components

import "github.com/gonewx/carousel/pkg/utils"

// TransformComponent 滑动层的二维平移
//
// TargetX/TargetY 是最近一次 SetTransform 设置的值；
// X/Y 是实际绘制的值，开启过渡时由 TransitionSystem 从 FromX/FromY 缓动到目标值。
type TransformComponent struct {
	X, Y             float64
	TargetX, TargetY float64
	FromX, FromY     float64

	// 过渡设置
	TransitionEnabled bool
	Duration          float64 // 秒
	Easing            utils.EasingFunc

	// 过渡进度
	Elapsed   float64
	Animating bool
}

// SetTarget 设置新的目标平移
// 过渡关闭时立即生效，否则从当前绘制位置开始缓动
func (t *TransformComponent) SetTarget(x, y float64) {
	t.TargetX, t.TargetY = x, y
	if !t.TransitionEnabled || t.Duration <= 0 {
		t.X, t.Y = x, y
		t.Animating = false
		return
	}
	t.FromX, t.FromY = t.X, t.Y
	t.Elapsed = 0
	t.Animating = true
}

// SetTransition 开启或关闭过渡
// 关闭时进行中的过渡直接跳到目标值
func (t *TransformComponent) SetTransition(enabled bool) {
	t.TransitionEnabled = enabled
	if !enabled && t.Animating {
		t.X, t.Y = t.TargetX, t.TargetY
		t.Animating = false
	}
}
