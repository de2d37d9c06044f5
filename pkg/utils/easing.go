package utils

import (
	"fmt"
	"math"
)

// Easing Functions (缓动函数)
//
// 所有函数接受进度 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 参考：https://easings.net/

// EasingFunc 缓动函数类型
type EasingFunc func(t float64) float64

// EaseLinear 线性缓动（匀速）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出：开始快，结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutCubic 三次方缓入缓出
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutQuad 二次方缓出（比 Cubic 更柔和）
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// easingByName 配置文件中可用的缓动名称
var easingByName = map[string]EasingFunc{
	"linear":         EaseLinear,
	"ease-out-cubic": EaseOutCubic,
	"ease-in-out":    EaseInOutCubic,
	"ease-out-quad":  EaseOutQuad,
}

// EasingByName 根据名称查找缓动函数，空名称返回 EaseOutCubic
func EasingByName(name string) (EasingFunc, error) {
	if name == "" {
		return EaseOutCubic, nil
	}
	fn, ok := easingByName[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q", name)
	}
	return fn, nil
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 将 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
