package utils

import "time"

// Debouncer 基于帧时间的去抖器
//
// Trigger 开始（或重新开始）一个静默窗口；在窗口内没有新的 Trigger 时，
// 回调在 Update 推进到窗口结束的那一帧执行一次。
// 计时由游戏循环驱动，不创建 goroutine，回调总是在调用 Update 的线程上执行。
type Debouncer struct {
	window    float64 // 静默窗口（秒）
	remaining float64 // 剩余时间（秒）
	pending   bool
	fn        func()
}

// NewDebouncer 创建去抖器
func NewDebouncer(window time.Duration, fn func()) *Debouncer {
	return &Debouncer{
		window: window.Seconds(),
		fn:     fn,
	}
}

// Trigger 重置静默窗口
func (d *Debouncer) Trigger() {
	d.remaining = d.window
	d.pending = true
}

// Update 推进计时，窗口结束时执行回调
func (d *Debouncer) Update(deltaTime float64) {
	if !d.pending {
		return
	}
	d.remaining -= deltaTime
	if d.remaining > 0 {
		return
	}
	d.pending = false
	if d.fn != nil {
		d.fn()
	}
}

// Cancel 放弃待执行的回调
func (d *Debouncer) Cancel() {
	d.pending = false
	d.remaining = 0
}

// Pending 是否有待执行的回调
func (d *Debouncer) Pending() bool {
	return d.pending
}
