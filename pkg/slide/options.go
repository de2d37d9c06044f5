package slide

import (
	"fmt"
	"time"

	"github.com/gonewx/carousel/pkg/utils"
)

const (
	// DefaultSensitivity 拖拽灵敏度：手势位移放大系数
	DefaultSensitivity = 1.6
	// DefaultThreshold 切换阈值（放大后的位移，像素）
	DefaultThreshold = 120.0
	// DefaultDebounceWindow 尺寸变化的去抖窗口
	DefaultDebounceWindow = 220 * time.Millisecond
	// DefaultActiveClass 当前 slide 的 class 标记
	DefaultActiveClass = "active"
)

// Debouncer 去抖器
// Trigger 每次调用都会重置静默窗口，窗口结束后回调只执行一次
// Update 由宿主的游戏循环每帧调用，推进内部计时
type Debouncer interface {
	Trigger()
	Update(deltaTime float64)
	Cancel()
}

// DebouncerFactory 根据窗口和回调创建去抖器
type DebouncerFactory func(window time.Duration, fn func()) Debouncer

func defaultDebouncer(window time.Duration, fn func()) Debouncer {
	return utils.NewDebouncer(window, fn)
}

type options struct {
	sensitivity    float64
	threshold      float64
	debounceWindow time.Duration
	newDebouncer   DebouncerFactory
	activeClass    string
	initialIndex   int
	diagnostics    bool
	onChange       func(Index)
}

func defaultOptions() options {
	return options{
		sensitivity:    DefaultSensitivity,
		threshold:      DefaultThreshold,
		debounceWindow: DefaultDebounceWindow,
		newDebouncer:   defaultDebouncer,
		activeClass:    DefaultActiveClass,
	}
}

func (o options) validate() error {
	if o.sensitivity <= 0 {
		return fmt.Errorf("%w: sensitivity must be positive, got %v", ErrConfiguration, o.sensitivity)
	}
	if o.threshold < 0 {
		return fmt.Errorf("%w: threshold must not be negative, got %v", ErrConfiguration, o.threshold)
	}
	if o.debounceWindow < 0 {
		return fmt.Errorf("%w: debounce window must not be negative, got %v", ErrConfiguration, o.debounceWindow)
	}
	if o.newDebouncer == nil {
		return fmt.Errorf("%w: debouncer factory is nil", ErrConfiguration)
	}
	if o.activeClass == "" {
		return fmt.Errorf("%w: active class is empty", ErrConfiguration)
	}
	if o.initialIndex < 0 {
		return fmt.Errorf("%w: initial index %d is negative", ErrConfiguration, o.initialIndex)
	}
	return nil
}

// Option 控制器配置项
type Option func(*options)

// WithSensitivity 设置拖拽灵敏度
func WithSensitivity(v float64) Option {
	return func(o *options) { o.sensitivity = v }
}

// WithThreshold 设置切换阈值
func WithThreshold(v float64) Option {
	return func(o *options) { o.threshold = v }
}

// WithDebounceWindow 设置尺寸变化的去抖窗口
func WithDebounceWindow(d time.Duration) Option {
	return func(o *options) { o.debounceWindow = d }
}

// WithDebouncer 替换去抖器实现
func WithDebouncer(f DebouncerFactory) Option {
	return func(o *options) { o.newDebouncer = f }
}

// WithActiveClass 设置当前 slide 的 class 名称
func WithActiveClass(name string) Option {
	return func(o *options) { o.activeClass = name }
}

// WithInitialIndex 设置 Init 后停留的 slide
func WithInitialIndex(i int) Option {
	return func(o *options) { o.initialIndex = i }
}

// WithDiagnostics 每次重新计算几何时输出 slide 位置表
func WithDiagnostics(enabled bool) Option {
	return func(o *options) { o.diagnostics = enabled }
}

// WithOnChange 注册 slide 切换回调
func WithOnChange(fn func(Index)) Option {
	return func(o *options) { o.onChange = fn }
}
