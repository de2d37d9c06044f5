package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig 配置校验失败
var ErrInvalidConfig = errors.New("invalid carousel config")

// CarouselConfig 轮播演示的顶层配置
//
// 配置文件位置: assets/config/carousel.yaml
// 也接受 .toml 文件，字段名与 YAML 相同。
// 文件中缺省的字段保留 DefaultCarouselConfig 中的默认值。
type CarouselConfig struct {
	// Window 窗口配置
	Window WindowConfig `yaml:"window" toml:"window"`

	// Carousel 手势与导航参数
	Carousel BehaviorConfig `yaml:"carousel" toml:"carousel"`

	// Layout 卡片布局与过渡动画
	Layout LayoutConfig `yaml:"layout" toml:"layout"`

	// Slides 幻灯片列表（为空时由 -slides 参数生成）
	Slides []SlideConfig `yaml:"slides" toml:"slides"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	Title  string `yaml:"title" toml:"title"`
}

// BehaviorConfig 手势与导航参数
type BehaviorConfig struct {
	// Sensitivity 拖拽灵敏度（位移 = 手指位移 × 灵敏度）
	Sensitivity float64 `yaml:"sensitivity" toml:"sensitivity"`

	// Threshold 切换到相邻幻灯片所需的最小位移（像素）
	Threshold float64 `yaml:"threshold" toml:"threshold"`

	// DebounceMS 窗口尺寸变化的防抖窗口（毫秒）
	DebounceMS int `yaml:"debounce_ms" toml:"debounce_ms"`

	// ActiveClass 当前幻灯片的标记 class
	ActiveClass string `yaml:"active_class" toml:"active_class"`

	// Diagnostics 是否输出几何诊断表
	Diagnostics bool `yaml:"diagnostics" toml:"diagnostics"`
}

// LayoutConfig 卡片布局与过渡动画
type LayoutConfig struct {
	// CardWidthRatio 卡片宽度占视口宽度的比例
	CardWidthRatio float64 `yaml:"card_width_ratio" toml:"card_width_ratio"`

	// CardHeightRatio 卡片高度占视口高度的比例
	CardHeightRatio float64 `yaml:"card_height_ratio" toml:"card_height_ratio"`

	// Gap 卡片间距（像素）
	Gap float64 `yaml:"gap" toml:"gap"`

	// TransitionMS 过渡动画时长（毫秒）
	TransitionMS int `yaml:"transition_ms" toml:"transition_ms"`

	// Easing 缓动函数名称（linear, ease-out-cubic, ease-in-out, ease-out-quad）
	Easing string `yaml:"easing" toml:"easing"`
}

// SlideConfig 单张幻灯片
type SlideConfig struct {
	Label string `yaml:"label" toml:"label"`

	// Color 十六进制颜色，格式 #RRGGBB 或 #RRGGBBAA
	Color string `yaml:"color" toml:"color"`
}

// defaultPalette DefaultSlides 循环使用的颜色
var defaultPalette = []string{
	"#E4572E", "#29335C", "#F3A712", "#669BBC", "#A8C686", "#8E5572",
}

// DefaultCarouselConfig 返回默认配置
func DefaultCarouselConfig() *CarouselConfig {
	return &CarouselConfig{
		Window: WindowConfig{Width: 960, Height: 540, Title: "Carousel"},
		Carousel: BehaviorConfig{
			Sensitivity: 1.6,
			Threshold:   120,
			DebounceMS:  220,
			ActiveClass: "active",
		},
		Layout: LayoutConfig{
			CardWidthRatio:  0.6,
			CardHeightRatio: 0.6,
			Gap:             24,
			TransitionMS:    300,
			Easing:          "ease-out-cubic",
		},
	}
}

// DefaultSlides 生成 n 张编号幻灯片
func DefaultSlides(n int) []SlideConfig {
	slides := make([]SlideConfig, 0, max(n, 0))
	for i := 0; i < n; i++ {
		slides = append(slides, SlideConfig{
			Label: fmt.Sprintf("Slide %d", i+1),
			Color: defaultPalette[i%len(defaultPalette)],
		})
	}
	return slides
}

// ParseCarouselConfig 解析 YAML 配置并校验
func ParseCarouselConfig(data []byte) (*CarouselConfig, error) {
	cfg := DefaultCarouselConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse carousel config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseCarouselConfigTOML 解析 TOML 配置并校验
func ParseCarouselConfigTOML(data []byte) (*CarouselConfig, error) {
	cfg := DefaultCarouselConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse carousel config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadCarouselConfig 从文件加载配置
// 扩展名为 .toml 时按 TOML 解析，其余按 YAML 解析
//
// 参数:
//   - path: 配置文件路径
//
// 返回:
//   - *CarouselConfig: 合并默认值后的配置
//   - error: 读取、解析或校验失败
func LoadCarouselConfig(path string) (*CarouselConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read carousel config %s: %w", path, err)
	}

	parse := ParseCarouselConfig
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		parse = ParseCarouselConfigTOML
	}
	cfg, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate 校验配置取值范围
func (c *CarouselConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Carousel.Sensitivity <= 0 {
		return fmt.Errorf("%w: sensitivity must be positive, got %v", ErrInvalidConfig, c.Carousel.Sensitivity)
	}
	if c.Carousel.Threshold < 0 {
		return fmt.Errorf("%w: threshold must not be negative, got %v", ErrInvalidConfig, c.Carousel.Threshold)
	}
	if c.Carousel.DebounceMS < 0 {
		return fmt.Errorf("%w: debounce_ms must not be negative, got %d", ErrInvalidConfig, c.Carousel.DebounceMS)
	}
	if c.Carousel.ActiveClass == "" {
		return fmt.Errorf("%w: active_class is empty", ErrInvalidConfig)
	}
	if c.Layout.CardWidthRatio <= 0 || c.Layout.CardWidthRatio > 1 {
		return fmt.Errorf("%w: card_width_ratio %v not in (0, 1]", ErrInvalidConfig, c.Layout.CardWidthRatio)
	}
	if c.Layout.CardHeightRatio <= 0 || c.Layout.CardHeightRatio > 1 {
		return fmt.Errorf("%w: card_height_ratio %v not in (0, 1]", ErrInvalidConfig, c.Layout.CardHeightRatio)
	}
	if c.Layout.Gap < 0 {
		return fmt.Errorf("%w: gap must not be negative, got %v", ErrInvalidConfig, c.Layout.Gap)
	}
	if c.Layout.TransitionMS < 0 {
		return fmt.Errorf("%w: transition_ms must not be negative, got %d", ErrInvalidConfig, c.Layout.TransitionMS)
	}
	for i, s := range c.Slides {
		if _, err := s.RGBA(); err != nil {
			return fmt.Errorf("%w: slide #%d: %v", ErrInvalidConfig, i, err)
		}
	}
	return nil
}

// RGBA 解析幻灯片颜色
func (s SlideConfig) RGBA() (color.RGBA, error) {
	return ParseHexColor(s.Color)
}

// ParseHexColor 解析 #RRGGBB 或 #RRGGBBAA
func ParseHexColor(hex string) (color.RGBA, error) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) != 6 && len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("bad color %q", hex)
	}
	if len(h) == 6 {
		h += "ff"
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", hex, err)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
