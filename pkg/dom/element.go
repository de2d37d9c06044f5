package dom

// Element 可被轮播管理的元素
// 几何信息由宿主的布局引擎计算，控制器只读取
type Element interface {
	// OffsetLeft 元素相对于滑动层左边缘的偏移（像素）
	OffsetLeft() float64
	// OffsetWidth 元素宽度（像素）
	OffsetWidth() float64
	// ToggleClass 添加（on=true）或移除 class
	ToggleClass(name string, on bool)
	// HasClass 检查是否带有 class
	HasClass(name string) bool
}

// Layer 滑动层，直接子元素即为各个 slide
type Layer interface {
	Children() []Element
	// SetTransform 设置二维平移
	SetTransform(x, y float64)
	// SetTransition 开启/关闭变换的缓动过渡
	SetTransition(enabled bool)
}

// Viewport 视口（包裹层），接收手势与尺寸变化事件
type Viewport interface {
	EventTarget
	OffsetWidth() float64
}

// ClassSet 简单的 class 集合
type ClassSet map[string]struct{}

// Toggle 添加或移除 class
func (s ClassSet) Toggle(name string, on bool) {
	if on {
		s[name] = struct{}{}
		return
	}
	delete(s, name)
}

// Has 检查 class 是否存在
func (s ClassSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}
