package components

// BoxComponent 布局结果（相对于父元素的矩形）
// 由 LayoutSystem 每帧写入，相当于 DOM 的 offsetLeft/offsetTop/offsetWidth/offsetHeight
type BoxComponent struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Right 右边缘
func (b *BoxComponent) Right() float64 {
	return b.Left + b.Width
}
