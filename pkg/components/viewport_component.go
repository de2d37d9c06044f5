package components

// ViewportComponent 视口尺寸（窗口的逻辑尺寸）
type ViewportComponent struct {
	Width  float64
	Height float64
}
