package slide

// UpdatePosition 根据指针坐标计算候选偏移
// 副作用：更新 Movement
func (c *Controller) UpdatePosition(x float64) float64 {
	c.distance.Movement = (c.distance.StartX - x) * c.opts.sensitivity
	return c.distance.FinalPosition - c.distance.Movement
}

// MoveSlide 将偏移应用到滑动层并记录到 MovePosition
func (c *Controller) MoveSlide(offset float64) {
	c.distance.MovePosition = offset
	c.layer.SetTransform(offset, 0)
}

// Transition 开启或关闭滑动层的缓动过渡
func (c *Controller) Transition(enabled bool) {
	c.transition = enabled
	c.layer.SetTransition(enabled)
}
