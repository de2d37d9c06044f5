package slide

import "log"

// OnResize 视口尺寸变化，重置去抖窗口
func (c *Controller) OnResize() {
	c.debouncer.Trigger()
}

// reflow 去抖窗口结束后执行：重新计算几何并吸附到当前 slide
// 手势进行中只更新几何，吸附留给松手时完成
func (c *Controller) reflow() {
	c.ComputeGeometry()
	if len(c.slides) == 0 || c.state == StateDragging {
		return
	}

	active := c.index.Active
	if active > len(c.slides)-1 {
		active = len(c.slides) - 1
	}
	if err := c.ChangeSlide(active); err != nil {
		log.Printf("[SlideController] Warning: re-snap after resize failed: %v", err)
	}
}
