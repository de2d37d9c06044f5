package slide

import (
	"fmt"
	"log"
	"strings"

	"github.com/gonewx/carousel/pkg/dom"
)

// NoIndex 表示不存在的相邻索引
const NoIndex = -1

// Index 当前导航索引
// Prev = Active-1（Active 为 0 时为 NoIndex）
// Next = Active+1（Active 为最后一个时为 NoIndex）
type Index struct {
	Prev   int
	Active int
	Next   int
}

// HasPrev 是否存在上一张
func (i Index) HasPrev() bool {
	return i.Prev != NoIndex
}

// HasNext 是否存在下一张
func (i Index) HasNext() bool {
	return i.Next != NoIndex
}

// slidePosition 使元素在视口中水平居中的偏移
func slidePosition(el dom.Element, wrapperWidth float64) float64 {
	margin := (wrapperWidth - el.OffsetWidth()) / 2
	return -(el.OffsetLeft() - margin)
}

// ComputeGeometry 重新计算所有 slide 的居中偏移
func (c *Controller) ComputeGeometry() {
	children := c.layer.Children()
	wrapperWidth := c.wrapper.OffsetWidth()

	slides := make([]Slide, 0, len(children))
	for _, el := range children {
		slides = append(slides, Slide{
			Element:  el,
			Position: slidePosition(el, wrapperWidth),
		})
	}
	c.slides = slides

	if c.opts.diagnostics {
		c.logGeometry(wrapperWidth)
	}
}

func (c *Controller) logGeometry(wrapperWidth float64) {
	var b strings.Builder
	for i, s := range c.slides {
		fmt.Fprintf(&b, "\n  #%d left=%.1f width=%.1f position=%.1f",
			i, s.Element.OffsetLeft(), s.Element.OffsetWidth(), s.Position)
	}
	log.Printf("[SlideController] Geometry (wrapper=%.1f, %d slides):%s", wrapperWidth, len(c.slides), b.String())
}

// SetActiveIndex 根据 index 推导 prev/active/next
func (c *Controller) SetActiveIndex(index int) error {
	last := len(c.slides) - 1
	if index < 0 || index > last {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrIndexOutOfRange, index, last)
	}

	next := NoIndex
	if index < last {
		next = index + 1
	}
	prev := NoIndex
	if index > 0 {
		prev = index - 1
	}

	c.index = Index{Prev: prev, Active: index, Next: next}
	return nil
}

// ChangeSlide 吸附到指定 slide
// 更新索引、提交偏移，并把 active class 唯一地分配给该 slide
func (c *Controller) ChangeSlide(index int) error {
	if err := c.SetActiveIndex(index); err != nil {
		return err
	}

	target := c.slides[index]
	c.MoveSlide(target.Position)
	c.distance.FinalPosition = target.Position
	c.changeActiveClass()

	if c.opts.onChange != nil {
		c.opts.onChange(c.index)
	}
	return nil
}

func (c *Controller) changeActiveClass() {
	for i, s := range c.slides {
		s.Element.ToggleClass(c.opts.activeClass, i == c.index.Active)
	}
}

// DecideOnGestureEnd 松手后的吸附策略
//
// 向左拖（Movement 为正）超过阈值且有下一张时前进，
// 向右拖超过阈值且有上一张时后退，否则回到当前 slide。
func (c *Controller) DecideOnGestureEnd() error {
	if len(c.slides) == 0 {
		return nil
	}

	movement := c.distance.Movement
	switch {
	case movement > c.opts.threshold && c.index.HasNext():
		return c.ChangeSlide(c.index.Next)
	case movement < -c.opts.threshold && c.index.HasPrev():
		return c.ChangeSlide(c.index.Prev)
	default:
		return c.ChangeSlide(c.index.Active)
	}
}

// GoNext 前进一张，已经是最后一张或手势进行中时为空操作
func (c *Controller) GoNext() error {
	if c.state == StateDragging || !c.index.HasNext() {
		return nil
	}
	return c.ChangeSlide(c.index.Next)
}

// GoPrev 后退一张，已经是第一张或手势进行中时为空操作
func (c *Controller) GoPrev() error {
	if c.state == StateDragging || !c.index.HasPrev() {
		return nil
	}
	return c.ChangeSlide(c.index.Prev)
}
