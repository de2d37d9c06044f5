package slide

import (
	"log"

	"github.com/gonewx/carousel/pkg/dom"
)

// OnStart 手势开始（鼠标主键按下或触摸开始）
//
// 记录起点，关闭过渡使滑动层 1:1 跟随指针，并订阅对应通道的移动事件。
// 已有手势进行中时忽略新的按下（先按下的指针优先）。
// 触摸手势只跟踪开始时的触摸点，其他手指的移动与抬起被忽略。
func (c *Controller) OnStart(ev *dom.Event) {
	channel := ev.Type.Channel()
	if channel == dom.ChannelNone {
		return
	}
	if c.state == StateDragging {
		log.Printf("[SlideController] Ignoring %s: %s gesture already in progress", ev.Type, c.channel)
		return
	}
	if channel == dom.ChannelMouse {
		if ev.Button != dom.ButtonPrimary {
			return
		}
		ev.PreventDefault()
	}

	x, ok := ev.PointerX()
	if !ok {
		return
	}

	c.distance.StartX = x
	c.distance.Movement = 0
	c.distance.MovePosition = c.distance.FinalPosition
	c.Transition(false)

	c.state = StateDragging
	c.channel = channel
	if channel == dom.ChannelTouch {
		c.touchID = ev.ChangedTouches[0].Identifier
	}
	c.stopMove = c.wrapper.AddEventListener(channel.MoveEvent(), c.handler)
}

// OnMove 拖拽中：只更新视觉偏移，不改变索引
func (c *Controller) OnMove(ev *dom.Event) {
	if c.state != StateDragging || ev.Type.Channel() != c.channel {
		return
	}
	x, ok := c.trackedX(ev)
	if !ok {
		return
	}
	c.MoveSlide(c.UpdatePosition(x))
}

// OnEnd 手势结束：取消移动订阅，提交偏移，开启过渡，执行吸附策略
// 没有进行中的手势或通道不匹配时为空操作
func (c *Controller) OnEnd(ev *dom.Event) error {
	if c.state != StateDragging || ev.Type.Channel() != c.channel {
		return nil
	}
	if c.channel == dom.ChannelMouse && ev.Button != dom.ButtonPrimary {
		return nil
	}
	if _, ok := c.trackedX(ev); !ok {
		return nil
	}
	c.finishGesture()
	return c.DecideOnGestureEnd()
}

// OnCancel 手势被中断（pointercancel、touchcancel、窗口失去焦点）
// 释放移动订阅并吸附回当前 slide
func (c *Controller) OnCancel(ev *dom.Event) error {
	if c.state != StateDragging {
		return nil
	}
	if channel := ev.Type.Channel(); channel != dom.ChannelNone && channel != c.channel {
		return nil
	}
	// 不含触摸点的 touchcancel 视为整体中断
	if ev.Type == dom.EventTouchCancel && len(ev.ChangedTouches) > 0 {
		if _, ok := ev.TouchX(c.touchID); !ok {
			return nil
		}
	}
	log.Printf("[SlideController] Gesture cancelled by %s", ev.Type)
	c.finishGesture()
	c.distance.Movement = 0
	if len(c.slides) == 0 {
		return nil
	}
	return c.ChangeSlide(c.index.Active)
}

// trackedX 读取当前手势所跟踪指针的水平坐标
func (c *Controller) trackedX(ev *dom.Event) (float64, bool) {
	if c.channel == dom.ChannelTouch {
		return ev.TouchX(c.touchID)
	}
	return ev.PointerX()
}

func (c *Controller) finishGesture() {
	c.releaseMove()
	c.state = StateIdle
	c.channel = dom.ChannelNone
	c.distance.FinalPosition = c.distance.MovePosition
	c.Transition(true)
}

func (c *Controller) releaseMove() {
	if c.stopMove != nil {
		c.stopMove()
		c.stopMove = nil
	}
}
