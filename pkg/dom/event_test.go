package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventTypeClassification(t *testing.T) {
	tests := []struct {
		typ     EventType
		kind    Kind
		channel Channel
	}{
		{EventMouseDown, KindStart, ChannelMouse},
		{EventMouseMove, KindMove, ChannelMouse},
		{EventMouseUp, KindEnd, ChannelMouse},
		{EventPointerCancel, KindCancel, ChannelNone},
		{EventTouchStart, KindStart, ChannelTouch},
		{EventTouchMove, KindMove, ChannelTouch},
		{EventTouchEnd, KindEnd, ChannelTouch},
		{EventTouchCancel, KindCancel, ChannelTouch},
		{EventBlur, KindCancel, ChannelNone},
		{EventResize, KindResize, ChannelNone},
		{EventType("keydown"), KindUnknown, ChannelNone},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.typ.Kind())
			assert.Equal(t, tt.channel, tt.typ.Channel())
		})
	}
}

func TestChannelMoveEvent(t *testing.T) {
	assert.Equal(t, EventMouseMove, ChannelMouse.MoveEvent())
	assert.Equal(t, EventTouchMove, ChannelTouch.MoveEvent())
	assert.Equal(t, "touch", ChannelTouch.String())
	assert.Equal(t, "cancel", KindCancel.String())
}

func TestPointerX(t *testing.T) {
	x, ok := NewMouseEvent(EventMouseDown, 120, 40).PointerX()
	require.True(t, ok)
	assert.Equal(t, 120.0, x)

	x, ok = NewTouchEvent(EventTouchStart, 7, 300, 10).PointerX()
	require.True(t, ok)
	assert.Equal(t, 300.0, x)

	// 没有触摸点的触摸事件无法取坐标
	_, ok = (&Event{Type: EventTouchEnd}).PointerX()
	assert.False(t, ok)
}

func TestTouchX(t *testing.T) {
	ev := &Event{
		Type: EventTouchMove,
		ChangedTouches: []Touch{
			{Identifier: 2, ClientX: 50},
			{Identifier: 1, ClientX: 180},
		},
	}

	x, ok := ev.TouchX(1)
	require.True(t, ok)
	assert.Equal(t, 180.0, x)

	_, ok = ev.TouchX(5)
	assert.False(t, ok)
}

func TestPreventDefault(t *testing.T) {
	ev := NewMouseEvent(EventMouseDown, 0, 0)
	assert.False(t, ev.DefaultPrevented())
	ev.PreventDefault()
	assert.True(t, ev.DefaultPrevented())
	assert.Equal(t, ButtonPrimary, ev.Button)
}
