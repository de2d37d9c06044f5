package dom

// Handler 事件处理函数
type Handler func(*Event)

// EventTarget 可订阅事件的对象
type EventTarget interface {
	// AddEventListener 订阅事件，返回取消订阅函数
	// 取消函数可以重复调用，第二次及以后为空操作
	AddEventListener(t EventType, h Handler) (remove func())
}

type listener struct {
	id uint64
	fn Handler
}

// Listeners 是 EventTarget 的通用实现
// 单线程使用：订阅、取消和分发都必须在同一个事件循环中调用
type Listeners struct {
	nextID   uint64
	handlers map[EventType][]listener
}

// NewListeners 创建空的监听器表
func NewListeners() *Listeners {
	return &Listeners{
		handlers: make(map[EventType][]listener),
	}
}

// AddEventListener 订阅事件
func (l *Listeners) AddEventListener(t EventType, h Handler) func() {
	if l.handlers == nil {
		l.handlers = make(map[EventType][]listener)
	}
	l.nextID++
	id := l.nextID
	l.handlers[t] = append(l.handlers[t], listener{id: id, fn: h})

	return func() {
		l.remove(t, id)
	}
}

func (l *Listeners) remove(t EventType, id uint64) {
	list := l.handlers[t]
	for i, entry := range list {
		if entry.id == id {
			l.handlers[t] = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	if len(l.handlers[t]) == 0 {
		delete(l.handlers, t)
	}
}

// Dispatch 将事件分发给所有订阅者
// 分发前先复制订阅列表，处理函数内的订阅/取消只影响下一次分发
func (l *Listeners) Dispatch(ev *Event) {
	list := l.handlers[ev.Type]
	if len(list) == 0 {
		return
	}
	snapshot := make([]listener, len(list))
	copy(snapshot, list)
	for _, entry := range snapshot {
		entry.fn(ev)
	}
}

// Count 返回某类事件的订阅数量
func (l *Listeners) Count(t EventType) int {
	return len(l.handlers[t])
}

// Total 返回所有事件的订阅总数
func (l *Listeners) Total() int {
	total := 0
	for _, list := range l.handlers {
		total += len(list)
	}
	return total
}
