package slide

import "errors"

var (
	// ErrIndexOutOfRange 导航索引超出 [0, len-1]
	ErrIndexOutOfRange = errors.New("slide index out of range")
	// ErrConfiguration 构造参数缺失或非法
	ErrConfiguration = errors.New("slide controller misconfigured")
	// ErrAlreadyInitialized Init 被重复调用
	ErrAlreadyInitialized = errors.New("slide controller already initialized")
	// ErrUnknownEvent Handle 收到无法识别的事件类型
	ErrUnknownEvent = errors.New("unknown slide event")
)
