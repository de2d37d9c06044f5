package components

import "github.com/gonewx/carousel/pkg/ecs"

// LayerComponent 滑动层
// Children 的顺序就是 slide 的顺序
type LayerComponent struct {
	Children []ecs.EntityID

	// 布局参数
	CardWidthRatio  float64 // 卡片宽度 / 视口宽度
	CardHeightRatio float64 // 卡片高度 / 视口高度
	Gap             float64 // 卡片间距（像素）
}
