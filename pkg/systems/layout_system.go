package systems

import (
	"github.com/gonewx/carousel/pkg/components"
	"github.com/gonewx/carousel/pkg/ecs"
)

// LayoutSystem 横向排列滑动层中的卡片
//
// 卡片尺寸按视口尺寸的比例计算，首张卡片的 Left 为 0，
// 之后每张依次加上卡片宽度和间距。视口变化后下一帧即可读到新的几何。
type LayoutSystem struct {
	entityManager *ecs.EntityManager
}

// NewLayoutSystem 创建布局系统
func NewLayoutSystem(em *ecs.EntityManager) *LayoutSystem {
	return &LayoutSystem{entityManager: em}
}

// Update 重新计算所有卡片的 BoxComponent
func (s *LayoutSystem) Update(deltaTime float64) {
	viewportID, ok := ecs.First[*components.ViewportComponent](s.entityManager)
	if !ok {
		return
	}
	viewport, _ := ecs.GetComponent[*components.ViewportComponent](s.entityManager, viewportID)

	for _, layerID := range ecs.GetEntitiesWith1[*components.LayerComponent](s.entityManager) {
		layer, _ := ecs.GetComponent[*components.LayerComponent](s.entityManager, layerID)

		cardWidth := viewport.Width * layer.CardWidthRatio
		cardHeight := viewport.Height * layer.CardHeightRatio
		top := (viewport.Height - cardHeight) / 2

		left := 0.0
		for _, childID := range layer.Children {
			box := s.boxOf(childID)
			box.Left = left
			box.Top = top
			box.Width = cardWidth
			box.Height = cardHeight
			left += cardWidth + layer.Gap
		}

		layerBox := s.boxOf(layerID)
		layerBox.Width = left - layer.Gap
		if len(layer.Children) == 0 {
			layerBox.Width = 0
		}
		layerBox.Height = viewport.Height
	}
}

func (s *LayoutSystem) boxOf(id ecs.EntityID) *components.BoxComponent {
	box, ok := ecs.GetComponent[*components.BoxComponent](s.entityManager, id)
	if !ok {
		box = &components.BoxComponent{}
		s.entityManager.AddComponent(id, box)
	}
	return box
}
