package entities

import (
	"fmt"

	"github.com/gonewx/carousel/pkg/components"
	"github.com/gonewx/carousel/pkg/config"
	"github.com/gonewx/carousel/pkg/ecs"
	"github.com/gonewx/carousel/pkg/utils"
)

// Carousel 轮播相关实体及其 DOM 适配器
type Carousel struct {
	ViewportID ecs.EntityID
	LayerID    ecs.EntityID
	SlideIDs   []ecs.EntityID

	// Viewport 接收手势与尺寸变化事件
	Viewport *ViewportElement
	// Layer 滑动层，交给控制器驱动
	Layer *LayerElement
}

// NewCarousel 创建视口、滑动层和幻灯片实体
//
// 参数：
//   - em: 实体管理器
//   - cfg: 轮播配置（布局、缓动、幻灯片列表）
//   - width, height: 初始视口尺寸
//
// 返回：
//   - *Carousel: 实体 ID 与适配器
//   - error: 颜色或缓动名称无效
func NewCarousel(em *ecs.EntityManager, cfg *config.CarouselConfig, width, height float64) (*Carousel, error) {
	easing, err := utils.EasingByName(cfg.Layout.Easing)
	if err != nil {
		return nil, fmt.Errorf("layout easing: %w", err)
	}

	slideIDs := make([]ecs.EntityID, 0, len(cfg.Slides))
	for i, s := range cfg.Slides {
		rgba, err := s.RGBA()
		if err != nil {
			return nil, fmt.Errorf("slide #%d: %w", i, err)
		}
		id := em.CreateEntity()
		em.AddComponent(id, &components.CardComponent{Label: s.Label, Color: rgba})
		em.AddComponent(id, components.NewClassComponent())
		em.AddComponent(id, &components.BoxComponent{})
		slideIDs = append(slideIDs, id)
	}

	viewportID := em.CreateEntity()
	em.AddComponent(viewportID, &components.ViewportComponent{Width: width, Height: height})

	layerID := em.CreateEntity()
	em.AddComponent(layerID, &components.LayerComponent{
		Children:        slideIDs,
		CardWidthRatio:  cfg.Layout.CardWidthRatio,
		CardHeightRatio: cfg.Layout.CardHeightRatio,
		Gap:             cfg.Layout.Gap,
	})
	em.AddComponent(layerID, &components.BoxComponent{})
	em.AddComponent(layerID, &components.TransformComponent{
		Duration: float64(cfg.Layout.TransitionMS) / 1000.0,
		Easing:   easing,
	})

	return &Carousel{
		ViewportID: viewportID,
		LayerID:    layerID,
		SlideIDs:   slideIDs,
		Viewport:   NewViewportElement(em, viewportID),
		Layer:      NewLayerElement(em, layerID),
	}, nil
}
