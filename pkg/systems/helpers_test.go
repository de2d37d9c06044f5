package systems

import (
	"image/color"

	"github.com/gonewx/carousel/pkg/components"
	"github.com/gonewx/carousel/pkg/ecs"
)

// newTestCarousel 创建视口 + 滑动层 + n 张卡片
func newTestCarousel(width, height float64, n int) (*ecs.EntityManager, ecs.EntityID, []ecs.EntityID) {
	em := ecs.NewEntityManager()

	viewport := em.CreateEntity()
	em.AddComponent(viewport, &components.ViewportComponent{Width: width, Height: height})

	layer := em.CreateEntity()
	children := make([]ecs.EntityID, 0, n)
	for i := 0; i < n; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &components.CardComponent{Label: string(rune('A' + i)), Color: color.RGBA{R: uint8(i), A: 255}})
		em.AddComponent(id, components.NewClassComponent())
		children = append(children, id)
	}
	em.AddComponent(layer, &components.LayerComponent{
		Children:        children,
		CardWidthRatio:  0.5,
		CardHeightRatio: 0.5,
		Gap:             20,
	})
	em.AddComponent(layer, &components.TransformComponent{Duration: 0.3})
	return em, layer, children
}
