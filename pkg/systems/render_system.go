package systems

import (
	"image/color"

	"github.com/gonewx/carousel/pkg/components"
	"github.com/gonewx/carousel/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// labelFace 卡片标题字体
var labelFace = text.NewGoXFace(basicfont.Face7x13)

var (
	labelShadowColor  = color.RGBA{0, 0, 0, 120}
	activeBorderColor = color.RGBA{255, 255, 255, 255}
	dotColor          = color.RGBA{255, 255, 255, 90}
	activeDotColor    = color.RGBA{255, 255, 255, 230}
)

const (
	dotRadius  = 5
	dotSpacing = 18
	dotMargin  = 24
)

// CardRect 卡片在屏幕上的绘制区域
type CardRect struct {
	ID     ecs.EntityID
	X, Y   float64
	Width  float64
	Height float64
	Active bool
	Label  string
	Color  color.RGBA
}

// RenderSystem 绘制滑动层中的卡片和底部的位置指示点
type RenderSystem struct {
	entityManager *ecs.EntityManager
	activeClass   string
}

// NewRenderSystem 创建渲染系统
// activeClass 是当前卡片的 class 名称，带有该 class 的卡片会绘制高亮边框
func NewRenderSystem(em *ecs.EntityManager, activeClass string) *RenderSystem {
	return &RenderSystem{entityManager: em, activeClass: activeClass}
}

// CardRects 计算所有卡片的屏幕矩形（滑动层平移 + 卡片布局）
func (s *RenderSystem) CardRects() []CardRect {
	rects := make([]CardRect, 0)
	for _, layerID := range ecs.GetEntitiesWith1[*components.LayerComponent](s.entityManager) {
		layer, _ := ecs.GetComponent[*components.LayerComponent](s.entityManager, layerID)

		var offsetX, offsetY float64
		if tr, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, layerID); ok {
			offsetX, offsetY = tr.X, tr.Y
		}

		for _, childID := range layer.Children {
			box, ok := ecs.GetComponent[*components.BoxComponent](s.entityManager, childID)
			if !ok {
				continue
			}
			rect := CardRect{
				ID:     childID,
				X:      offsetX + box.Left,
				Y:      offsetY + box.Top,
				Width:  box.Width,
				Height: box.Height,
			}
			if card, ok := ecs.GetComponent[*components.CardComponent](s.entityManager, childID); ok {
				rect.Label = card.Label
				rect.Color = card.Color
			}
			if classes, ok := ecs.GetComponent[*components.ClassComponent](s.entityManager, childID); ok {
				rect.Active = classes.Classes.Has(s.activeClass)
			}
			rects = append(rects, rect)
		}
	}
	return rects
}

// Draw 绘制卡片与指示点
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	screenWidth := float64(bounds.Dx())
	screenHeight := float64(bounds.Dy())

	rects := s.CardRects()
	for _, r := range rects {
		// 跳过完全在屏幕外的卡片
		if r.X+r.Width < 0 || r.X > screenWidth {
			continue
		}
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), r.Color, true)
		if r.Active {
			vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 4, activeBorderColor, true)
		}
		if r.Label != "" {
			drawLabel(screen, r.Label, r.X+12, r.Y+12)
		}
	}

	// 指示点
	total := float64(len(rects)-1) * dotSpacing
	startX := (screenWidth - total) / 2
	y := screenHeight - dotMargin
	for i, r := range rects {
		c := dotColor
		if r.Active {
			c = activeDotColor
		}
		vector.DrawFilledCircle(screen, float32(startX+float64(i)*dotSpacing), float32(y), dotRadius, c, true)
	}
}

// drawLabel 绘制带阴影的标题
func drawLabel(screen *ebiten.Image, label string, x, y float64) {
	shadowOp := &text.DrawOptions{}
	shadowOp.GeoM.Translate(x+1, y+1)
	shadowOp.ColorScale.ScaleWithColor(labelShadowColor)
	text.Draw(screen, label, labelFace, shadowOp)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, label, labelFace, op)
}
