package components

import "image/color"

// CardComponent slide 卡片的外观
type CardComponent struct {
	Label string
	Color color.RGBA
}
