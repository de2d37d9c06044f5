package components

import "github.com/gonewx/carousel/pkg/dom"

// ClassComponent 元素的 class 集合（例如 "active"）
type ClassComponent struct {
	Classes dom.ClassSet
}

// NewClassComponent 创建空的 class 集合
func NewClassComponent() *ClassComponent {
	return &ClassComponent{Classes: dom.ClassSet{}}
}
