package systems

import (
	"github.com/gonewx/carousel/pkg/components"
	"github.com/gonewx/carousel/pkg/ecs"
	"github.com/gonewx/carousel/pkg/utils"
)

// TransitionSystem 推进滑动层的缓动过渡
type TransitionSystem struct {
	entityManager *ecs.EntityManager
}

// NewTransitionSystem 创建过渡系统
func NewTransitionSystem(em *ecs.EntityManager) *TransitionSystem {
	return &TransitionSystem{entityManager: em}
}

// Update 按帧时间推进过渡
func (s *TransitionSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.TransformComponent](s.entityManager) {
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		if !tr.Animating {
			continue
		}

		tr.Elapsed += deltaTime
		progress := 1.0
		if tr.Duration > 0 {
			progress = utils.Clamp01(tr.Elapsed / tr.Duration)
		}

		easing := tr.Easing
		if easing == nil {
			easing = utils.EaseOutCubic
		}
		eased := easing(progress)
		tr.X = utils.Lerp(tr.FromX, tr.TargetX, eased)
		tr.Y = utils.Lerp(tr.FromY, tr.TargetY, eased)

		if progress >= 1 {
			tr.X, tr.Y = tr.TargetX, tr.TargetY
			tr.Animating = false
		}
	}
}
