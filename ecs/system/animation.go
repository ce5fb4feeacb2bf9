package system

import (
	"time"

	"github.com/milk9111/deskcat/ecs"
	"github.com/milk9111/deskcat/ecs/component"
)

// AnimationSystem steps every Animation by the world's frame delta.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	dt := w.Delta()
	ecs.ForEach(w, component.AnimationComponent, func(_ ecs.Entity, anim *component.Animation) {
		Advance(anim, dt)
	})
}

// Advance adds dt to the animation timer and moves one frame forward for
// every full Interval accumulated, keeping the remainder. Frames wrap from
// End back to Start. A non-positive Interval never advances.
func Advance(a *component.Animation, dt time.Duration) {
	if a == nil {
		return
	}
	if !a.Frames.Contains(a.Frame) {
		a.Frame = a.Frames.Start
	}
	if dt > 0 {
		a.Elapsed += dt
	}
	if a.Interval <= 0 {
		return
	}
	for a.Elapsed >= a.Interval {
		a.Elapsed -= a.Interval
		a.Frame = nextFrame(a)
	}
}

func nextFrame(a *component.Animation) int {
	if a.Frame >= a.Frames.End {
		return a.Frames.Start
	}
	return a.Frame + 1
}
