package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/deskcat/ecs"
	"github.com/milk9111/deskcat/ecs/component"
)

// RenderSystem draws the current frame of every sprite sheet entity.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}

	entities := w.Query(
		component.TransformComponent.ID(),
		component.SpriteSheetComponent.ID(),
		component.AnimationComponent.ID(),
	)
	sort.SliceStable(entities, func(i, j int) bool {
		return layerOf(w, entities[i]) < layerOf(w, entities[j])
	})

	bounds := screen.Bounds()
	screenW := float64(bounds.Dx())
	screenH := float64(bounds.Dy())

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent)
		s, _ := ecs.Get(w, e, component.SpriteSheetComponent)
		a, _ := ecs.Get(w, e, component.AnimationComponent)
		if s.Image == nil {
			continue
		}
		src, ok := s.Atlas.Rect(a.Frame)
		if !ok {
			continue
		}
		frame, ok := s.Image.SubImage(src).(*ebiten.Image)
		if !ok {
			continue
		}

		scale := t.Scale
		if scale == 0 {
			scale = 1
		}
		sx, sy := ScreenPosition(t.X, t.Y, screenW, screenH)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(src.Dx())/2, -float64(src.Dy())/2)
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(sx, sy)
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(frame, op)
	}
}

// ScreenPosition maps a centre-origin, Y-up world position to Ebitengine's
// top-left-origin, Y-down screen space.
func ScreenPosition(x, y, screenW, screenH float64) (float64, float64) {
	return screenW/2 + x, screenH/2 - y
}

func layerOf(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent); ok {
		return layer.Index
	}
	return 0
}
