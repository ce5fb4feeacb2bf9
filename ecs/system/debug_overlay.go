package system

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/deskcat/ecs"
	"github.com/milk9111/deskcat/ecs/component"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// DebugOverlaySystem prints animation state and outlines each frame so the
// bottom anchoring can be checked by eye.
type DebugOverlaySystem struct {
	face ebtext.Face
}

func NewDebugOverlaySystem() *DebugOverlaySystem {
	return &DebugOverlaySystem{face: ebtext.NewGoXFace(basicfont.Face7x13)}
}

func (d *DebugOverlaySystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if d == nil || w == nil || screen == nil {
		return
	}
	bounds := screen.Bounds()
	screenW := float64(bounds.Dx())
	screenH := float64(bounds.Dy())

	vector.StrokeLine(screen, 0, float32(screenH)-1, float32(screenW), float32(screenH)-1, 1, colornames.Red, false)

	lines := []string{fmt.Sprintf("fps %.1f  tps %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())}
	ents := w.Query(
		component.TransformComponent.ID(),
		component.SpriteSheetComponent.ID(),
		component.AnimationComponent.ID(),
	)
	for _, e := range ents {
		t, _ := ecs.Get(w, e, component.TransformComponent)
		s, _ := ecs.Get(w, e, component.SpriteSheetComponent)
		a, _ := ecs.Get(w, e, component.AnimationComponent)
		lines = append(lines, describe(e, a, t))

		src, ok := s.Atlas.Rect(a.Frame)
		if !ok {
			continue
		}
		scale := t.Scale
		if scale == 0 {
			scale = 1
		}
		fw := float64(src.Dx()) * scale
		fh := float64(src.Dy()) * scale
		cx, cy := ScreenPosition(t.X, t.Y, screenW, screenH)
		vector.StrokeRect(screen, float32(cx-fw/2), float32(cy-fh/2), float32(fw), float32(fh), 1, colornames.Lime, false)
	}

	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(8, 8)
	op.ColorScale.ScaleWithColor(colornames.White)
	op.LineSpacing = 16
	ebtext.Draw(screen, strings.Join(lines, "\n"), d.face, op)
}

func describe(e ecs.Entity, a *component.Animation, t *component.Transform) string {
	return fmt.Sprintf("%s %s frame %d [%d..%d] elapsed %s y %.1f",
		e, a.Clip, a.Frame, a.Frames.Start, a.Frames.End, a.Elapsed, t.Y)
}
