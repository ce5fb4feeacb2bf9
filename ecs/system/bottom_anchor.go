package system

import (
	"github.com/milk9111/deskcat/ecs"
	"github.com/milk9111/deskcat/ecs/component"
	"github.com/milk9111/deskcat/platform"
	"go.uber.org/zap"
)

// FrameGeometry resolves the rendered pixel height of a sheet frame.
type FrameGeometry interface {
	FrameHeight(index int) (float64, bool)
}

// AnchorY is the Y translation that puts the bottom edge of a frame of
// height frameH, drawn at scale, on the bottom edge of a screen of height
// screenH whose origin is its centre.
func AnchorY(screenH, frameH, scale float64) float64 {
	return -(screenH / 2) + (frameH*scale)/2
}

// BottomAnchorSystem pins anchored entities to the bottom of the display.
// It must run after AnimationSystem so the post-advance frame is measured.
type BottomAnchorSystem struct {
	display platform.Display
	log     *zap.Logger

	displayLost bool
	missing     map[ecs.Entity]int
}

func NewBottomAnchorSystem(display platform.Display, log *zap.Logger) *BottomAnchorSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &BottomAnchorSystem{
		display: display,
		log:     log,
		missing: make(map[ecs.Entity]int),
	}
}

func (s *BottomAnchorSystem) Update(w *ecs.World) {
	var (
		screenH float64
		ok      bool
	)
	if s.display != nil {
		screenH, ok = s.display.ClientHeight()
	}
	if !ok {
		if !s.displayLost {
			s.log.Warn("primary display unavailable, skipping bottom anchor")
			s.displayLost = true
		}
		return
	}
	if s.displayLost {
		s.log.Info("primary display available again", zap.Float64("height", screenH))
		s.displayLost = false
	}

	ents := w.Query(
		component.BottomAnchorComponent.ID(),
		component.AnimationComponent.ID(),
		component.TransformComponent.ID(),
		component.SpriteSheetComponent.ID(),
	)
	for _, e := range ents {
		anim, _ := ecs.Get(w, e, component.AnimationComponent)
		transform, _ := ecs.Get(w, e, component.TransformComponent)
		sheet, _ := ecs.Get(w, e, component.SpriteSheetComponent)

		frameH, ok := s.frameHeight(sheet, anim.Frame)
		if !ok {
			if last, seen := s.missing[e]; !seen || last != anim.Frame {
				s.log.Warn("no frame geometry, skipping bottom anchor",
					zap.Stringer("entity", e),
					zap.Int("frame", anim.Frame),
				)
				s.missing[e] = anim.Frame
			}
			continue
		}
		delete(s.missing, e)

		transform.Y = AnchorY(screenH, frameH, transform.Scale)
	}
}

func (s *BottomAnchorSystem) frameHeight(sheet *component.SpriteSheet, frame int) (float64, bool) {
	if sheet == nil || sheet.Atlas == nil {
		return 0, false
	}
	var geom FrameGeometry = sheet.Atlas
	return geom.FrameHeight(frame)
}
