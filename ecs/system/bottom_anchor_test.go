package system

import (
	"image"
	"testing"

	"github.com/milk9111/deskcat/anim"
	"github.com/milk9111/deskcat/atlas"
	"github.com/milk9111/deskcat/ecs"
	"github.com/milk9111/deskcat/ecs/component"
	"github.com/milk9111/deskcat/platform"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// switchDisplay lets a test drop the display between frames.
type switchDisplay struct {
	height float64
	ok     bool
}

func (d *switchDisplay) ClientHeight() (float64, bool) {
	return d.height, d.ok
}

// sleepLayout gives the sleep frames (48..51) heights 16, 14, 12 and 10.
func sleepLayout() *atlas.Layout {
	frames := make([]image.Rectangle, 52)
	for i := range frames {
		frames[i] = image.Rect(0, 0, 16, 16)
	}
	for i, h := range []int{16, 14, 12, 10} {
		frames[48+i] = image.Rect(0, 16-h, 16, 16)
	}
	return atlas.NewLayout(frames)
}

func spawnPet(t *testing.T, w *ecs.World, layout *atlas.Layout, scale, y float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	add := func(err error) {
		if err != nil {
			t.Fatal(err)
		}
	}
	add(ecs.Add(w, e, component.BottomAnchorComponent, component.BottomAnchor{}))
	add(ecs.Add(w, e, component.AnimationComponent, component.NewAnimation(anim.Default(), anim.Sleep, interval)))
	add(ecs.Add(w, e, component.TransformComponent, component.Transform{Y: y, Scale: scale}))
	add(ecs.Add(w, e, component.SpriteSheetComponent, component.SpriteSheet{Atlas: layout}))
	return e
}

func transformY(t *testing.T, w *ecs.World, e ecs.Entity) float64 {
	t.Helper()
	tr, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		t.Fatalf("entity %s has no transform", e)
	}
	return tr.Y
}

func TestAnchorY(t *testing.T) {
	cases := []struct {
		name    string
		screenH float64
		frameH  float64
		scale   float64
		want    float64
	}{
		{"scaled_cat", 1000, 16, 6, -452},
		{"unscaled", 720, 16, 1, -352},
		{"frame_fills_screen", 100, 100, 1, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := AnchorY(c.screenH, c.frameH, c.scale); got != c.want {
				t.Fatalf("AnchorY = %v, want %v", got, c.want)
			}
		})
	}
}

func TestBottomAnchorSystem(t *testing.T) {
	w := ecs.NewWorld()
	e := spawnPet(t, w, sleepLayout(), 6, 0)
	sys := NewBottomAnchorSystem(platform.StaticDisplay{Height: 1000}, nil)

	sys.Update(w)
	if y := transformY(t, w, e); y != -452 {
		t.Fatalf("expected -452, got %v", y)
	}

	sys.Update(w)
	if y := transformY(t, w, e); y != -452 {
		t.Fatalf("second update with the same inputs changed y to %v", y)
	}
}

func TestBottomAnchorUsesPostAdvanceFrame(t *testing.T) {
	w := ecs.NewWorld()
	e := spawnPet(t, w, sleepLayout(), 6, 0)
	sched := ecs.NewScheduler(
		NewAnimationSystem(),
		NewBottomAnchorSystem(platform.StaticDisplay{Height: 1000}, nil),
	)

	w.SetDelta(interval)
	sched.Update(w)

	// frame 49 is 14px tall: -500 + 14*6/2
	if y := transformY(t, w, e); y != -458 {
		t.Fatalf("expected y for frame 49 (-458), got %v", y)
	}
}

func TestBottomAnchorFollowsResize(t *testing.T) {
	w := ecs.NewWorld()
	e := spawnPet(t, w, sleepLayout(), 1, 0)
	display := platform.NewWindowDisplay()
	sys := NewBottomAnchorSystem(display, nil)

	display.Report(800, 600)
	sys.Update(w)
	if y := transformY(t, w, e); y != -292 {
		t.Fatalf("expected -292, got %v", y)
	}

	display.Report(800, 400)
	sys.Update(w)
	if y := transformY(t, w, e); y != -192 {
		t.Fatalf("expected -192 after resize, got %v", y)
	}
}

func TestBottomAnchorSkipsWithoutDisplay(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	w := ecs.NewWorld()
	a := spawnPet(t, w, sleepLayout(), 6, 12.5)
	b := spawnPet(t, w, sleepLayout(), 2, -3)

	display := &switchDisplay{}
	sys := NewBottomAnchorSystem(display, zap.New(core))

	for i := 0; i < 3; i++ {
		sys.Update(w)
	}
	if y := transformY(t, w, a); y != 12.5 {
		t.Fatalf("expected a untouched at 12.5, got %v", y)
	}
	if y := transformY(t, w, b); y != -3 {
		t.Fatalf("expected b untouched at -3, got %v", y)
	}
	if n := logs.FilterLevelExact(zapcore.WarnLevel).Len(); n != 1 {
		t.Fatalf("expected one warning for a persisting outage, got %d", n)
	}

	display.height, display.ok = 1000, true
	sys.Update(w)
	if y := transformY(t, w, a); y != -452 {
		t.Fatalf("expected anchoring to resume at -452, got %v", y)
	}
	if n := logs.FilterMessage("primary display available again").Len(); n != 1 {
		t.Fatalf("expected a recovery log line, got %d", n)
	}
}

func TestBottomAnchorSkipsMissingGeometry(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	w := ecs.NewWorld()

	short := atlas.NewLayout(make([]image.Rectangle, 10))
	orphan := spawnPet(t, w, short, 6, 7)
	healthy := spawnPet(t, w, sleepLayout(), 6, 0)

	sys := NewBottomAnchorSystem(platform.StaticDisplay{Height: 1000}, zap.New(core))
	sys.Update(w)
	sys.Update(w)

	if y := transformY(t, w, orphan); y != 7 {
		t.Fatalf("entity without geometry must keep y=7, got %v", y)
	}
	if y := transformY(t, w, healthy); y != -452 {
		t.Fatalf("other entities must still anchor, got %v", y)
	}
	if n := logs.FilterMessage("no frame geometry, skipping bottom anchor").Len(); n != 1 {
		t.Fatalf("expected one geometry warning, got %d", n)
	}
}

func TestBottomAnchorIgnoresUnanchoredEntities(t *testing.T) {
	w := ecs.NewWorld()
	e := spawnPet(t, w, sleepLayout(), 6, 33)
	ecs.Remove(w, e, component.BottomAnchorComponent)

	NewBottomAnchorSystem(platform.StaticDisplay{Height: 1000}, nil).Update(w)
	if y := transformY(t, w, e); y != 33 {
		t.Fatalf("unanchored entity moved to %v", y)
	}
}
