package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/deskcat/anim"
	"github.com/milk9111/deskcat/assets"
	"github.com/milk9111/deskcat/ecs"
	"github.com/milk9111/deskcat/ecs/component"
	"github.com/milk9111/deskcat/ecs/entity"
	"github.com/milk9111/deskcat/ecs/system"
	"github.com/milk9111/deskcat/logger"
	"github.com/milk9111/deskcat/platform"
	"github.com/milk9111/deskcat/prefabs"
	"go.uber.org/zap"
)

var background = color.RGBA{0x30, 0x30, 0x38, 0xff}

type viewer struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	render    *system.RenderSystem
	debug     *system.DebugOverlaySystem
	display   *platform.WindowDisplay

	parts *entity.PetParts
	pet   ecs.Entity
	last  time.Time
}

func newViewer(parts *entity.PetParts) (*viewer, error) {
	display := platform.NewWindowDisplay()
	v := &viewer{
		world:   ecs.NewWorld(),
		display: display,
		scheduler: ecs.NewScheduler(
			system.NewAnimationSystem(),
			system.NewBottomAnchorSystem(display, logger.Named("anchor")),
		),
		render: system.NewRenderSystem(),
		debug:  system.NewDebugOverlaySystem(),
		parts:  parts,
		last:   time.Now(),
	}
	pet, err := entity.BuildPet(v.world, parts)
	if err != nil {
		return nil, err
	}
	v.pet = pet
	return v, nil
}

// step moves to the clip delta places away, wrapping around the clip list.
func (v *viewer) step(delta int) {
	a, ok := ecs.Get(v.world, v.pet, component.AnimationComponent)
	if !ok {
		return
	}
	clips := anim.Clips()
	next := clips[(int(a.Clip)+delta+len(clips))%len(clips)]
	*a = component.NewAnimation(v.parts.Table, next, a.Interval)
	logger.Info("clip", zap.Stringer("clip", next), zap.Stringer("frames", a.Frames))
}

func (v *viewer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		v.step(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		v.step(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	}

	now := time.Now()
	v.world.SetDelta(now.Sub(v.last))
	v.last = now
	v.scheduler.Update(v.world)
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	v.render.Draw(v.world, screen)
	v.debug.Draw(v.world, screen)
}

func (v *viewer) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	v.display.Report(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func main() {
	prefab := flag.String("prefab", prefabs.PetPrefab, "pet prefab to preview")
	clipName := flag.String("clip", "", "clip to start on (default: the prefab's)")
	scale := flag.Float64("scale", 0, "sprite scale (default: the prefab's)")
	fps := flag.Float64("fps", 0, "frames per second (default: the prefab's)")
	flag.Parse()

	if err := logger.Init("info", ""); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	spec, err := prefabs.LoadPetSpec(*prefab)
	if err != nil {
		logger.Fatal("load prefab", zap.Error(err))
	}
	if *clipName != "" {
		clip, err := anim.ParseClip(*clipName)
		if err != nil {
			logger.Fatal("bad -clip", zap.Error(err))
		}
		spec.Animation.Clip = clip
	}
	if *scale > 0 {
		spec.Transform.Scale = *scale
	}
	if *fps > 0 {
		spec.Animation.FPS = *fps
	}

	sheet, err := assets.LoadSheet(spec.Sheet.Image)
	if err != nil {
		logger.Fatal("load sheet", zap.Error(err))
	}
	parts, err := entity.ResolvePet(spec, *sheet)
	if err != nil {
		logger.Fatal("resolve pet", zap.Error(err))
	}
	v, err := newViewer(parts)
	if err != nil {
		logger.Fatal("build pet", zap.Error(err))
	}

	ebiten.SetWindowSize(512, 512)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(fmt.Sprintf("clipview: %s (left/right to change clip)", spec.Name))
	if err := ebiten.RunGame(v); err != nil {
		logger.Fatal("run", zap.Error(err))
	}
}
