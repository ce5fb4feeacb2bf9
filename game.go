package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/deskcat/anim"
	"github.com/milk9111/deskcat/assets"
	"github.com/milk9111/deskcat/config"
	"github.com/milk9111/deskcat/ecs"
	"github.com/milk9111/deskcat/ecs/entity"
	"github.com/milk9111/deskcat/ecs/system"
	"github.com/milk9111/deskcat/platform"
	"github.com/milk9111/deskcat/prefabs"
	"go.uber.org/zap"
)

// SheetLoader decodes the sprite sheet a prefab names.
type SheetLoader func(path string) (*assets.Sheet, error)

type Game struct {
	cfg *config.Config
	log *zap.Logger

	world     *ecs.World
	scheduler *ecs.Scheduler
	render    *system.RenderSystem
	debug     *system.DebugOverlaySystem
	display   *platform.WindowDisplay

	loadSheet SheetLoader
	watcher   *prefabs.Watcher
	pet       ecs.Entity

	now  func() time.Time
	last time.Time
}

// NewGame builds the pet from cfg. Any prefab or sheet error is returned so
// the caller can refuse to start.
func NewGame(cfg *config.Config, log *zap.Logger, loadSheet SheetLoader) (*Game, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	if loadSheet == nil {
		loadSheet = assets.LoadSheet
	}

	display := platform.NewWindowDisplay()
	g := &Game{
		cfg:     cfg,
		log:     log,
		world:   ecs.NewWorld(),
		display: display,
		scheduler: ecs.NewScheduler(
			system.NewAnimationSystem(),
			system.NewBottomAnchorSystem(display, log.Named("anchor")),
		),
		render:    system.NewRenderSystem(),
		loadSheet: loadSheet,
		now:       time.Now,
	}
	if cfg.Debug.Overlay {
		g.debug = system.NewDebugOverlaySystem()
	}

	parts, err := g.resolvePet()
	if err != nil {
		return nil, err
	}
	if err := g.spawnPet(parts); err != nil {
		return nil, err
	}

	if cfg.HotReload {
		g.watchPrefab()
	}
	g.last = g.now()
	return g, nil
}

func (g *Game) Update() error {
	g.pollReload()

	now := g.now()
	dt := now.Sub(g.last)
	g.last = now

	g.world.SetDelta(dt)
	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	if g.debug != nil {
		g.debug.Draw(g.world, screen)
	}
}

// LayoutF keeps the logical screen equal to the window so one sprite pixel
// maps to Scale device-independent pixels.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	g.display.Report(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close stops the prefab watcher, if any.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	err := g.watcher.Close()
	g.watcher = nil
	return err
}

func (g *Game) resolvePet() (*entity.PetParts, error) {
	spec, err := prefabs.LoadPetSpec(g.cfg.Pet.Prefab)
	if err != nil {
		return nil, err
	}
	if err := applyPetOverrides(spec, g.cfg.Pet); err != nil {
		return nil, err
	}
	sheet, err := g.loadSheet(spec.Sheet.Image)
	if err != nil {
		return nil, err
	}
	return entity.ResolvePet(spec, *sheet)
}

func (g *Game) spawnPet(parts *entity.PetParts) error {
	e, err := entity.BuildPet(g.world, parts)
	if err != nil {
		return err
	}
	if g.pet.Valid() {
		g.world.DestroyEntity(g.pet)
	}
	g.pet = e

	g.log.Info("pet ready",
		zap.String("name", parts.Spec.Name),
		zap.Stringer("clip", parts.Spec.Animation.Clip),
		zap.Stringer("frames", parts.Table.Lookup(parts.Spec.Animation.Clip)),
		zap.Float64("scale", parts.Spec.Transform.Scale),
		zap.Float64("fps", parts.Spec.Animation.FPS),
	)
	return nil
}

// reload rebuilds the pet from disk, keeping the current one if the new
// prefab does not validate.
func (g *Game) reload() {
	parts, err := g.resolvePet()
	if err == nil {
		err = g.spawnPet(parts)
	}
	if err != nil {
		g.log.Warn("prefab reload failed, keeping current pet", zap.Error(err))
	}
}

func (g *Game) watchPrefab() {
	dir := prefabDir(g.cfg.Pet.Prefab)
	if _, err := os.Stat(dir); err != nil {
		g.log.Warn("hot reload disabled, prefab directory not found", zap.String("dir", dir))
		return
	}
	w, err := prefabs.NewWatcher(dir)
	if err != nil {
		g.log.Warn("hot reload disabled", zap.String("dir", dir), zap.Error(err))
		return
	}
	g.watcher = w
	g.log.Info("watching prefab", zap.String("dir", dir))
}

func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	want := filepath.Base(g.cfg.Pet.Prefab)
	changed := false
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if filepath.Base(name) == want {
				changed = true
			}
		case err, ok := <-g.watcher.Errors:
			if ok && err != nil {
				g.log.Warn("prefab watcher error", zap.Error(err))
			}
		default:
			if changed {
				g.log.Info("prefab changed, reloading", zap.String("prefab", g.cfg.Pet.Prefab))
				g.reload()
			}
			return
		}
	}
}

func prefabDir(prefab string) string {
	if filepath.IsAbs(prefab) {
		return filepath.Dir(prefab)
	}
	return filepath.Join(prefabs.Dir, filepath.Dir(filepath.FromSlash(prefab)))
}

var errOverride = errors.New("pet override")

// applyPetOverrides replaces the prefab's clip, scale and fps with the
// non-zero values from pc.
func applyPetOverrides(spec *prefabs.PetSpec, pc config.PetConfig) error {
	if pc.Clip != "" {
		clip, err := anim.ParseClip(pc.Clip)
		if err != nil {
			return fmt.Errorf("%w: %v", errOverride, err)
		}
		spec.Animation.Clip = clip
	}
	if pc.Scale > 0 {
		spec.Transform.Scale = pc.Scale
	}
	if pc.FPS > 0 {
		spec.Animation.FPS = pc.FPS
	}
	return nil
}
