package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/milk9111/deskcat/anim"
	"github.com/milk9111/deskcat/assets"
	"github.com/milk9111/deskcat/atlas"
	"github.com/milk9111/deskcat/ecs"
	"github.com/milk9111/deskcat/ecs/component"
	"github.com/milk9111/deskcat/prefabs"
)

var ErrNilWorld = errors.New("build entity: world is nil")

type buildContext struct {
	spec     *prefabs.PetSpec
	sheet    assets.Sheet
	table    *anim.Table
	layout   *atlas.Layout
	interval time.Duration
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, ctx *buildContext) error

type componentBuilder struct {
	name  string
	build componentBuildFn
}

var petBuildOrder = []componentBuilder{
	{"pet_tag", addPetTag},
	{"transform", addTransform},
	{"sprite_sheet", addSpriteSheet},
	{"animation", addAnimation},
	{"render_layer", addRenderLayer},
	{"bottom_anchor", addBottomAnchor},
}

// PetParts is everything BuildPet needs besides the world, resolved and
// validated up front so a bad prefab never leaves a half-built entity.
type PetParts struct {
	Spec   *prefabs.PetSpec
	Sheet  assets.Sheet
	Table  *anim.Table
	Layout *atlas.Layout
}

// ResolvePet checks spec against sheet and builds the clip table and the
// frame layout, trimmed when the prefab asks for it.
func ResolvePet(spec *prefabs.PetSpec, sheet assets.Sheet) (*PetParts, error) {
	if spec == nil {
		return nil, fmt.Errorf("build entity: pet spec is nil")
	}
	table, err := spec.Table()
	if err != nil {
		return nil, err
	}
	if _, err := spec.Animation.Interval(); err != nil {
		return nil, fmt.Errorf("build entity: pet %q: %w", spec.Name, err)
	}
	if spec.Transform.Scale <= 0 {
		return nil, fmt.Errorf("build entity: pet %q: scale must be positive, got %v", spec.Name, spec.Transform.Scale)
	}
	if !spec.Animation.Clip.Valid() {
		return nil, fmt.Errorf("build entity: pet %q: invalid clip %s", spec.Name, spec.Animation.Clip)
	}

	layout, err := atlas.FromGrid(spec.Sheet.Grid())
	if err != nil {
		return nil, fmt.Errorf("build entity: pet %q: %w", spec.Name, err)
	}
	if sheet.Pixels != nil {
		if err := layout.Fits(sheet.Pixels.Bounds()); err != nil {
			return nil, fmt.Errorf("build entity: pet %q: %w", spec.Name, err)
		}
		if spec.Sheet.Trim {
			layout = layout.Trim(sheet.Pixels, spec.Sheet.TrimAlpha)
		}
	}

	return &PetParts{Spec: spec, Sheet: sheet, Table: table, Layout: layout}, nil
}

// BuildPet creates the pet entity, starting on the first frame of its clip.
func BuildPet(w *ecs.World, parts *PetParts) (ecs.Entity, error) {
	if w == nil {
		return 0, ErrNilWorld
	}
	if parts == nil || parts.Spec == nil || parts.Table == nil || parts.Layout == nil {
		return 0, fmt.Errorf("build entity: pet parts are incomplete")
	}
	interval, err := parts.Spec.Animation.Interval()
	if err != nil {
		return 0, fmt.Errorf("build entity: pet %q: %w", parts.Spec.Name, err)
	}

	ctx := &buildContext{
		spec:     parts.Spec,
		sheet:    parts.Sheet,
		table:    parts.Table,
		layout:   parts.Layout,
		interval: interval,
	}

	e := w.CreateEntity()
	for _, b := range petBuildOrder {
		if err := b.build(w, e, ctx); err != nil {
			w.DestroyEntity(e)
			return 0, fmt.Errorf("build entity: pet %q: add %q: %w", parts.Spec.Name, b.name, err)
		}
	}
	return e, nil
}

func addPetTag(w *ecs.World, e ecs.Entity, ctx *buildContext) error {
	return ecs.Add(w, e, component.PetTagComponent, component.PetTag{Name: ctx.spec.Name})
}

func addTransform(w *ecs.World, e ecs.Entity, ctx *buildContext) error {
	return ecs.Add(w, e, component.TransformComponent, component.Transform{
		X:     ctx.spec.Transform.X,
		Z:     ctx.spec.Transform.Z,
		Scale: ctx.spec.Transform.Scale,
	})
}

func addSpriteSheet(w *ecs.World, e ecs.Entity, ctx *buildContext) error {
	return ecs.Add(w, e, component.SpriteSheetComponent, component.SpriteSheet{
		Image: ctx.sheet.Image,
		Atlas: ctx.layout,
	})
}

func addAnimation(w *ecs.World, e ecs.Entity, ctx *buildContext) error {
	a := component.NewAnimation(ctx.table, ctx.spec.Animation.Clip, ctx.interval)
	if _, ok := ctx.layout.Rect(a.Frames.End); !ok {
		return fmt.Errorf("clip %s %v has no frame geometry", a.Clip, a.Frames)
	}
	return ecs.Add(w, e, component.AnimationComponent, a)
}

func addRenderLayer(w *ecs.World, e ecs.Entity, ctx *buildContext) error {
	return ecs.Add(w, e, component.RenderLayerComponent, component.RenderLayer{Index: ctx.spec.RenderLayer.Index})
}

func addBottomAnchor(w *ecs.World, e ecs.Entity, _ *buildContext) error {
	return ecs.Add(w, e, component.BottomAnchorComponent, component.BottomAnchor{})
}
