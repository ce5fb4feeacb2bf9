package prefabs

import (
	"fmt"
	"image"
	"time"

	"github.com/milk9111/deskcat/anim"
	"github.com/milk9111/deskcat/atlas"
	"gopkg.in/yaml.v3"
)

// PetPrefab is the name of the built-in pet prefab.
const PetPrefab = "pet.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PetSpec struct {
	Name        string                   `yaml:"name"`
	Sheet       SheetSpec                `yaml:"sheet"`
	Clips       map[anim.Clip]anim.Range `yaml:"clips"`
	Animation   AnimationSpec            `yaml:"animation"`
	Transform   TransformSpec            `yaml:"transform"`
	RenderLayer RenderLayerSpec          `yaml:"render_layer"`
}

func LoadPetSpec(filename string) (*PetSpec, error) {
	spec, err := LoadSpec[PetSpec](filename)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type SheetSpec struct {
	Image     string `yaml:"image"`
	TileW     int    `yaml:"tile_w"`
	TileH     int    `yaml:"tile_h"`
	Columns   int    `yaml:"columns"`
	Rows      int    `yaml:"rows"`
	PaddingX  int    `yaml:"padding_x"`
	PaddingY  int    `yaml:"padding_y"`
	OffsetX   int    `yaml:"offset_x"`
	OffsetY   int    `yaml:"offset_y"`
	Trim      bool   `yaml:"trim"`
	TrimAlpha uint8  `yaml:"trim_alpha"`
}

type AnimationSpec struct {
	Clip anim.Clip `yaml:"clip"`
	FPS  float64   `yaml:"fps"`
}

type TransformSpec struct {
	X     float64 `yaml:"x"`
	Z     float64 `yaml:"z"`
	Scale float64 `yaml:"scale"`
}

type RenderLayerSpec struct {
	Index int `yaml:"index"`
}

// Grid is the sheet's uniform cell layout.
func (s SheetSpec) Grid() atlas.Grid {
	return atlas.Grid{
		Tile:    image.Pt(s.TileW, s.TileH),
		Columns: s.Columns,
		Rows:    s.Rows,
		Padding: image.Pt(s.PaddingX, s.PaddingY),
		Offset:  image.Pt(s.OffsetX, s.OffsetY),
	}
}

// FrameCount is the number of cells in the sheet.
func (s SheetSpec) FrameCount() int {
	return s.Columns * s.Rows
}

// Table validates the clip ranges against the sheet.
func (s *PetSpec) Table() (*anim.Table, error) {
	t, err := anim.NewTable(s.Clips, s.Sheet.FrameCount())
	if err != nil {
		return nil, fmt.Errorf("prefabs: pet %q: %w", s.Name, err)
	}
	return t, nil
}

// Interval is the time each frame stays on screen.
func (a AnimationSpec) Interval() (time.Duration, error) {
	if a.FPS <= 0 {
		return 0, fmt.Errorf("prefabs: fps must be positive, got %v", a.FPS)
	}
	return time.Duration(float64(time.Second) / a.FPS), nil
}
