// Package atlas describes where each frame of a sprite sheet lives.
package atlas

import (
	"errors"
	"fmt"
	"image"
)

var ErrEmptyGrid = errors.New("atlas: grid has no cells")

// Grid describes a uniform sheet: Columns x Rows tiles of Tile size, Padding
// between neighbouring tiles and Offset from the sheet's top-left corner.
type Grid struct {
	Tile    image.Point
	Columns int
	Rows    int
	Padding image.Point
	Offset  image.Point
}

// Layout is the frame geometry of one sheet, indexed row-major.
type Layout struct {
	frames []image.Rectangle
}

// NewLayout wraps explicit frame rectangles.
func NewLayout(frames []image.Rectangle) *Layout {
	return &Layout{frames: append([]image.Rectangle(nil), frames...)}
}

// FromGrid slices a sheet into Columns*Rows equal cells.
func FromGrid(g Grid) (*Layout, error) {
	if g.Columns <= 0 || g.Rows <= 0 || g.Tile.X <= 0 || g.Tile.Y <= 0 {
		return nil, fmt.Errorf("%w: %dx%d tiles of %v", ErrEmptyGrid, g.Columns, g.Rows, g.Tile)
	}
	step := g.Tile.Add(g.Padding)
	frames := make([]image.Rectangle, 0, g.Columns*g.Rows)
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Columns; x++ {
			origin := image.Pt(g.Offset.X+x*step.X, g.Offset.Y+y*step.Y)
			frames = append(frames, image.Rectangle{Min: origin, Max: origin.Add(g.Tile)})
		}
	}
	return &Layout{frames: frames}, nil
}

// Size is the smallest sheet that contains every cell of g.
func (g Grid) Size() image.Point {
	return image.Pt(
		g.Offset.X+g.Columns*g.Tile.X+(g.Columns-1)*g.Padding.X,
		g.Offset.Y+g.Rows*g.Tile.Y+(g.Rows-1)*g.Padding.Y,
	)
}

// Len is the number of frames.
func (l *Layout) Len() int {
	if l == nil {
		return 0
	}
	return len(l.frames)
}

// Rect returns the source rectangle of frame i.
func (l *Layout) Rect(i int) (image.Rectangle, bool) {
	if l == nil || i < 0 || i >= len(l.frames) {
		return image.Rectangle{}, false
	}
	return l.frames[i], true
}

// FrameHeight returns the pixel height of frame i.
func (l *Layout) FrameHeight(i int) (float64, bool) {
	r, ok := l.Rect(i)
	if !ok {
		return 0, false
	}
	return float64(r.Dy()), true
}

// Fits checks that every frame lies inside bounds.
func (l *Layout) Fits(bounds image.Rectangle) error {
	for i, r := range l.frames {
		if !r.In(bounds) {
			return fmt.Errorf("atlas: frame %d %v outside sheet %v", i, r, bounds)
		}
	}
	return nil
}
