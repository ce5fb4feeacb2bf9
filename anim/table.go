// Package anim holds the static clip table for the cat sprite sheet.
package anim

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrMissingClip   = errors.New("anim: clip has no frame range")
	ErrInvertedRange = errors.New("anim: range start is after end")
	ErrOutOfBounds   = errors.New("anim: range outside sprite sheet")
	ErrOverlap       = errors.New("anim: ranges overlap")
)

// DefaultFrameCount is the number of cells in the stock 8x10 cat sheet.
const DefaultFrameCount = 80

// Range is an inclusive span of frame indices.
type Range struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// Contains reports whether frame lies within r.
func (r Range) Contains(frame int) bool {
	return frame >= r.Start && frame <= r.End
}

// Len is the number of frames in r.
func (r Range) Len() int {
	return r.End - r.Start + 1
}

func (r Range) overlaps(o Range) bool {
	return r.Start <= o.End && o.Start <= r.End
}

func (r Range) String() string {
	return fmt.Sprintf("%d..=%d", r.Start, r.End)
}

// Table maps every clip to its frame range. It is immutable once built.
type Table struct {
	ranges     [clipCount]Range
	frameCount int
}

// DefaultRanges returns the clip layout of the stock cat sheet.
func DefaultRanges() map[Clip]Range {
	return map[Clip]Range{
		Idle1:   {0, 3},
		Idle2:   {8, 11},
		Clean1:  {16, 19},
		Clean2:  {24, 27},
		Run1:    {32, 39},
		Run2:    {40, 47},
		Sleep:   {48, 51},
		Walk:    {56, 61},
		Leap:    {64, 70},
		Stretch: {72, 79},
	}
}

// Default builds the table for the stock sheet.
func Default() *Table {
	t, err := NewTable(DefaultRanges(), DefaultFrameCount)
	if err != nil {
		panic(err)
	}
	return t
}

// NewTable validates ranges against a sheet of frameCount cells.
// Every clip must be present, ordered, in bounds and disjoint from the others.
func NewTable(ranges map[Clip]Range, frameCount int) (*Table, error) {
	t := &Table{frameCount: frameCount}

	for c, r := range ranges {
		if !c.Valid() {
			return nil, fmt.Errorf("anim: invalid clip %d", int(c))
		}
		t.ranges[c] = r
	}

	for _, c := range Clips() {
		r, ok := ranges[c]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingClip, c)
		}
		if r.Start > r.End {
			return nil, fmt.Errorf("%w: %s %s", ErrInvertedRange, c, r)
		}
		if r.Start < 0 || r.End >= frameCount {
			return nil, fmt.Errorf("%w: %s %s, sheet has %d frames", ErrOutOfBounds, c, r, frameCount)
		}
	}

	sorted := Clips()
	sort.Slice(sorted, func(i, j int) bool {
		return t.ranges[sorted[i]].Start < t.ranges[sorted[j]].Start
	})
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if t.ranges[prev].overlaps(t.ranges[cur]) {
			return nil, fmt.Errorf("%w: %s %s and %s %s", ErrOverlap, prev, t.ranges[prev], cur, t.ranges[cur])
		}
	}

	return t, nil
}

// Lookup returns the frame range of c.
func (t *Table) Lookup(c Clip) Range {
	return t.ranges[c]
}

// FrameCount is the sheet size the table was validated against.
func (t *Table) FrameCount() int {
	return t.frameCount
}
