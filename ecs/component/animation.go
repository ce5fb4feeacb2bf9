package component

import (
	"time"

	"github.com/milk9111/deskcat/anim"
)

// Animation cycles Frame through Frames every Interval.
// Frames.Start <= Frame <= Frames.End always holds.
type Animation struct {
	Clip     anim.Clip
	Frames   anim.Range
	Frame    int
	Elapsed  time.Duration
	Interval time.Duration
}

// NewAnimation starts clip at its first frame.
func NewAnimation(table *anim.Table, clip anim.Clip, interval time.Duration) Animation {
	frames := table.Lookup(clip)
	return Animation{
		Clip:     clip,
		Frames:   frames,
		Frame:    frames.Start,
		Interval: interval,
	}
}

var AnimationComponent = NewComponent[Animation]()
