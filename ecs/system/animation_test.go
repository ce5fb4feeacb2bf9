package system

import (
	"math/rand"
	"testing"
	"time"

	"github.com/milk9111/deskcat/anim"
	"github.com/milk9111/deskcat/ecs"
	"github.com/milk9111/deskcat/ecs/component"
)

const interval = 200 * time.Millisecond

func sleepAnimation() component.Animation {
	return component.NewAnimation(anim.Default(), anim.Sleep, interval)
}

func TestAdvance(t *testing.T) {
	cases := []struct {
		name        string
		frame       int
		elapsed     time.Duration
		dts         []time.Duration
		wantFrame   int
		wantElapsed time.Duration
	}{
		{"below_threshold", 48, 0, []time.Duration{150 * time.Millisecond}, 48, 150 * time.Millisecond},
		{"exact_threshold", 48, 0, []time.Duration{interval}, 49, 0},
		{"wraps_end_to_start", 51, 0, []time.Duration{250 * time.Millisecond}, 48, 50 * time.Millisecond},
		{"keeps_remainder", 49, 150 * time.Millisecond, []time.Duration{100 * time.Millisecond}, 50, 50 * time.Millisecond},
		{"zero_dt", 50, 100 * time.Millisecond, []time.Duration{0, 0}, 50, 100 * time.Millisecond},
		{"negative_dt_ignored", 50, 100 * time.Millisecond, []time.Duration{-time.Second}, 50, 100 * time.Millisecond},
		{"stall_drains_all_intervals", 48, 0, []time.Duration{time.Second + 10*time.Millisecond}, 49, 10 * time.Millisecond},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := sleepAnimation()
			a.Frame = c.frame
			a.Elapsed = c.elapsed
			for _, dt := range c.dts {
				Advance(&a, dt)
			}
			if a.Frame != c.wantFrame {
				t.Fatalf("frame = %d, want %d", a.Frame, c.wantFrame)
			}
			if a.Elapsed != c.wantElapsed {
				t.Fatalf("elapsed = %v, want %v", a.Elapsed, c.wantElapsed)
			}
		})
	}
}

func TestAdvanceAccumulatesWithoutDrift(t *testing.T) {
	split := sleepAnimation()
	for i := 0; i < 4; i++ {
		Advance(&split, 50*time.Millisecond)
	}

	whole := sleepAnimation()
	Advance(&whole, interval)

	if split.Frame != whole.Frame {
		t.Fatalf("4x50ms reached frame %d, 1x200ms reached %d", split.Frame, whole.Frame)
	}
	if split.Elapsed != 0 || whole.Elapsed != 0 {
		t.Fatalf("expected no leftover, got %v and %v", split.Elapsed, whole.Elapsed)
	}
}

func TestAdvanceStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, clip := range anim.Clips() {
		a := component.NewAnimation(anim.Default(), clip, interval)
		for i := 0; i < 2000; i++ {
			Advance(&a, time.Duration(rng.Int63n(int64(700*time.Millisecond))))
			if !a.Frames.Contains(a.Frame) {
				t.Fatalf("%s: frame %d escaped %v after %d steps", clip, a.Frame, a.Frames, i)
			}
			if a.Elapsed < 0 || a.Elapsed >= a.Interval {
				t.Fatalf("%s: elapsed %v outside [0, %v)", clip, a.Elapsed, a.Interval)
			}
		}
	}
}

func TestAdvanceVisitsEveryFrameInOrder(t *testing.T) {
	a := component.NewAnimation(anim.Default(), anim.Leap, interval)
	var seen []int
	for i := 0; i < a.Frames.Len()+1; i++ {
		seen = append(seen, a.Frame)
		Advance(&a, interval)
	}
	want := []int{64, 65, 66, 67, 68, 69, 70, 64}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, seen)
		}
	}
}

func TestAdvanceGuards(t *testing.T) {
	t.Run("zero_interval", func(t *testing.T) {
		a := sleepAnimation()
		a.Interval = 0
		Advance(&a, time.Second)
		if a.Frame != 48 {
			t.Fatalf("zero interval must not advance, got frame %d", a.Frame)
		}
	})
	t.Run("frame_outside_range", func(t *testing.T) {
		a := sleepAnimation()
		a.Frame = 3
		Advance(&a, 0)
		if a.Frame != 48 {
			t.Fatalf("expected clamp to range start, got %d", a.Frame)
		}
	})
	t.Run("nil", func(t *testing.T) {
		Advance(nil, time.Second)
	})
}

func TestAnimationSystemUsesWorldDelta(t *testing.T) {
	w := ecs.NewWorld()
	tbl := anim.Default()

	sleeper := w.CreateEntity()
	runner := w.CreateEntity()
	if err := ecs.Add(w, sleeper, component.AnimationComponent, component.NewAnimation(tbl, anim.Sleep, interval)); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, runner, component.AnimationComponent, component.NewAnimation(tbl, anim.Run1, 100*time.Millisecond)); err != nil {
		t.Fatal(err)
	}

	w.SetDelta(250 * time.Millisecond)
	NewAnimationSystem().Update(w)

	s, _ := ecs.Get(w, sleeper, component.AnimationComponent)
	if s.Frame != 49 || s.Elapsed != 50*time.Millisecond {
		t.Fatalf("sleeper: frame %d elapsed %v", s.Frame, s.Elapsed)
	}
	r, _ := ecs.Get(w, runner, component.AnimationComponent)
	if r.Frame != 34 || r.Elapsed != 50*time.Millisecond {
		t.Fatalf("runner: frame %d elapsed %v", r.Frame, r.Elapsed)
	}
}
