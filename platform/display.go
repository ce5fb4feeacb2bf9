// Package platform abstracts what the pet needs to know about the host screen.
package platform

import "sync/atomic"

// Display reports the client-area size of the primary display.
// ok is false when the size cannot be resolved this frame.
type Display interface {
	ClientHeight() (height float64, ok bool)
}

// WindowDisplay is fed the window's outside size by the game's layout
// callback every frame. Until the first report, or after Reset, no size is
// available.
type WindowDisplay struct {
	width  atomic.Uint64
	height atomic.Uint64
}

func NewWindowDisplay() *WindowDisplay {
	return &WindowDisplay{}
}

// Report records the latest client-area size in device-independent pixels.
func (d *WindowDisplay) Report(width, height float64) {
	d.width.Store(toBits(width))
	d.height.Store(toBits(height))
}

// Reset forgets the last reported size.
func (d *WindowDisplay) Reset() {
	d.width.Store(0)
	d.height.Store(0)
}

func (d *WindowDisplay) ClientHeight() (float64, bool) {
	h := fromBits(d.height.Load())
	return h, h > 0
}

func (d *WindowDisplay) ClientWidth() (float64, bool) {
	w := fromBits(d.width.Load())
	return w, w > 0
}

// StaticDisplay is a fixed-size display, used by tools and tests.
// A zero Height means unavailable.
type StaticDisplay struct {
	Height float64
}

func (d StaticDisplay) ClientHeight() (float64, bool) {
	return d.Height, d.Height > 0
}
