package atlas

import "image"

// Trim shrinks every frame to the bounding box of its pixels whose alpha is
// above threshold (0-255). Fully transparent frames keep their cell.
func (l *Layout) Trim(img image.Image, threshold uint8) *Layout {
	out := &Layout{frames: make([]image.Rectangle, len(l.frames))}
	for i, r := range l.frames {
		out.frames[i] = opaqueBounds(img, r.Intersect(img.Bounds()), threshold)
		if out.frames[i].Empty() {
			out.frames[i] = r
		}
	}
	return out
}

func opaqueBounds(img image.Image, r image.Rectangle, threshold uint8) image.Rectangle {
	var box image.Rectangle
	limit := uint32(threshold) * 0x101
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if a <= limit {
				continue
			}
			px := image.Rect(x, y, x+1, y+1)
			if box.Empty() {
				box = px
			} else {
				box = box.Union(px)
			}
		}
	}
	return box
}
