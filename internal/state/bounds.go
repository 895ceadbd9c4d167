package state

import "fyne.io/fyne/v2"

// Area is an axis-aligned rectangle on a page.
type Area struct {
	X, Y          float32
	Width, Height float32
}

// Bounds returns the area covered by paths, grown by half of each path's
// width so thick strokes are not clipped. ok is false when there are no
// points.
func Bounds(paths []Path) (area Area, ok bool) {
	var minX, minY, maxX, maxY float32
	for _, p := range paths {
		pad := p.Width / 2
		for _, pt := range p.Points {
			if !ok {
				minX, minY, maxX, maxY = pt.X-pad, pt.Y-pad, pt.X+pad, pt.Y+pad
				ok = true
				continue
			}
			minX = min(minX, pt.X-pad)
			minY = min(minY, pt.Y-pad)
			maxX = max(maxX, pt.X+pad)
			maxY = max(maxY, pt.Y+pad)
		}
	}
	if !ok {
		return Area{}, false
	}
	return Area{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}, true
}

// Union returns the smallest area containing a and b.
func (a Area) Union(b Area) Area {
	minX, minY := min(a.X, b.X), min(a.Y, b.Y)
	maxX := max(a.X+a.Width, b.X+b.Width)
	maxY := max(a.Y+a.Height, b.Y+b.Height)
	return Area{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// AreaOf is the area of a canvas of the given size at the origin.
func AreaOf(size fyne.Size) Area {
	return Area{Width: size.Width, Height: size.Height}
}
