package device

import "fyne.io/fyne/v2"

// TabletMinSide is the shortest canvas side, in dp, of a tablet-class
// screen.
const TabletMinSide = 600

// Idiom is the part of fyne.Device the helper needs.
type Idiom interface {
	IsMobile() bool
}

// IsPhone reports whether d is a phone-class device for a canvas of the
// given size. Desktops are never phones.
func IsPhone(d Idiom, size fyne.Size) bool {
	if d == nil || !d.IsMobile() {
		return false
	}
	return min(size.Width, size.Height) < TabletMinSide
}

// Current applies IsPhone to the running device and w's canvas.
func Current(w fyne.Window) bool {
	return IsPhone(fyne.CurrentDevice(), w.Canvas().Size())
}
