package state

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Page identifies one tab of the notepad.
type Page int

const (
	PageOne Page = iota
	PageTwo
	PageThree
	PageFour

	pageCount = 4
)

// AllPages lists every page in tab order.
var AllPages = []Page{PageOne, PageTwo, PageThree, PageFour}

// Valid reports whether p is one of AllPages.
func (p Page) Valid() bool {
	return p >= PageOne && p <= PageFour
}

func (p Page) String() string {
	return fmt.Sprintf("Page %d", int(p)+1)
}

// Path is one stroke: its points plus the color and width it was drawn with.
type Path struct {
	ID     string          `json:"id"`
	Points []fyne.Position `json:"points"`
	Color  string          `json:"color"`
	Width  float32         `json:"width"`
}

// WithPoint returns a copy of the path with pos appended. The receiver's
// point slice is never shared with the result.
func (p Path) WithPoint(pos fyne.Position) Path {
	pts := make([]fyne.Position, len(p.Points), len(p.Points)+1)
	copy(pts, p.Points)
	p.Points = append(pts, pos)
	return p
}

// ParseColor turns a hex string such as "#ff0000" or "#f00" into a color.
// Unparseable input is black.
func ParseColor(hex string) color.Color {
	c, err := colorful.Hex(expandHex(hex))
	if err != nil {
		return color.Black
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// HexColor formats any color as "#rrggbb", dropping alpha.
func HexColor(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

// SameColor compares two hex colors by value, ignoring case and
// shorthand.
func SameColor(a, b string) bool {
	ca, errA := colorful.Hex(expandHex(a))
	cb, errB := colorful.Hex(expandHex(b))
	if errA != nil || errB != nil {
		return false
	}
	return ca.Hex() == cb.Hex()
}

func expandHex(s string) string {
	if len(s) == 4 && s[0] == '#' {
		return string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	return s
}
