package state

import (
	"errors"

	"fyne.io/fyne/v2/data/binding"
)

// EraserWidthMultiplier widens the pen while the eraser color is selected.
const EraserWidthMultiplier = 4.0

// ErrReadOnly is returned when writing to a derived binding.
var ErrReadOnly = errors.New("state: derived binding is read-only")

// PenSource provides the persisted pen selection.
type PenSource interface {
	SelectedPage() binding.Int
	SelectedPathColor() binding.String
	SelectedPathWidth() binding.Float
}

// Pen holds the selected page, color and width and derives the color and
// width actually used to draw.
type Pen struct {
	selectedPage  binding.Int
	selectedColor binding.String
	selectedWidth binding.Float
	eraserColor   string

	activeColor *activeColor
	activeWidth *activeWidth
}

// NewPen takes the selection bindings from src. eraserColor is the
// background color that acts as the eraser.
func NewPen(src PenSource, eraserColor string) *Pen {
	p := &Pen{
		selectedPage:  src.SelectedPage(),
		selectedColor: src.SelectedPathColor(),
		selectedWidth: src.SelectedPathWidth(),
		eraserColor:   eraserColor,
	}
	p.activeColor = &activeColor{src: p.selectedColor}
	p.activeWidth = &activeWidth{pen: p}
	return p
}

func (p *Pen) SelectedPage() binding.Int         { return p.selectedPage }
func (p *Pen) SelectedPathColor() binding.String { return p.selectedColor }
func (p *Pen) SelectedPathWidth() binding.Float  { return p.selectedWidth }

// EraserColor is the color that switches the pen into eraser mode.
func (p *Pen) EraserColor() string { return p.eraserColor }

// Page returns the selected page, or PageOne if the stored value is not a
// known page.
func (p *Pen) Page() Page {
	v, err := p.selectedPage.Get()
	if err != nil || !Page(v).Valid() {
		return PageOne
	}
	return Page(v)
}

// ActivePathColor is the color new paths are drawn with.
func (p *Pen) ActivePathColor() binding.String { return p.activeColor }

// ActivePathWidth is the width new paths are drawn with.
func (p *Pen) ActivePathWidth() binding.Float { return p.activeWidth }

// IsErasing reports whether the eraser color is selected.
func (p *Pen) IsErasing() bool {
	c, err := p.selectedColor.Get()
	return err == nil && SameColor(c, p.eraserColor)
}

type activeColor struct {
	src binding.String
}

func (a *activeColor) Get() (string, error)                 { return a.src.Get() }
func (a *activeColor) Set(string) error                     { return ErrReadOnly }
func (a *activeColor) AddListener(l binding.DataListener)    { a.src.AddListener(l) }
func (a *activeColor) RemoveListener(l binding.DataListener) { a.src.RemoveListener(l) }

// activeWidth is computed on every Get, so it always reflects the latest
// selected color and width.
type activeWidth struct {
	pen *Pen
}

func (a *activeWidth) Get() (float64, error) {
	w, err := a.pen.selectedWidth.Get()
	if err != nil {
		return 0, err
	}
	if a.pen.IsErasing() {
		return w * EraserWidthMultiplier, nil
	}
	return w, nil
}

func (a *activeWidth) Set(float64) error { return ErrReadOnly }

func (a *activeWidth) AddListener(l binding.DataListener) {
	a.pen.selectedColor.AddListener(l)
	a.pen.selectedWidth.AddListener(l)
}

func (a *activeWidth) RemoveListener(l binding.DataListener) {
	a.pen.selectedColor.RemoveListener(l)
	a.pen.selectedWidth.RemoveListener(l)
}

var (
	_ binding.String = (*activeColor)(nil)
	_ binding.Float  = (*activeWidth)(nil)
)
