package state

// Notepad is the drawing model behind the notepad screen: per-page paths
// plus the pen used to draw them.
type Notepad struct {
	Pages *PageStore
	Pen   *Pen
}

// NewNotepad builds a notepad whose pen selection comes from settings.
func NewNotepad(settings PenSource, eraserColor string) *Notepad {
	return &Notepad{
		Pages: NewPageStore(),
		Pen:   NewPen(settings, eraserColor),
	}
}

// CurrentPaths returns the committed paths of the selected page.
func (n *Notepad) CurrentPaths() *Property[[]Path] {
	return n.Pages.Paths(n.Pen.Page())
}
