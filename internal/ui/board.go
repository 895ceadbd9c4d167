package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"TacNotepad/internal/state"
)

// Board draws one notepad page and turns drags into paths.
type Board struct {
	widget.BaseWidget
	page   state.Page
	pages  *state.PageStore
	pen    *state.Pen
	cancel []func()
}

var _ fyne.Widget = (*Board)(nil)
var _ fyne.Draggable = (*Board)(nil)

// NewBoard creates the board for page. It redraws whenever the page's
// committed or active path changes.
func NewBoard(page state.Page, notepad *state.Notepad) *Board {
	b := &Board{page: page, pages: notepad.Pages, pen: notepad.Pen}
	b.ExtendBaseWidget(b)
	b.cancel = []func(){
		b.pages.Paths(page).Observe(func([]state.Path) { b.Refresh() }),
		b.pages.ActivePath(page).Observe(func(*state.Path) { b.Refresh() }),
	}
	return b
}

// Page is the page this board shows.
func (b *Board) Page() state.Page { return b.page }

// Detach stops the board from following the store.
func (b *Board) Detach() {
	for _, c := range b.cancel {
		c()
	}
	b.cancel = nil
}

func (b *Board) Dragged(e *fyne.DragEvent) {
	active := b.pages.ActivePath(b.page)
	cur := active.Get()
	if cur == nil {
		color, _ := b.pen.ActivePathColor().Get()
		width, _ := b.pen.ActivePathWidth().Get()
		start := fyne.NewPos(e.Position.X-e.Dragged.DX, e.Position.Y-e.Dragged.DY)
		active.Set(&state.Path{
			ID:     uuid.NewString(),
			Points: []fyne.Position{start, e.Position},
			Color:  color,
			Width:  float32(width),
		})
		return
	}
	next := cur.WithPoint(e.Position)
	active.Set(&next)
}

func (b *Board) DragEnd() {
	b.pages.Commit(b.page)
}

func (b *Board) CreateRenderer() fyne.WidgetRenderer {
	r := &boardRenderer{
		board:      b,
		background: canvas.NewRectangle(state.ParseColor(b.pen.EraserColor())),
	}
	r.build()
	return r
}

type boardRenderer struct {
	board      *Board
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *boardRenderer) build() {
	objects := []fyne.CanvasObject{r.background}
	paths := r.board.pages.Paths(r.board.page).Get()
	if active := r.board.pages.ActivePath(r.board.page).Get(); active != nil {
		paths = append(paths[:len(paths):len(paths)], *active)
	}
	for _, p := range paths {
		c := state.ParseColor(p.Color)
		for i := 1; i < len(p.Points); i++ {
			segment := canvas.NewLine(c)
			segment.StrokeWidth = p.Width
			segment.Position1 = p.Points[i-1]
			segment.Position2 = p.Points[i]
			objects = append(objects, segment)
		}
	}
	r.objects = objects
}

func (r *boardRenderer) Objects() []fyne.CanvasObject { return r.objects }

func (r *boardRenderer) Refresh() {
	r.build()
	r.background.Refresh()
	canvas.Refresh(r.board)
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardRenderer) Destroy() {}
