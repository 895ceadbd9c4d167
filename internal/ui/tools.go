package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"TacNotepad/internal/state"
)

// colorSwatch is a tappable square of one palette color.
type colorSwatch struct {
	widget.BaseWidget
	Hex      string
	OnTapped func(hex string)
}

func newColorSwatch(hex string, tapped func(string)) *colorSwatch {
	s := &colorSwatch{Hex: hex, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(state.ParseColor(s.Hex))
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Hex)
	}
}

// penTools remembers the last ink color so the pen button can switch
// back from the eraser.
type penTools struct {
	pen       *state.Pen
	lastColor string
}

func newPenTools(pen *state.Pen, fallback string) *penTools {
	t := &penTools{pen: pen, lastColor: fallback}
	if c, err := pen.SelectedPathColor().Get(); err == nil && !pen.IsErasing() {
		t.lastColor = c
	}
	return t
}

func (t *penTools) selectColor(hex string) {
	t.lastColor = hex
	_ = t.pen.SelectedPathColor().Set(hex)
}

func (t *penTools) selectPen() {
	_ = t.pen.SelectedPathColor().Set(t.lastColor)
}

func (t *penTools) selectEraser() {
	_ = t.pen.SelectedPathColor().Set(t.pen.EraserColor())
}

// newToolbar builds the pen, palette and width controls plus the page
// actions of a.
func (a *App) newToolbar(compact bool) fyne.CanvasObject {
	tools := newPenTools(a.notepad.Pen, a.conf.DefaultColor)

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), tools.selectPen),
		widget.NewToolbarAction(theme.ContentClearIcon(), tools.selectEraser),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentUndoIcon(), a.Undo),
		widget.NewToolbarAction(theme.DeleteIcon(), a.Clear),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), a.showSave),
		widget.NewToolbarAction(theme.FolderOpenIcon(), a.showOpen),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), a.showExportPDF),
		widget.NewToolbarAction(theme.MediaPhotoIcon(), a.showExportPNG),
	)

	swatches := make([]fyne.CanvasObject, 0, len(a.conf.Palette))
	for _, hex := range a.conf.Palette {
		swatches = append(swatches, newColorSwatch(hex, tools.selectColor))
	}
	colorBox := container.NewHBox(swatches...)

	slider := widget.NewSliderWithData(a.conf.MinWidth, a.conf.MaxWidth, a.notepad.Pen.SelectedPathWidth())
	slider.Step = 1
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), slider)
	widthLabel := widget.NewLabelWithData(binding.FloatToStringWithFormat(a.notepad.Pen.ActivePathWidth(), "%.0f px"))

	if compact {
		return container.NewVBox(
			container.NewHBox(tb, layout.NewSpacer()),
			container.NewHBox(colorBox, sliderContainer, widthLabel),
		)
	}
	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		widthLabel,
		layout.NewSpacer(),
	)
}
