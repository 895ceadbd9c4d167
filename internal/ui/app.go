package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"TacNotepad/internal/device"
	"TacNotepad/internal/settings"
	"TacNotepad/internal/state"
)

// App is the notepad window: one tab per page plus the toolbar.
type App struct {
	fyneApp fyne.App
	window  fyne.Window
	notepad *state.Notepad
	conf    settings.Config
	lggr    *zap.SugaredLogger

	boards []*Board
	tabs   *container.AppTabs
	status *widget.Label
}

// New builds the window for notepad. Nothing is shown until Run.
func New(a fyne.App, notepad *state.Notepad, conf settings.Config, lggr *zap.SugaredLogger) *App {
	ui := &App{
		fyneApp: a,
		window:  a.NewWindow("TacNotepad"),
		notepad: notepad,
		conf:    conf,
		lggr:    lggr,
		status:  widget.NewLabel("Ready"),
	}
	ui.window.Resize(fyne.NewSize(1024, 768))

	items := make([]*container.TabItem, 0, len(state.AllPages))
	for _, page := range state.AllPages {
		board := NewBoard(page, notepad)
		ui.boards = append(ui.boards, board)
		items = append(items, container.NewTabItem(page.String(), board))
	}
	ui.tabs = container.NewAppTabs(items...)
	ui.tabs.SelectIndex(int(notepad.Pen.Page()))
	ui.tabs.OnSelected = func(*container.TabItem) {
		_ = notepad.Pen.SelectedPage().Set(ui.tabs.SelectedIndex())
	}

	if device.Current(ui.window) {
		ui.tabs.SetTabLocation(container.TabLocationBottom)
		ui.window.SetContent(container.NewBorder(ui.newToolbar(true), nil, nil, nil, ui.tabs))
	} else {
		ui.window.SetContent(container.NewBorder(ui.newToolbar(false), ui.status, nil, nil, ui.tabs))
	}
	return ui
}

// Window is the main window.
func (a *App) Window() fyne.Window { return a.window }

// Run shows the window and blocks until the app quits.
func (a *App) Run() {
	a.window.ShowAndRun()
}

// SetStatus updates the status line. It may be called from any goroutine.
func (a *App) SetStatus(text string) {
	fyne.Do(func() {
		a.status.SetText(text)
	})
}

// CurrentPage is the page of the selected tab.
func (a *App) CurrentPage() state.Page {
	return a.notepad.Pen.Page()
}

// Undo removes the last path on the current page.
func (a *App) Undo() {
	if !a.notepad.Pages.Undo(a.CurrentPage()) {
		a.SetStatus("Nothing to undo")
	}
}

// Clear wipes the current page.
func (a *App) Clear() {
	page := a.CurrentPage()
	a.notepad.Pages.Clear(page)
	a.lggr.Infof("Cleared %s", page)
	a.SetStatus("Cleared " + page.String())
}
