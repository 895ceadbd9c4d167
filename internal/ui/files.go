package ui

import (
	"fmt"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"TacNotepad/internal/export"
)

const autosaveName = "notebook.json"

func (a *App) autosaveURI() (fyne.URI, error) {
	uri, err := storage.Child(a.fyneApp.Storage().RootURI(), autosaveName)
	if err != nil {
		return nil, fmt.Errorf("resolving autosave location: %w", err)
	}
	return uri, nil
}

// Autosave writes every page to the app's storage.
func (a *App) Autosave() error {
	uri, err := a.autosaveURI()
	if err != nil {
		return err
	}
	w, err := storage.Writer(uri)
	if err != nil {
		return fmt.Errorf("opening %s: %w", uri, err)
	}
	defer w.Close()
	if err := export.WriteNotebook(w, a.notepad.Pages); err != nil {
		return err
	}
	a.lggr.Debugf("Autosaved notebook to %s", uri)
	return nil
}

// LoadAutosave restores the pages saved by Autosave, if there are any.
func (a *App) LoadAutosave() error {
	uri, err := a.autosaveURI()
	if err != nil {
		return err
	}
	if ok, err := storage.Exists(uri); err != nil || !ok {
		return err
	}
	r, err := storage.Reader(uri)
	if err != nil {
		return fmt.Errorf("opening %s: %w", uri, err)
	}
	defer r.Close()
	if err := export.ReadNotebook(r, a.notepad.Pages); err != nil {
		return fmt.Errorf("loading %s: %w", uri, err)
	}
	a.lggr.Infof("Restored notebook from %s", uri)
	return nil
}

// SaveTo writes the notebook to w and closes it.
func (a *App) SaveTo(w io.WriteCloser) error {
	defer w.Close()
	return export.WriteNotebook(w, a.notepad.Pages)
}

// LoadFrom replaces the notebook with the one in r and closes it.
func (a *App) LoadFrom(r io.ReadCloser) error {
	defer r.Close()
	return export.ReadNotebook(r, a.notepad.Pages)
}

// ExportPDF writes the current page as a PDF and closes w.
func (a *App) ExportPDF(w io.WriteCloser) error {
	defer w.Close()
	return export.PDF(w, a.notepad.CurrentPaths().Get(), a.boardSize())
}

// ExportPNG writes the current page as a PNG and closes w.
func (a *App) ExportPNG(w io.WriteCloser) error {
	defer w.Close()
	return export.PNG(w, a.notepad.CurrentPaths().Get(), a.boardSize(), a.notepad.Pen.EraserColor())
}

func (a *App) boardSize() fyne.Size {
	size := a.boards[a.CurrentPage()].Size()
	if size.Width <= 0 || size.Height <= 0 {
		return a.boards[a.CurrentPage()].MinSize()
	}
	return size
}

func (a *App) showSave() {
	a.showWriter("notebook.json", "Saved notebook", a.SaveTo)
}

func (a *App) showExportPDF() {
	a.showWriter(a.CurrentPage().String()+".pdf", "Exported PDF", a.ExportPDF)
}

func (a *App) showExportPNG() {
	a.showWriter(a.CurrentPage().String()+".png", "Exported PNG", a.ExportPNG)
}

func (a *App) showWriter(name, done string, write func(io.WriteCloser) error) {
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			a.fail(err)
			return
		}
		if w == nil {
			return
		}
		if err := write(w); err != nil {
			a.fail(err)
			return
		}
		a.lggr.Infof("%s to %s", done, w.URI())
		a.SetStatus(done)
	}, a.window)
	d.SetFileName(name)
	d.Show()
}

func (a *App) showOpen() {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			a.fail(err)
			return
		}
		if r == nil {
			return
		}
		if err := a.LoadFrom(r); err != nil {
			a.fail(err)
			return
		}
		a.lggr.Infof("Loaded notebook from %s", r.URI())
		a.SetStatus("Loaded notebook")
	}, a.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	d.Show()
}

func (a *App) fail(err error) {
	a.lggr.Errorf("File operation failed: %v", err)
	dialog.ShowError(err, a.window)
}
