package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"TacNotepad/internal/state"
)

// NotebookVersion is the current on-disk notebook format.
const NotebookVersion = 1

// notebook is the JSON document. Pages are keyed by their 1-based number.
type notebook struct {
	Version int                     `json:"version"`
	Pages   map[string][]state.Path `json:"pages"`
}

// WriteNotebook saves the committed paths of every page to w.
func WriteNotebook(w io.Writer, s *state.PageStore) error {
	doc := notebook{Version: NotebookVersion, Pages: map[string][]state.Path{}}
	for page, paths := range s.Snapshot() {
		doc.Pages[strconv.Itoa(int(page)+1)] = paths
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding notebook: %w", err)
	}
	return nil
}

// ReadNotebook loads a notebook from r into s. Pages missing from the
// document are left as they are. Nothing is changed if the document is
// invalid.
func ReadNotebook(r io.Reader, s *state.PageStore) error {
	var doc notebook
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("decoding notebook: %w", err)
	}
	if doc.Version != NotebookVersion {
		return fmt.Errorf("unsupported notebook version %d", doc.Version)
	}

	pages := make(map[state.Page][]state.Path, len(doc.Pages))
	for key, paths := range doc.Pages {
		n, err := strconv.Atoi(key)
		if err != nil || !state.Page(n-1).Valid() {
			return fmt.Errorf("unknown page %q in notebook", key)
		}
		pages[state.Page(n-1)] = paths
	}
	s.Restore(pages)
	return nil
}
