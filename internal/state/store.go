package state

import "fmt"

// pageState is the drawing state of a single page.
type pageState struct {
	paths   *Property[[]Path]
	active  *Property[*Path]
	isEmpty *Derived[bool]
}

// PageStore holds the committed and in-progress paths of every page.
// All pages are created up front and live as long as the store.
type PageStore struct {
	pages [pageCount]pageState
}

// NewPageStore returns a store in which every page is empty and has no
// active path.
func NewPageStore() *PageStore {
	s := &PageStore{}
	for _, page := range AllPages {
		paths := NewProperty([]Path{})
		s.pages[page] = pageState{
			paths:   paths,
			active:  NewProperty[*Path](nil),
			isEmpty: Map[[]Path](paths, func(p []Path) bool { return len(p) == 0 }),
		}
	}
	return s
}

func (s *PageStore) lookup(page Page) *pageState {
	if !page.Valid() {
		panic(fmt.Sprintf("state: unknown notepad page %d", int(page)))
	}
	return &s.pages[page]
}

// Paths returns the committed paths of page.
func (s *PageStore) Paths(page Page) *Property[[]Path] {
	return s.lookup(page).paths
}

// ActivePath returns the path being drawn on page, nil when there is none.
func (s *PageStore) ActivePath(page Page) *Property[*Path] {
	return s.lookup(page).active
}

// IsEmpty is true while page has no committed paths.
func (s *PageStore) IsEmpty(page Page) *Derived[bool] {
	return s.lookup(page).isEmpty
}

// Commit moves the active path of page into its committed paths. Paths
// with fewer than two points are dropped. It reports whether anything was
// committed.
func (s *PageStore) Commit(page Page) bool {
	ps := s.lookup(page)
	active := ps.active.Get()
	if active == nil {
		return false
	}
	ps.active.Set(nil)
	if len(active.Points) < 2 {
		return false
	}
	ps.paths.Modify(func(paths []Path) []Path {
		next := make([]Path, len(paths), len(paths)+1)
		copy(next, paths)
		return append(next, *active)
	})
	return true
}

// Undo removes the most recently committed path of page.
func (s *PageStore) Undo(page Page) bool {
	ps := s.lookup(page)
	paths := ps.paths.Get()
	if len(paths) == 0 {
		return false
	}
	ps.paths.Set(paths[:len(paths)-1:len(paths)-1])
	return true
}

// Clear drops every path of page, including the active one.
func (s *PageStore) Clear(page Page) {
	ps := s.lookup(page)
	ps.active.Set(nil)
	ps.paths.Set([]Path{})
}

// Snapshot copies the committed paths of every page.
func (s *PageStore) Snapshot() map[Page][]Path {
	out := make(map[Page][]Path, len(AllPages))
	for _, page := range AllPages {
		paths := s.Paths(page).Get()
		cp := make([]Path, len(paths))
		copy(cp, paths)
		out[page] = cp
	}
	return out
}

// Restore replaces the committed paths of each page present in pages.
// Active paths are cleared on the restored pages.
func (s *PageStore) Restore(pages map[Page][]Path) {
	for _, page := range AllPages {
		paths, ok := pages[page]
		if !ok {
			continue
		}
		if paths == nil {
			paths = []Path{}
		}
		ps := s.lookup(page)
		ps.active.Set(nil)
		ps.paths.Set(paths)
	}
}
